package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/crypto"
)

var (
	// BoltDB bucket names
	bucketQueue   = []byte("queue")
	bucketSession = []byte("session")
	bucketMeta    = []byte("meta")

	keySchemaVersion = []byte("schema_version")
)

// Storage represents BoltDB storage implementation for the client.
// Все payload'ы, кроме метаданных очереди, лежат на диске только
// в зашифрованном виде.
type Storage struct {
	db     *bbolt.DB
	cipher *crypto.Cipher
	logger *slog.Logger
}

var (
	_ storage.RecordStore    = (*Storage)(nil)
	_ storage.SessionStorage = (*Storage)(nil)
	_ storage.PendingQueue   = (*Queue)(nil)
)

// migration описывает один шаг эволюции схемы.
// Миграции выполняются строго по порядку один раз при открытии базы;
// неявного создания bucket'ов в рабочих путях нет.
type migration struct {
	name  string
	apply func(tx *bbolt.Tx) error
}

// migrations - полная история схемы. Добавление или удаление коллекции -
// это новый элемент списка, никогда правка старых.
var migrations = []migration{
	{
		name: "base buckets",
		apply: func(tx *bbolt.Tx) error {
			for _, name := range [][]byte{
				[]byte(storage.CollectionMembers),
				[]byte(storage.CollectionAudit),
				[]byte(storage.CollectionRoles),
				[]byte(storage.CollectionSettings),
				bucketQueue,
				bucketSession,
			} {
				if _, err := tx.CreateBucketIfNotExists(name); err != nil {
					return fmt.Errorf("failed to create bucket %s: %w", name, err)
				}
			}
			return nil
		},
	},
	{
		name: "invite codes",
		apply: func(tx *bbolt.Tx) error {
			if _, err := tx.CreateBucketIfNotExists([]byte(storage.CollectionInvites)); err != nil {
				return fmt.Errorf("failed to create invites bucket: %w", err)
			}
			return nil
		},
	},
}

// New creates a new BoltDB storage instance.
// dbPath is the path to the BoltDB database file; cipher encrypts
// every record payload before it reaches disk.
func New(ctx context.Context, dbPath string, cipher *crypto.Cipher, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{
		db:     db,
		cipher: cipher,
		logger: logger,
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// migrate выполняет недостающие шаги миграции и сохраняет новую версию схемы
func (s *Storage) migrate() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bucketMeta)
		if err != nil {
			return fmt.Errorf("failed to create meta bucket: %w", err)
		}

		version := uint64(0)
		if raw := meta.Get(keySchemaVersion); raw != nil {
			version = binary.BigEndian.Uint64(raw)
		}

		if version > uint64(len(migrations)) {
			return fmt.Errorf("database schema version %d is newer than supported %d", version, len(migrations))
		}

		for i := version; i < uint64(len(migrations)); i++ {
			if err := migrations[i].apply(tx); err != nil {
				return fmt.Errorf("migration %q failed: %w", migrations[i].name, err)
			}
			s.logger.Info("applied schema migration", "version", i+1, "name", migrations[i].name)
		}

		raw := make([]byte, 8)
		binary.BigEndian.PutUint64(raw, uint64(len(migrations)))
		if err := meta.Put(keySchemaVersion, raw); err != nil {
			return fmt.Errorf("failed to save schema version: %w", err)
		}

		return nil
	})
}

// collectionBucket возвращает имя bucket'а для коллекции
func collectionBucket(collection storage.Collection) ([]byte, error) {
	switch collection {
	case storage.CollectionMembers, storage.CollectionAudit, storage.CollectionRoles,
		storage.CollectionInvites, storage.CollectionSettings:
		return []byte(collection), nil
	}
	return nil, fmt.Errorf("%w: %s", storage.ErrUnknownCollection, collection)
}
