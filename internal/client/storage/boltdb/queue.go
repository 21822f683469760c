package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/crypto"
	"github.com/iudanet/rollbook/internal/models"
)

// Queue - durable очередь отложенных мутаций. Живет в том же файле
// базы, что и Storage, но на отдельном типе: контракт очереди
// (storage.PendingQueue) несовместим по сигнатуре Clear с контрактом
// коллекций записей.
type Queue struct {
	db     *bbolt.DB
	cipher *crypto.Cipher
}

// Queue returns the pending write queue backed by the same database file
func (s *Storage) Queue() *Queue {
	return &Queue{db: s.db, cipher: s.cipher}
}

// queuedWrite - формат записи очереди на диске.
// Op, Section и RecordID лежат открыто, Payload зашифрован.
type queuedWrite struct {
	Op       models.Op      `json:"op"`
	Section  models.Section `json:"section,omitempty"`
	RecordID string         `json:"record_id,omitempty"`
	Payload  []byte         `json:"payload,omitempty"`
}

// seqKey кодирует sequence id в big-endian ключ:
// лексикографический порядок ключей bolt совпадает с числовым
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// Enqueue назначает следующий sequence id и durable сохраняет запись.
// Транзакция bolt коммитится до возврата, поэтому крэш сразу после
// вызова не теряет мутацию.
func (q *Queue) Enqueue(ctx context.Context, write *models.PendingWrite) (uint64, error) {
	if q.db == nil {
		return 0, storage.ErrStorageClosed
	}
	if !write.Op.Valid() {
		return 0, fmt.Errorf("unknown queue operation %q", write.Op)
	}

	var payload []byte
	if len(write.Payload) > 0 {
		encrypted, err := q.cipher.Encrypt(write.Payload)
		if err != nil {
			return 0, fmt.Errorf("failed to encrypt payload: %w", err)
		}
		payload = encrypted
	}

	var seq uint64

	err := q.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return fmt.Errorf("queue bucket not found")
		}

		next, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to assign sequence: %w", err)
		}
		seq = next

		data, err := json.Marshal(queuedWrite{
			Op:       write.Op,
			Section:  write.Section,
			RecordID: write.RecordID,
			Payload:  payload,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal pending write: %w", err)
		}

		if err := bucket.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to save pending write: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("enqueue transaction failed: %w", err)
	}

	write.Seq = seq
	return seq, nil
}

// Drain возвращает все отложенные записи в порядке возрастания seq.
// bolt возвращает ключи в byte-order, что для big-endian ключей
// совпадает с порядком назначения.
func (q *Queue) Drain(ctx context.Context) ([]*models.PendingWrite, error) {
	if q.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var writes []*models.PendingWrite

	err := q.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var qw queuedWrite
			if err := json.Unmarshal(v, &qw); err != nil {
				return fmt.Errorf("failed to unmarshal pending write %d: %w", binary.BigEndian.Uint64(k), err)
			}

			write := &models.PendingWrite{
				Seq:      binary.BigEndian.Uint64(k),
				Op:       qw.Op,
				Section:  qw.Section,
				RecordID: qw.RecordID,
			}

			if len(qw.Payload) > 0 {
				plaintext, err := q.cipher.Decrypt(qw.Payload)
				if err != nil {
					return fmt.Errorf("failed to decrypt pending write %d: %w", write.Seq, err)
				}
				write.Payload = plaintext
			}

			writes = append(writes, write)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain queue: %w", err)
	}

	return writes, nil
}

// Remove удаляет запись после подтвержденного replay
func (q *Queue) Remove(ctx context.Context, seq uint64) error {
	if q.db == nil {
		return storage.ErrStorageClosed
	}

	err := q.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return storage.ErrWriteNotFound
		}
		if bucket.Get(seqKey(seq)) == nil {
			return storage.ErrWriteNotFound
		}
		return bucket.Delete(seqKey(seq))
	})
	if err != nil {
		if errors.Is(err, storage.ErrWriteNotFound) {
			return err
		}
		return fmt.Errorf("remove transaction failed: %w", err)
	}

	return nil
}

// Count возвращает количество записей, ожидающих replay
func (q *Queue) Count(ctx context.Context) (int, error) {
	if q.db == nil {
		return 0, storage.ErrStorageClosed
	}

	count := 0
	err := q.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}
		count = bucket.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}

	return count, nil
}

// Clear удаляет все записи очереди. Счетчик sequence не сбрасывается:
// id остаются монотонными на протяжении жизни базы.
func (q *Queue) Clear(ctx context.Context) error {
	if q.db == nil {
		return storage.ErrStorageClosed
	}

	err := q.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketQueue)
		if bucket == nil {
			return nil
		}

		// Сначала собираем ключи: удалять во время ForEach нельзя
		var keys [][]byte
		if err := bucket.ForEach(func(k, v []byte) error {
			key := make([]byte, len(k))
			copy(key, k)
			keys = append(keys, key)
			return nil
		}); err != nil {
			return err
		}

		for _, key := range keys {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
