package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
)

// envelope - формат хранения одной записи на диске.
// Section лежит снаружи шифртекста, чтобы выборка по секции
// не требовала расшифровки каждой записи.
type envelope struct {
	Section models.Section `json:"section,omitempty"`
	Data    []byte         `json:"data"`
}

// Put stores a record, encrypting the plaintext transparently
func (s *Storage) Put(ctx context.Context, collection storage.Collection, id string, plaintext []byte, section models.Section) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt record: %w", err)
	}

	data, err := json.Marshal(envelope{Section: section, Data: encrypted})
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("bucket %s not found", name)
		}
		if err := bucket.Put([]byte(id), data); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// Get retrieves and decrypts a record by id
func (s *Storage) Get(ctx context.Context, collection storage.Collection, id string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return nil, err
	}

	var env envelope

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return storage.ErrRecordNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrRecordNotFound
		}

		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("failed to unmarshal envelope: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	plaintext, err := s.cipher.Decrypt(env.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt record %s/%s: %w", collection, id, err)
	}

	return plaintext, nil
}

// GetAll returns decrypted payloads of a collection, optionally filtered by section.
// Запись, которую не удалось расшифровать, пропускается с warning:
// одна испорченная запись не должна блокировать загрузку остальных.
func (s *Storage) GetAll(ctx context.Context, collection storage.Collection, section models.Section) ([][]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return nil, err
	}

	var result [][]byte

	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var env envelope
			if err := json.Unmarshal(v, &env); err != nil {
				s.logger.Warn("skipping unreadable record",
					"collection", collection, "id", string(k), "error", err)
				return nil
			}

			// Фильтр по секции работает без расшифровки
			if section != "" && env.Section != section {
				return nil
			}

			plaintext, err := s.cipher.Decrypt(env.Data)
			if err != nil {
				s.logger.Warn("skipping record that failed to decrypt",
					"collection", collection, "id", string(k), "error", err)
				return nil
			}

			result = append(result, plaintext)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	return result, nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *Storage) Delete(ctx context.Context, collection storage.Collection, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// Clear removes every record in the collection
func (s *Storage) Clear(ctx context.Context, collection storage.Collection) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	name, err := collectionBucket(collection)
	if err != nil {
		return err
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return fmt.Errorf("failed to recreate bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}
