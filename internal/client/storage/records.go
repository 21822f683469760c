package storage

import (
	"context"

	"github.com/iudanet/rollbook/internal/models"
)

// Collection именует раздел локального хранилища.
// Значения совпадают с именами коллекций на сервере.
type Collection string

const (
	CollectionMembers  Collection = "members"
	CollectionAudit    Collection = "audit"
	CollectionRoles    Collection = "roles"
	CollectionInvites  Collection = "invites"
	CollectionSettings Collection = "settings"
)

// Collections перечисляет все коллекции записей.
// Очередь и метаданные сюда не входят: у них свои bucket'ы.
var Collections = []Collection{
	CollectionMembers,
	CollectionAudit,
	CollectionRoles,
	CollectionInvites,
	CollectionSettings,
}

//go:generate go tool moq -out records_mock.go . RecordStore

// RecordStore определяет интерфейс зашифрованного локального хранилища записей.
// Plaintext на диск не попадает: Put шифрует перед записью, Get и GetAll
// расшифровывают после чтения.
type RecordStore interface {
	// Put stores a record, encrypting the plaintext transparently.
	// Section is kept outside the ciphertext so queries can filter
	// without decrypting every record; pass "" for unsectioned collections.
	Put(ctx context.Context, collection Collection, id string, plaintext []byte, section models.Section) error

	// Get retrieves and decrypts a record by id.
	// Returns ErrRecordNotFound if the record doesn't exist.
	Get(ctx context.Context, collection Collection, id string) ([]byte, error)

	// GetAll returns decrypted payloads of a collection, optionally filtered
	// by section (pass "" for no filter). A record that fails to decrypt is
	// skipped with a logged warning so one corrupted record cannot block
	// loading the rest of the collection.
	GetAll(ctx context.Context, collection Collection, section models.Section) ([][]byte, error)

	// Delete removes a record. Deleting a missing record is not an error.
	Delete(ctx context.Context, collection Collection, id string) error

	// Clear removes every record in the collection.
	Clear(ctx context.Context, collection Collection) error
}
