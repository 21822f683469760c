package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// Gateway errors
var (
	// ErrNotFound indicates the record does not exist on the server
	ErrNotFound = errors.New("record not found on server")

	// ErrUnavailable indicates the server could not be reached at all
	// (transport-level failure, not a server-reported error)
	ErrUnavailable = errors.New("server unavailable")
)

// StatusError представляет ошибку, о которой сообщил сам сервер
// (авторизация, валидация на стороне сервера, внутренняя ошибка)
type StatusError struct {
	Message string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Code, e.Message)
}

//go:generate go tool moq -out gateway_mock.go . Gateway

// Gateway определяет тонкий контракт удаленного хранилища.
// Все вызовы ходят по сети и могут завершиться ошибкой связи
// или авторизации; таймауты - ответственность реализации.
type Gateway interface {
	// CreateRecord creates a record in the collection
	CreateRecord(ctx context.Context, collection string, record api.Record) (*api.Record, error)

	// UpdateRecordFields updates only the scalar fields of a record,
	// leaving the mark collection untouched
	UpdateRecordFields(ctx context.Context, collection, id string, section models.Section, fields json.RawMessage) (*api.Record, error)

	// MergeMarks atomically reconciles a member's mark collection server-side
	MergeMarks(ctx context.Context, memberID string, marks []api.Mark) (*api.Record, error)

	// DeleteRecord removes a record
	DeleteRecord(ctx context.Context, collection, id string, section models.Section) error

	// UpsertRecord creates the record or fully replaces an existing one
	UpsertRecord(ctx context.Context, collection string, record api.Record) (*api.Record, error)

	// FetchAll returns every record of the collection scoped to the section
	FetchAll(ctx context.Context, collection string, section models.Section) ([]api.Record, error)

	// FetchOne returns a single record.
	// Returns ErrNotFound if the record does not exist.
	FetchOne(ctx context.Context, collection, id string, section models.Section) (*api.Record, error)

	// AppendAuditEntry appends an entry to the server-side audit log
	AppendAuditEntry(ctx context.Context, entry json.RawMessage) error
}
