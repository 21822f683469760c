package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/models"
	"github.com/iudanet/rollbook/pkg/api"
)

// fixture собирает координатор поверх in-memory моков хранилища и очереди:
// моки ведут себя как настоящие компоненты, что позволяет проверять
// сквозные сценарии без bbolt
type fixture struct {
	gw      *gateway.GatewayMock
	records *storage.RecordStoreMock
	queue   *storage.PendingQueueMock
	conn    *Flag
	svc     Service
}

func newFixture(t *testing.T, online bool) *fixture {
	t.Helper()

	f := &fixture{
		gw:      &gateway.GatewayMock{},
		records: memoryRecords(),
		queue:   memoryQueue(),
		conn:    NewFlag(online),
	}

	// Успешные заглушки по умолчанию, тесты переопределяют нужные
	f.gw.CreateRecordFunc = func(ctx context.Context, collection string, record api.Record) (*api.Record, error) {
		return &record, nil
	}
	f.gw.UpsertRecordFunc = func(ctx context.Context, collection string, record api.Record) (*api.Record, error) {
		return &record, nil
	}
	f.gw.UpdateRecordFieldsFunc = func(ctx context.Context, collection, id string, section models.Section, fields json.RawMessage) (*api.Record, error) {
		return nil, nil
	}
	f.gw.MergeMarksFunc = func(ctx context.Context, memberID string, marks []api.Mark) (*api.Record, error) {
		return nil, nil
	}
	f.gw.DeleteRecordFunc = func(ctx context.Context, collection, id string, section models.Section) error {
		return nil
	}
	f.gw.FetchAllFunc = func(ctx context.Context, collection string, section models.Section) ([]api.Record, error) {
		return nil, nil
	}
	f.gw.FetchOneFunc = func(ctx context.Context, collection, id string, section models.Section) (*api.Record, error) {
		return nil, gateway.ErrNotFound
	}
	f.gw.AppendAuditEntryFunc = func(ctx context.Context, entry json.RawMessage) error {
		return nil
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = New(f.gw, f.records, f.queue, f.conn, logger)
	return f
}

type storedRecord struct {
	data    []byte
	section models.Section
}

// memoryRecords возвращает мок RecordStore поверх map
func memoryRecords() *storage.RecordStoreMock {
	var mu sync.Mutex
	store := make(map[storage.Collection]map[string]storedRecord)

	bucket := func(collection storage.Collection) map[string]storedRecord {
		if store[collection] == nil {
			store[collection] = make(map[string]storedRecord)
		}
		return store[collection]
	}

	return &storage.RecordStoreMock{
		PutFunc: func(ctx context.Context, collection storage.Collection, id string, plaintext []byte, section models.Section) error {
			mu.Lock()
			defer mu.Unlock()
			data := make([]byte, len(plaintext))
			copy(data, plaintext)
			bucket(collection)[id] = storedRecord{data: data, section: section}
			return nil
		},
		GetFunc: func(ctx context.Context, collection storage.Collection, id string) ([]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			rec, ok := bucket(collection)[id]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return rec.data, nil
		},
		GetAllFunc: func(ctx context.Context, collection storage.Collection, section models.Section) ([][]byte, error) {
			mu.Lock()
			defer mu.Unlock()
			var result [][]byte
			for _, rec := range bucket(collection) {
				if section != "" && rec.section != section {
					continue
				}
				result = append(result, rec.data)
			}
			return result, nil
		},
		DeleteFunc: func(ctx context.Context, collection storage.Collection, id string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(bucket(collection), id)
			return nil
		},
		ClearFunc: func(ctx context.Context, collection storage.Collection) error {
			mu.Lock()
			defer mu.Unlock()
			delete(store, collection)
			return nil
		},
	}
}

// memoryQueue возвращает мок PendingQueue поверх slice
func memoryQueue() *storage.PendingQueueMock {
	var mu sync.Mutex
	var writes []*models.PendingWrite
	var nextSeq uint64

	return &storage.PendingQueueMock{
		EnqueueFunc: func(ctx context.Context, write *models.PendingWrite) (uint64, error) {
			mu.Lock()
			defer mu.Unlock()
			nextSeq++
			write.Seq = nextSeq
			writes = append(writes, write)
			return nextSeq, nil
		},
		DrainFunc: func(ctx context.Context) ([]*models.PendingWrite, error) {
			mu.Lock()
			defer mu.Unlock()
			result := make([]*models.PendingWrite, len(writes))
			copy(result, writes)
			return result, nil
		},
		RemoveFunc: func(ctx context.Context, seq uint64) error {
			mu.Lock()
			defer mu.Unlock()
			for i, w := range writes {
				if w.Seq == seq {
					writes = append(writes[:i], writes[i+1:]...)
					return nil
				}
			}
			return storage.ErrWriteNotFound
		},
		CountFunc: func(ctx context.Context) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			return len(writes), nil
		},
		ClearFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			writes = nil
			return nil
		},
	}
}

func testMember(id, name string, section models.Section, marks ...models.Mark) *models.Member {
	return &models.Member{
		ID:      id,
		Name:    name,
		Squad:   1,
		Year:    "2024",
		Section: section,
		Marks:   marks,
	}
}

func memberAPIRecord(t *testing.T, member *models.Member) api.Record {
	t.Helper()
	data, err := json.Marshal(member)
	require.NoError(t, err)
	return api.Record{ID: member.ID, Section: string(member.Section), Data: data}
}

// cachedMember достает участника из кэша фикстуры
func (f *fixture) cachedMember(t *testing.T, id string) *models.Member {
	t.Helper()
	data, err := f.records.Get(context.Background(), storage.CollectionMembers, id)
	require.NoError(t, err)
	member := &models.Member{}
	require.NoError(t, json.Unmarshal(data, member))
	return member
}

func (f *fixture) pendingCount(t *testing.T) int {
	t.Helper()
	count, err := f.queue.Count(context.Background())
	require.NoError(t, err)
	return count
}

var errBoom = fmt.Errorf("%w: connection refused", gateway.ErrUnavailable)
