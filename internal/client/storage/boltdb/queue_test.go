package boltdb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/crypto"
	"github.com/iudanet/rollbook/internal/models"
)

func TestEnqueue_AssignsMonotonicSeq(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	var seqs []uint64
	for i := 0; i < 5; i++ {
		seq, err := queue.Enqueue(ctx, &models.PendingWrite{
			Op:      models.OpCreateMember,
			Section: models.SectionCompany,
			Payload: []byte(`{"id":"m"}`),
		})
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}

	for i := 1; i < len(seqs); i++ {
		assert.Greater(t, seqs[i], seqs[i-1])
	}
}

func TestEnqueue_RejectsUnknownOp(t *testing.T) {
	store := createTestStorage(t)
	queue := store.Queue()

	_, err := queue.Enqueue(context.Background(), &models.PendingWrite{Op: "drop_table"})
	assert.Error(t, err)
}

func TestDrain_OrderedAndNonDestructive(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	ops := []models.Op{models.OpCreateMember, models.OpUpdateMember, models.OpDeleteMember}
	for _, op := range ops {
		_, err := queue.Enqueue(ctx, &models.PendingWrite{
			Op:       op,
			Section:  models.SectionJunior,
			RecordID: "m-1",
			Payload:  []byte(`{"id":"m-1"}`),
		})
		require.NoError(t, err)
	}

	writes, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, writes, 3)

	// Порядок строгий по seq, payload расшифрован
	for i, write := range writes {
		assert.Equal(t, ops[i], write.Op)
		assert.Equal(t, []byte(`{"id":"m-1"}`), write.Payload)
	}

	// Drain неразрушающий
	again, err := queue.Drain(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3)
}

func TestQueue_PayloadEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	_, err := queue.Enqueue(ctx, &models.PendingWrite{
		Op:      models.OpCreateMember,
		Payload: []byte(`{"name":"very-recognizable-plaintext"}`),
	})
	require.NoError(t, err)

	err = store.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketQueue).ForEach(func(k, v []byte) error {
			assert.NotContains(t, string(v), "very-recognizable-plaintext")
			// Метаданные операции при этом читаются без ключа
			assert.Contains(t, string(v), string(models.OpCreateMember))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	first, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpCreateMember, Payload: []byte(`{}`)})
	require.NoError(t, err)
	second, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpUpdateMember, Payload: []byte(`{}`)})
	require.NoError(t, err)

	require.NoError(t, queue.Remove(ctx, first))

	writes, err := queue.Drain(ctx)
	require.NoError(t, err)
	require.Len(t, writes, 1)
	assert.Equal(t, second, writes[0].Seq)

	// Повторное удаление - ошибка
	assert.ErrorIs(t, queue.Remove(ctx, first), storage.ErrWriteNotFound)
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	count, err := queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 4; i++ {
		_, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpAppendAudit, Payload: []byte(`{}`)})
		require.NoError(t, err)
	}

	count, err = queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestClear_KeepsSequenceMonotonic(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	last, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpCreateMember, Payload: []byte(`{}`)})
	require.NoError(t, err)

	require.NoError(t, queue.Clear(ctx))

	count, err := queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Seq продолжает расти после Clear
	next, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpCreateMember, Payload: []byte(`{}`)})
	require.NoError(t, err)
	assert.Greater(t, next, last)
}

func TestQueue_IndependentFromRecordClear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	queue := store.Queue()

	_, err := queue.Enqueue(ctx, &models.PendingWrite{Op: models.OpCreateMember, Payload: []byte(`{}`)})
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, storage.CollectionMembers, "m-1", []byte(`{"id":"m-1"}`), models.SectionCompany))

	// Очистка коллекции записей не трогает очередь
	require.NoError(t, store.Clear(ctx, storage.CollectionMembers))

	count, err := queue.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// И наоборот: очистка очереди не трогает коллекции
	require.NoError(t, store.Put(ctx, storage.CollectionMembers, "m-2", []byte(`{"id":"m-2"}`), models.SectionCompany))
	require.NoError(t, queue.Clear(ctx))

	records, err := store.GetAll(ctx, storage.CollectionMembers, models.SectionCompany)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	count, err = queue.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	ctx := context.Background()

	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = byte(i + 1)
	}
	cipher, err := crypto.NewCipher(key)
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "queue_test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := New(ctx, dbPath, cipher, logger)
	require.NoError(t, err)

	seq, err := store.Queue().Enqueue(ctx, &models.PendingWrite{
		Op:      models.OpCreateMember,
		Payload: []byte(`{"id":"m-1"}`),
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Записанное до закрытия доступно после переоткрытия
	reopened, err := New(ctx, dbPath, cipher, logger)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	writes, err := reopened.Queue().Drain(ctx)
	require.NoError(t, err)
	require.Len(t, writes, 1)
	assert.Equal(t, seq, writes[0].Seq)
	assert.Equal(t, []byte(`{"id":"m-1"}`), writes[0].Payload)
}
