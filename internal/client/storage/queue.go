package storage

import (
	"context"

	"github.com/iudanet/rollbook/internal/models"
)

//go:generate go tool moq -out queue_mock.go . PendingQueue

// PendingQueue определяет интерфейс durable очереди отложенных мутаций.
// Очередь append-only: записи никогда не переупорядочиваются и не
// склеиваются, replay порядок - единственная гарантия, которая
// остается после ухода в offline.
type PendingQueue interface {
	// Enqueue назначает записи следующий sequence id и durable сохраняет её
	// до возврата из вызова (write-ahead семантика). Возвращает назначенный id.
	Enqueue(ctx context.Context, write *models.PendingWrite) (uint64, error)

	// Drain возвращает все отложенные записи в порядке возрастания seq.
	// Чтение неразрушающее: записи остаются в очереди до Remove.
	Drain(ctx context.Context) ([]*models.PendingWrite, error)

	// Remove удаляет запись после подтвержденного replay на сервере
	Remove(ctx context.Context, seq uint64) error

	// Count возвращает количество записей, ожидающих replay
	Count(ctx context.Context) (int, error)

	// Clear удаляет все записи очереди
	Clear(ctx context.Context) error
}
