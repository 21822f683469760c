package syncer

import (
	"sync"
	"sync/atomic"

	"github.com/iudanet/rollbook/internal/models"
)

// ChangeEvent сигнализирует, что кэш секции изменился фоновой
// ревалидацией или replay и отображаемые данные пора перечитать
type ChangeEvent struct {
	Section models.Section
}

// Notifier доставляет события изменения кэша подписчикам.
// Доставка синхронная: подписчики должны возвращаться быстро.
type Notifier struct {
	mu   sync.RWMutex
	subs []func(ChangeEvent)
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe регистрирует подписчика. Отписки нет: подписчики живут
// столько же, сколько координатор.
func (n *Notifier) Subscribe(fn func(ChangeEvent)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

// Publish доставляет событие всем подписчикам
func (n *Notifier) Publish(event ChangeEvent) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, fn := range n.subs {
		fn(event)
	}
}

// Connectivity сообщает текущее состояние сети. Состояние приходит
// снаружи явно, координатор сам сеть не пробует.
type Connectivity interface {
	Online() bool
}

// Flag - тривиальная реализация Connectivity, переключаемая хостом
type Flag struct {
	online atomic.Bool
}

// NewFlag creates a connectivity flag in the given initial state
func NewFlag(online bool) *Flag {
	f := &Flag{}
	f.online.Store(online)
	return f
}

// Online reports the current connectivity state
func (f *Flag) Online() bool {
	return f.online.Load()
}

// Set switches the connectivity state
func (f *Flag) Set(online bool) {
	f.online.Store(online)
}
