package network

import (
	"sync"

	"gridnav/internal/sim"
)

// Broadcaster рассылает снапшоты симуляции подписчикам (websocket-клиентам).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> личный канал
	subscribers map[int]chan sim.Snapshot
	nextID      int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[int]chan sim.Snapshot),
	}
}

// Register создает личный канал подписчика и возвращает его ID.
func (b *Broadcaster) Register() (int, chan sim.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	ch := make(chan sim.Snapshot, 16)
	b.subscribers[id] = ch
	return id, ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unregister(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Broadcast отправляет снапшот всем. Отстающие подписчики пропускают
// кадры: канал полон - снапшот не доставляется.
func (b *Broadcaster) Broadcast(snap sim.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
