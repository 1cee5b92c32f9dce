package session

import (
	"context"
	"sync"
	"time"

	"github.com/magabrotheeeer/session-authority/internal/models"
)

type memoryEntry struct {
	sess      models.Session
	expiresAt time.Time
}

// Memory — потокобезопасное токен-хранилище в памяти процесса.
// Истёкшие записи удаляются лениво при Get; дополнительно Janitor
// периодически вычищает их, чтобы хранилище не росло бесконечно
// на токенах, которые никто больше не предъявляет.
type Memory struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

// NewMemory создает пустое хранилище сессий в памяти.
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Save сохраняет запись сессии со сроком жизни ttl.
func (m *Memory) Save(_ context.Context, token string, sess models.Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[token] = memoryEntry{
		sess:      sess,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

// Get возвращает запись сессии или ErrSessionNotFound.
// Истёкшая запись удаляется и считается отсутствующей.
func (m *Memory) Get(_ context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.items[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.now().After(entry.expiresAt) {
		delete(m.items, token)
		return nil, ErrSessionNotFound
	}
	sess := entry.sess
	return &sess, nil
}

// Delete удаляет запись; отсутствие записи не является ошибкой.
func (m *Memory) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, token)
	return nil
}

// Len возвращает текущее количество записей, включая ещё не вычищенные истёкшие.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Janitor запускает периодическую очистку истёкших записей и блокируется
// до отмены контекста. Запускается приложением в отдельной горутине.
func (m *Memory) Janitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.evictExpired()
		}
	}
}

func (m *Memory) evictExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for token, entry := range m.items {
		if now.After(entry.expiresAt) {
			delete(m.items, token)
		}
	}
}
