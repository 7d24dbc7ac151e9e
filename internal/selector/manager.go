package selector

import (
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Manager хранит активные сессии выбора. Сессии живут в памяти одного
// инстанса: состояние не пересекает границы вкладок и не разделяется между
// клиентами, поэтому внешнее хранилище здесь не нужно.
type Manager struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	ttl          time.Duration
	timeProvider TimeProvider
	log          Logger
}

// NewManager создает менеджер сессий с заданным TTL бездействия.
func NewManager(ttl time.Duration, tp TimeProvider, log Logger) *Manager {
	if tp == nil {
		tp = &RealTimeProvider{}
	}
	return &Manager{
		sessions:     make(map[string]*Session),
		ttl:          ttl,
		timeProvider: tp,
		log:          log,
	}
}

// Put регистрирует сессию.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
}

// Get возвращает сессию по ID или ErrSessionNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete снимает сессию с учета. Уход со страницы доступности означает
// потерю интереса к любым in-flight fetch по старым параметрам: их
// результаты больше некуда применять.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len возвращает число активных сессий.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeper запускает фоновую очистку простаивающих сессий.
// Останавливается при закрытии stopCh.
func (m *Manager) StartSweeper(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-stopCh:
				return
			}
		}
	}()
}

func (m *Manager) sweep() {
	cutoff := m.timeProvider.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.lastTouched().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 && m.log != nil {
		m.log.Info("selector: swept %d idle sessions, %d remain", removed, len(m.sessions))
	}
}
