package session

import "sync"

// Manager tracks live sessions by player id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session, 64)}
}

// Put registers a session, replacing any previous one for the player.
func (m *Manager) Put(s *Session) {
	m.mu.Lock()
	m.sessions[s.PlayerID()] = s
	m.mu.Unlock()
}

// Get returns the session for a player, or nil.
func (m *Manager) Get(playerID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[playerID]
}

// Remove drops a player's session.
func (m *Manager) Remove(playerID int64) {
	m.mu.Lock()
	delete(m.sessions, playerID)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ForEach calls fn for every live session. The snapshot is taken under
// the read lock; fn runs outside it so it may call back into sessions.
func (m *Manager) ForEach(fn func(*Session)) {
	m.mu.RLock()
	snapshot := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		snapshot = append(snapshot, s)
	}
	m.mu.RUnlock()

	for _, s := range snapshot {
		fn(s)
	}
}

// TickAll advances every live session by deltaMs.
func (m *Manager) TickAll(deltaMs int32) {
	m.ForEach(func(s *Session) {
		s.Tick(deltaMs)
	})
}
