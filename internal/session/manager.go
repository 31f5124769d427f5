package session

// Store is the durable client-side storage holding the session token,
// keyed by StorageKey. A cookie jar and an in-memory map both satisfy it.
// Storage failure is indistinguishable from absence: Get simply reports
// no value and the caller regenerates.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Manager owns the single stable session token for one client. It is the
// only component that reads or writes the token's storage cell; everyone
// else receives the token by value.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// ObtainToken returns the current session token, creating and persisting
// a fresh one if none is stored or the stored value is malformed. A
// corrupted or forged token never surfaces as an error: it self-heals
// into a fresh, empty cart.
func (m *Manager) ObtainToken() string {
	if stored, ok := m.store.Get(StorageKey); ok && ValidateFormat(stored) {
		return stored
	}

	token := GenerateToken()
	m.store.Set(StorageKey, token)
	return token
}

// ResetSession discards the current token and persists a replacement.
func (m *Manager) ResetSession() string {
	m.store.Remove(StorageKey)

	token := GenerateToken()
	m.store.Set(StorageKey, token)
	return token
}
