// Package service implements authentication services: the in-memory credential store.
package service

// KeyStore holds the set of valid shared-secret credentials. It is built once at
// startup and never mutated afterwards, so concurrent reads need no synchronization.
type KeyStore struct {
	keys map[string]struct{}
}

// NewKeyStore creates a KeyStore from the configured credential list. Empty
// entries are ignored; duplicates collapse.
func NewKeyStore(keys []string) *KeyStore {
	store := &KeyStore{keys: make(map[string]struct{}, len(keys))}
	for _, key := range keys {
		if key != "" {
			store.keys[key] = struct{}{}
		}
	}
	return store
}

// Contains reports whether the credential exactly matches a stored key.
// Comparison is case-sensitive.
func (s *KeyStore) Contains(credential string) bool {
	_, ok := s.keys[credential]
	return ok
}

// IsEmpty reports whether no credentials are configured. An empty store is a
// misconfiguration: every request fails with a ConfigurationError verdict.
func (s *KeyStore) IsEmpty() bool {
	return len(s.keys) == 0
}

// Len returns the number of configured credentials.
func (s *KeyStore) Len() int {
	return len(s.keys)
}
