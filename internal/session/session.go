// Package session keeps the passwordless logins of household members.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type entry struct {
	userID    int64
	expiresAt time.Time
}

// Registry maps opaque tokens to user ids. Safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]entry
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]entry),
	}
}

// Create starts a session for userID and returns its token.
func (r *Registry) Create(userID int64) (string, error) {
	token, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token.String()] = entry{
		userID:    userID,
		expiresAt: r.now().Add(r.ttl),
	}

	return token.String(), nil
}

// Resolve returns the user behind token.
func (r *Registry) Resolve(token string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}

	if !r.now().Before(e.expiresAt) {
		delete(r.sessions, token)
		return 0, ErrSessionExpired
	}

	return e.userID, nil
}

func (r *Registry) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
}

// PurgeExpired drops every expired session and reports how many were removed.
func (r *Registry) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	purged := 0

	for token, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, token)
			purged++
		}
	}

	return purged
}
