// Package sessions stores Redfish sessions in process memory.
package sessions

import (
	"sync"
	"time"

	"github.com/robfig/go-cache"

	"github.com/rackhd/redfish-gateway/redfish/internal/entity"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
)

// Memory is a sessions.Store whose entries expire after their idle ttl.
type Memory struct {
	items *cache.Cache

	mu  sync.Mutex
	ids map[string]struct{}
}

var _ sessions.Store = (*Memory)(nil)

// NewMemory creates a store that purges expired sessions every cleanup interval.
func NewMemory(cleanup time.Duration) *Memory {
	return &Memory{
		items: cache.New(sessions.DefaultTimeout, cleanup),
		ids:   make(map[string]struct{}),
	}
}

// Put stores session, resetting its expiry to ttl from now.
func (m *Memory) Put(session *entity.Session, ttl time.Duration) {
	cp := *session

	m.mu.Lock()
	m.ids[session.ID] = struct{}{}
	m.mu.Unlock()

	m.items.Set(session.ID, &cp, ttl)
}

// Get returns a copy of the session.
func (m *Memory) Get(id string) (*entity.Session, error) {
	v, ok := m.items.Get(id)
	if !ok {
		return nil, sessions.ErrSessionNotFound
	}

	cp := *v.(*entity.Session)

	return &cp, nil
}

// Delete -.
func (m *Memory) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items.Get(id); !ok {
		delete(m.ids, id)

		return sessions.ErrSessionNotFound
	}

	m.items.Delete(id)
	delete(m.ids, id)

	return nil
}

// List returns the live sessions and forgets the expired ones.
func (m *Memory) List() []*entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.Session, 0, len(m.ids))

	for id := range m.ids {
		v, ok := m.items.Get(id)
		if !ok {
			delete(m.ids, id)

			continue
		}

		cp := *v.(*entity.Session)
		out = append(out, &cp)
	}

	return out
}
