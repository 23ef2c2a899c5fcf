// File: appconf/session.go
package appconf

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

func init() {
	mustRegisterEngine(CategorySession, "simple", newSimpleSession)
}

// simpleSession is an in-memory session store. Sessions do not survive the
// process; production deployments register a persistent implementation.
type simpleSession struct {
	name string

	mutex    sync.RWMutex
	sessions map[string]map[string]any
}

func newSimpleSession(cfg EngineConfig) (Engine, error) {
	return &simpleSession{
		name:     cfg.Name,
		sessions: make(map[string]map[string]any),
	}, nil
}

func (s *simpleSession) EngineName() string {
	return s.name
}

func (s *simpleSession) Create() (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	s.mutex.Lock()
	s.sessions[id] = make(map[string]any)
	s.mutex.Unlock()

	return id, nil
}

func (s *simpleSession) Read(id string) (map[string]any, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, ok := s.sessions[id]
	if !ok {
		return nil, false
	}

	copied := make(map[string]any, len(data))
	for key, value := range data {
		copied[key] = value
	}
	return copied, true
}

func (s *simpleSession) Write(id, key string, value any) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("unknown session %q", id)
	}
	data[key] = value

	return nil
}

func (s *simpleSession) Destroy(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("unknown session %q", id)
	}
	delete(s.sessions, id)

	return nil
}

func newSessionID() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
