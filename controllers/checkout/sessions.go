package checkoutcontroller

import (
	"sync"

	"github.com/google/uuid"
	"github.com/opalstreet/storefront-api/checkout"
)

// Session ties one wizard to the user that opened it. Sessions live only
// in memory; an abandoned one is simply never touched again. The wizard
// itself is not goroutine-safe, so every read or mutation of it happens
// under mu — double-submitted requests for the same session serialize
// here.
type Session struct {
	ID     string
	UserID string

	mu     sync.Mutex
	Wizard *checkout.Wizard
}

// Lock guards the session's wizard state across one handler's read-
// modify-respond sequence.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store holds active checkout sessions. Gin serves handlers concurrently,
// so access goes through a mutex.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Create(userID string, items []checkout.LineItem) *Session {
	sess := &Session{
		ID:     uuid.NewString(),
		UserID: userID,
		Wizard: checkout.NewWizard(items),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session only if it belongs to userID.
func (s *Store) Get(id, userID string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.UserID != userID {
		return nil, false
	}
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
