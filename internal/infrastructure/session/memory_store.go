package session

import (
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/cache"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// MemoryStore is the process-lifetime session context. Entries are lost on
// restart. With idleTTL > 0 a session not read or written for idleTTL is
// dropped.
type MemoryStore struct {
	sessions *cache.TTLCache[string, entities.Session]
	idleTTL  time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: cache.NewTTLCache[string, entities.Session](),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(sessionID string) (string, bool) {
	sess, ok := s.read(sessionID)
	if !ok || sess.SelectedCustomerRef == "" {
		return "", false
	}
	return sess.SelectedCustomerRef, true
}

func (s *MemoryStore) Set(sessionID, customerRef string) {
	s.update(sessionID, func(sess *entities.Session) {
		sess.SelectedCustomerRef = customerRef
	})
}

func (s *MemoryStore) Clear(sessionID string) {
	s.update(sessionID, func(sess *entities.Session) {
		sess.SelectedCustomerRef = ""
	})
}

func (s *MemoryStore) GetCredentials(sessionID string) (entities.CredentialPair, bool) {
	sess, ok := s.read(sessionID)
	if !ok || sess.Credentials == nil {
		return entities.CredentialPair{}, false
	}
	return *sess.Credentials, true
}

func (s *MemoryStore) SetCredentials(sessionID string, creds entities.CredentialPair) {
	s.update(sessionID, func(sess *entities.Session) {
		c := creds
		sess.Credentials = &c
	})
}

// SwapCredentials stores next only while the stored pair still equals old.
func (s *MemoryStore) SwapCredentials(sessionID string, old, next entities.CredentialPair) bool {
	swapped := false
	s.sessions.Update(sessionID, s.idleTTL, func(cur entities.Session, found bool) (entities.Session, bool) {
		if !found || cur.Credentials == nil || *cur.Credentials != old {
			return cur, found
		}
		c := next
		cur.Credentials = &c
		cur.UpdatedAt = s.now()
		swapped = true
		return cur, true
	})
	return swapped
}

func (s *MemoryStore) ClearCredentials(sessionID string) {
	s.update(sessionID, func(sess *entities.Session) {
		sess.Credentials = nil
	})
}

func (s *MemoryStore) SetOAuthState(sessionID, state string) {
	s.update(sessionID, func(sess *entities.Session) {
		sess.OAuthState = state
	})
}

// ConsumeOAuthState returns the pending state once; a second call misses.
func (s *MemoryStore) ConsumeOAuthState(sessionID string) (string, bool) {
	var state string
	s.update(sessionID, func(sess *entities.Session) {
		state = sess.OAuthState
		sess.OAuthState = ""
	})
	return state, state != ""
}

// Delete forgets the whole session (logout).
func (s *MemoryStore) Delete(sessionID string) {
	s.sessions.Delete(sessionID)
}

// Sweep evicts idle sessions; run periodically when idleTTL is set.
func (s *MemoryStore) Sweep() int {
	return s.sessions.Sweep()
}

// read returns the session and, with an idle TTL, renews its deadline.
func (s *MemoryStore) read(sessionID string) (entities.Session, bool) {
	if s.idleTTL <= 0 {
		return s.sessions.Get(sessionID)
	}
	var (
		sess entities.Session
		ok   bool
	)
	s.sessions.Update(sessionID, s.idleTTL, func(cur entities.Session, found bool) (entities.Session, bool) {
		sess, ok = cur, found
		return cur, found
	})
	return sess, ok
}

func (s *MemoryStore) update(sessionID string, mutate func(*entities.Session)) {
	s.sessions.Update(sessionID, s.idleTTL, func(cur entities.Session, found bool) (entities.Session, bool) {
		if !found {
			cur = entities.Session{ID: sessionID}
		}
		if cur.Credentials != nil {
			c := *cur.Credentials
			cur.Credentials = &c
		}
		mutate(&cur)
		cur.UpdatedAt = s.now()
		return cur, true
	})
}
