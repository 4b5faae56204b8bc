package selection

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/model"
)

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

func (s *MemoryStore) Open(_ context.Context, accountID string, action model.Action, tokenID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	loading := false
	if prev, ok := s.sessions[accountID]; ok {
		loading = prev.Loading
	}

	session := &Session{
		AccountID: accountID,
		Action:    action,
		TokenID:   tokenID,
		Input:     model.UserInput{Amount: decimal.Zero},
		Open:      true,
		Loading:   loading,
		UpdatedAt: s.now(),
	}
	s.sessions[accountID] = session

	copied := *session
	return &copied, nil
}

func (s *MemoryStore) Get(_ context.Context, accountID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[accountID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := *session
	return &copied, nil
}

func (s *MemoryStore) SetAmount(_ context.Context, accountID string, amount decimal.Decimal, isMax bool) (*Session, error) {
	return s.update(accountID, func(session *Session) {
		session.Input.Amount = amount
		session.Input.IsMax = isMax
	})
}

func (s *MemoryStore) ToggleUseAsCollateral(_ context.Context, accountID string, useAsCollateral bool) (*Session, error) {
	return s.update(accountID, func(session *Session) {
		session.Input.UseAsCollateral = useAsCollateral
	})
}

func (s *MemoryStore) Hide(_ context.Context, accountID string) error {
	_, err := s.update(accountID, func(session *Session) {
		session.Open = false
	})
	return err
}

func (s *MemoryStore) AcquireLoading(_ context.Context, accountID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[accountID]
	if !ok {
		return false, ErrSessionNotFound
	}
	if session.Loading {
		return false, nil
	}
	session.Loading = true
	session.UpdatedAt = s.now()
	return true, nil
}

func (s *MemoryStore) ReleaseLoading(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[accountID]; ok {
		session.Loading = false
		session.UpdatedAt = s.now()
	}
	return nil
}

func (s *MemoryStore) update(accountID string, fn func(session *Session)) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[accountID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	fn(session)
	session.UpdatedAt = s.now()

	copied := *session
	return &copied, nil
}
