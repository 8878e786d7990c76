package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"village/internal/models"
	"village/internal/repository"
	"village/internal/validation"
)

var (
	// ErrNoSession is returned by operations that require a signed-in user
	ErrNoSession = errors.New("no user is signed in")
)

// SessionService holds the single current user and mirrors it to durable storage
type SessionService struct {
	mu         sync.RWMutex
	storage    repository.LocalStorage
	storageKey string
	ids        IDGenerator
	now        func() time.Time

	user       *models.User
	loading    bool
	persistErr error
}

// NewSessionService creates a session store. It reports Loading until Restore runs.
func NewSessionService(storage repository.LocalStorage, storageKey string) *SessionService {
	return &SessionService{
		storage:    storage,
		storageKey: storageKey,
		ids:        UUIDGenerator{},
		now:        time.Now,
		loading:    true,
	}
}

// Restore loads a previously persisted user, if any. Loading is cleared even on failure;
// a corrupt record is logged and ignored.
func (s *SessionService) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	raw, ok, err := s.storage.GetItem(ctx, s.storageKey)
	if err != nil {
		log.Warn().Err(err).Str("key", s.storageKey).Msg("failed to read saved session")
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn().Err(err).Str("key", s.storageKey).Msg("ignoring unreadable saved session")
		return nil
	}

	s.user = &user
	log.Debug().Str("user_id", user.ID).Msg("session restored")
	return nil
}

// Loading reports whether the initial restore is still pending
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// CurrentUser returns a copy of the signed-in user
func (s *SessionService) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return s.user.Clone(), true
}

// IsAuthenticated reports whether a user is signed in
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// DemoEmail is the address of the demonstration account
const DemoEmail = "sarah.johnson@example.com"

// Login signs in the demonstration account under the supplied email, which may be empty.
// Credentials are not verified.
func (s *SessionService) Login(ctx context.Context, email, password string) models.User {
	user := demoUser()
	user.Email = email

	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(ctx, user)
	log.Info().Str("user_id", user.ID).Msg("user signed in")
	return user.Clone()
}

// Signup creates and signs in a new, unverified account joined today
func (s *SessionService) Signup(ctx context.Context, draft models.SignupDraft) models.User {
	user := models.User{
		ID:         s.ids.NewID(),
		Email:      draft.Email,
		Name:       draft.Name,
		Avatar:     draft.Avatar,
		Location:   draft.Location,
		Children:   models.User{Children: draft.Children}.Clone().Children,
		Verified:   false,
		JoinedDate: s.now().Format(validation.DateLayout),
	}
	if user.Children == nil {
		user.Children = []models.Child{}
	}
	for i := range user.Children {
		if user.Children[i].ID == "" {
			user.Children[i].ID = s.ids.NewID()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(ctx, user)
	log.Info().Str("user_id", user.ID).Int("children", len(user.Children)).Msg("account created")
	return user.Clone()
}

// Logout clears the current user from memory and durable storage
func (s *SessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.persistErr = s.storage.RemoveItem(ctx, s.storageKey)
	if s.persistErr != nil {
		log.Error().Err(s.persistErr).Str("key", s.storageKey).Msg("failed to clear saved session")
	}
	log.Info().Msg("user signed out")
}

// UpdateProfile shallow-merges the supplied fields onto the current user
func (s *SessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, ErrNoSession
	}

	updated := update.Apply(*s.user)
	s.install(ctx, updated)
	return updated.Clone(), nil
}

// LastPersistError returns the error of the most recent storage write, if it failed
func (s *SessionService) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// install sets the current user and writes it through to storage. Caller holds mu.
// Write failures are logged, never returned.
func (s *SessionService) install(ctx context.Context, user models.User) {
	s.user = &user
	s.persistErr = s.persist(ctx, user)
	if s.persistErr != nil {
		log.Error().Err(s.persistErr).Str("key", s.storageKey).Msg("failed to save session")
	}
}

func (s *SessionService) persist(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.storage.SetItem(ctx, s.storageKey, string(data))
}

func demoUser() models.User {
	return models.User{
		ID:     "1",
		Email:  DemoEmail,
		Name:   "Sarah Johnson",
		Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Children: []models.Child{
			{
				ID:        "1",
				Name:      "Emma",
				Age:       7,
				Needs:     []string{"Autism", "Sensory Processing"},
				Interests: []string{"Art", "Music", "Animals"},
			},
		},
		Location:   "San Francisco, CA",
		Verified:   true,
		JoinedDate: "2024-01-15",
	}
}
