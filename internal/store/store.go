// Package store is the in-memory holder of the session and the domain
// collections. All operations are synchronous; failed operations leave
// every collection untouched. Nothing is persisted across the process.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"petcare-service/internal/models"
	"petcare-service/internal/observability"
	"petcare-service/internal/seed"
)

var (
	// ErrNotFound signals an operation referenced an id absent from its collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument signals an operation received an unusable argument.
	ErrInvalidArgument = errors.New("invalid argument")
)

// SessionStore is the session surface handlers depend on.
type SessionStore interface {
	Login(email, password string, userType models.UserType) (models.User, error)
	Register(name, email, password string, userType models.UserType) (models.User, error)
	Logout()
	CurrentUser() (models.User, bool)
}

// Store holds the current user and the four mutable domain collections.
type Store struct {
	mu sync.RWMutex

	currentUser  *models.User
	pets         []models.Pet
	plans        []models.HealthPlan
	appointments []models.Appointment
	groups       []models.Group
	// messages maps group id to its chronological message sequence. A
	// sequence exists for every group from the moment of its creation.
	messages map[string][]models.Message

	now   func() time.Time
	newID func() string
}

// New constructs a store initialized from the given seed collections.
func New(data seed.Data) *Store {
	s := &Store{
		pets:         append([]models.Pet(nil), data.Pets...),
		plans:        make([]models.HealthPlan, 0, len(data.HealthPlans)),
		appointments: append([]models.Appointment(nil), data.Appointments...),
		groups:       make([]models.Group, 0, len(data.Groups)),
		messages:     make(map[string][]models.Message, len(data.Messages)),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, p := range data.HealthPlans {
		s.plans = append(s.plans, clonePlan(p))
	}
	for _, g := range data.Groups {
		s.groups = append(s.groups, cloneGroup(g))
	}
	for id, seq := range data.Messages {
		s.messages[id] = append([]models.Message(nil), seq...)
	}
	// Seeds may omit sequences for message-less groups.
	for _, g := range s.groups {
		if _, ok := s.messages[g.ID]; !ok {
			s.messages[g.ID] = []models.Message{}
		}
	}
	return s
}

// Login starts a session for the given credentials. No verification is
// performed; the display name is derived from the email local part.
func (s *Store) Login(email, password string, userType models.UserType) (models.User, error) {
	var err error
	defer func() { record("session", "login", err) }()

	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		err = ErrInvalidArgument
		return models.User{}, err
	}

	user := models.User{
		ID:    s.newID(),
		Name:  displayName(email),
		Email: email,
		Type:  userType,
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
	return user, nil
}

// Register starts a session for a new account. No duplicate-email check is
// performed.
func (s *Store) Register(name, email, password string, userType models.UserType) (models.User, error) {
	var err error
	defer func() { record("session", "register", err) }()

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		err = ErrInvalidArgument
		return models.User{}, err
	}

	user := models.User{
		ID:    s.newID(),
		Name:  strings.TrimSpace(name),
		Email: email,
		Type:  userType,
	}

	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
	return user, nil
}

// Logout clears the current user. Domain collections are kept.
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()
	record("session", "logout", nil)
}

// CurrentUser returns the active session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return models.User{}, false
	}
	return *s.currentUser, true
}

func displayName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}

func record(entity, operation string, err error) {
	switch {
	case err == nil:
		observability.IncStoreOp(entity, operation, "ok")
	case errors.Is(err, ErrNotFound):
		observability.IncStoreOp(entity, operation, "not_found")
	case errors.Is(err, ErrInvalidArgument):
		observability.IncStoreOp(entity, operation, "invalid_argument")
	default:
		observability.IncStoreOp(entity, operation, "error")
	}
}
