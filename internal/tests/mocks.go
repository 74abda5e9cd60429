package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"pedala/internal/domain"
	"pedala/internal/redis"
	"pedala/internal/repository"
	"pedala/internal/service"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	SaveCallCount       int32
	GetByEmailCallCount int32

	// Error injection
	GetByEmailError error
	SaveError       error
	GetAllError     error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Email] = user
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	atomic.AddInt32(&m.GetByEmailCallCount, 1)
	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	copy.Rentals = append([]domain.Rental(nil), user.Rentals...)
	return &copy, nil
}

func (m *MockUserRepository) Save(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *user
	copy.Rentals = append([]domain.Rental(nil), user.Rentals...)
	m.users[user.Email] = &copy
	return nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		copy.Rentals = append([]domain.Rental(nil), u.Rentals...)
		result = append(result, &copy)
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK SCHEDULED RIDE REPOSITORY
// ──────────────────────────────────────────────

// MockScheduledRideRepository is a mock implementation of
// ScheduledRideRepository.
type MockScheduledRideRepository struct {
	mu    sync.RWMutex
	rides map[string]*domain.ScheduledRide

	// Counters for verification
	AddCallCount    int32
	RemoveCallCount int32

	// Error injection
	AddError    error
	RemoveError error
}

// NewMockScheduledRideRepository creates a new mock ride repository.
func NewMockScheduledRideRepository() *MockScheduledRideRepository {
	return &MockScheduledRideRepository{
		rides: make(map[string]*domain.ScheduledRide),
	}
}

func (m *MockScheduledRideRepository) Add(ctx context.Context, ride *domain.ScheduledRide) error {
	atomic.AddInt32(&m.AddCallCount, 1)
	if m.AddError != nil {
		return m.AddError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *ride
	m.rides[ride.ID] = &copy
	return nil
}

func (m *MockScheduledRideRepository) ListByUser(ctx context.Context, userEmail string) ([]*domain.ScheduledRide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.ScheduledRide
	for _, r := range m.rides {
		if r.UserEmail == userEmail {
			copy := *r
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockScheduledRideRepository) Remove(ctx context.Context, rideID string) error {
	atomic.AddInt32(&m.RemoveCallCount, 1)
	if m.RemoveError != nil {
		return m.RemoveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rides[rideID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rides, rideID)
	return nil
}

// ──────────────────────────────────────────────
// MOCK CANDIDATE STORE
// ──────────────────────────────────────────────

// MockCandidateStore is a mock implementation of CandidateStoreInterface.
type MockCandidateStore struct {
	mu   sync.RWMutex
	sets map[string][]domain.Bike

	// Counters for verification
	SetCallCount int32
	GetCallCount int32

	// Error injection
	SetError error
	GetError error
}

// NewMockCandidateStore creates a new mock candidate store.
func NewMockCandidateStore() *MockCandidateStore {
	return &MockCandidateStore{
		sets: make(map[string][]domain.Bike),
	}
}

func (m *MockCandidateStore) Set(ctx context.Context, userEmail string, bikes []domain.Bike) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[userEmail] = append([]domain.Bike(nil), bikes...)
	return nil
}

func (m *MockCandidateStore) Get(ctx context.Context, userEmail string) ([]domain.Bike, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	bikes, ok := m.sets[userEmail]
	if !ok {
		return nil, nil
	}
	return append([]domain.Bike(nil), bikes...), nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireUserLock(ctx context.Context, userEmail string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[userEmail] {
		return false, nil
	}
	m.locks[userEmail] = true
	return true, nil
}

func (m *MockLockStore) ReleaseUserLock(ctx context.Context, userEmail string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, userEmail)
	return nil
}

// ──────────────────────────────────────────────
// MOCK LOCATION STORE
// ──────────────────────────────────────────────

// MockLocationStore is a mock implementation of LocationStoreInterface.
type MockLocationStore struct {
	mu        sync.RWMutex
	locations map[string]domain.Coordinates

	// Error injection
	LastKnownError error
}

// NewMockLocationStore creates a new mock location store.
func NewMockLocationStore() *MockLocationStore {
	return &MockLocationStore{
		locations: make(map[string]domain.Coordinates),
	}
}

func (m *MockLocationStore) UpdateLocation(ctx context.Context, userEmail string, lat, lng float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[userEmail] = domain.Coordinates{Latitude: lat, Longitude: lng}
	return nil
}

func (m *MockLocationStore) LastKnown(ctx context.Context, userEmail string) (*domain.Coordinates, error) {
	if m.LastKnownError != nil {
		return nil, m.LastKnownError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	coords, ok := m.locations[userEmail]
	if !ok {
		return nil, nil
	}
	copy := coords
	return &copy, nil
}

// ──────────────────────────────────────────────
// MOCK TOKEN READER
// ──────────────────────────────────────────────

// MockTokenReader is a mock implementation of TokenReader.
type MockTokenReader struct {
	Token    string
	GetError error
}

func (m *MockTokenReader) GetToken(ctx context.Context) (string, error) {
	if m.GetError != nil {
		return "", m.GetError
	}
	return m.Token, nil
}

// Ensure mocks implement the interfaces they stand in for.
var (
	_ repository.UserRepository          = (*MockUserRepository)(nil)
	_ repository.ScheduledRideRepository = (*MockScheduledRideRepository)(nil)
	_ redis.CandidateStoreInterface      = (*MockCandidateStore)(nil)
	_ redis.LockStoreInterface           = (*MockLockStore)(nil)
	_ redis.LocationStoreInterface       = (*MockLocationStore)(nil)
	_ service.TokenReader                = (*MockTokenReader)(nil)
)
