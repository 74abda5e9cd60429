package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pedala/internal/domain"
	"pedala/internal/repository"
)

// Store keys. The user hash is keyed by email; scheduled rides by id.
const (
	usersKey = "users"
	tokenKey = "token"
)

// UserStore implements repository.UserRepository on the Redis key-value
// collaborator. Records are whole JSON documents; writes are last-write-
// wins with no transactional isolation.
type UserStore struct {
	client *redis.Client
}

// NewUserStore creates a new UserStore.
func NewUserStore(client *redis.Client) *UserStore {
	return &UserStore{client: client}
}

// GetByEmail retrieves a user by email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	data, err := s.client.HGet(ctx, usersKey, email).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", repository.ErrCorruptData, email, err)
	}
	return &user, nil
}

// Save persists the full user record.
func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, usersKey, user.Email, data).Err()
}

// GetAll retrieves all users.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	entries, err := s.client.HGetAll(ctx, usersKey).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(entries))
	for email, raw := range entries {
		var user domain.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("%w: user %s: %v", repository.ErrCorruptData, email, err)
		}
		users = append(users, &user)
	}
	return users, nil
}

// GetToken reads the opaque auth token stored by the presentation layer.
// The core never writes this key. Returns an empty string when absent.
func (s *UserStore) GetToken(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return token, nil
}
