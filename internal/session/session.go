// Package session implements the opaque bearer-token scheme: a random token
// is written onto the user row at login and presented verbatim on later
// requests. There is no revocation list; a token dies only when a newer login
// overwrites it or the expiry policy says its time is up.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
)

// ErrInvalidToken is returned when a presented token maps to no live session
var ErrInvalidToken = errors.New("invalid token")

// ExpiryPolicy decides how long an issued token remains valid
type ExpiryPolicy interface {
	// Expired reports whether a token issued at the given time is dead
	Expired(issued time.Time) bool
	// CacheTTL is the lifetime of cache entries; zero means no expiry
	CacheTTL() time.Duration
}

// NoExpiry keeps tokens valid until the next login overwrites them. This is
// the default policy.
type NoExpiry struct{}

func (NoExpiry) Expired(time.Time) bool  { return false }
func (NoExpiry) CacheTTL() time.Duration { return 0 }

// TTLExpiry invalidates tokens a fixed duration after issuance
type TTLExpiry struct {
	TTL time.Duration
}

func (p TTLExpiry) Expired(issued time.Time) bool { return time.Since(issued) > p.TTL }
func (p TTLExpiry) CacheTTL() time.Duration       { return p.TTL }

// PolicyFor maps a configured TTL to a policy, with zero meaning no expiry
func PolicyFor(ttl time.Duration) ExpiryPolicy {
	if ttl > 0 {
		return TTLExpiry{TTL: ttl}
	}
	return NoExpiry{}
}

// Store issues and resolves opaque session tokens. The user table is the
// source of truth; redis is a read-through cache in front of it and the
// store works without it.
type Store struct {
	db     *gorm.DB
	cache  *redis.Client
	policy ExpiryPolicy
}

// NewStore creates a session store. cache may be nil.
func NewStore(db *gorm.DB, cache *redis.Client, policy ExpiryPolicy) *Store {
	if policy == nil {
		policy = NoExpiry{}
	}
	return &Store{db: db, cache: cache, policy: policy}
}

// Issue generates a fresh token and persists it onto every user in ids.
// Issuing to several users at once mirrors the bulk login update: all rows
// matching the credentials receive the same token.
func (s *Store) Issue(ctx context.Context, userIDs []uint) (string, error) {
	token := uuid.NewString()
	now := time.Now()

	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", userIDs).
		Updates(map[string]interface{}{"token": token, "token_issued": now})
	if result.Error != nil {
		return "", result.Error
	}

	if s.cache != nil && len(userIDs) > 0 {
		if err := s.cache.Set(ctx, cacheKey(token), userIDs[0], s.policy.CacheTTL()).Err(); err != nil {
			// Cache failures degrade to DB lookups, nothing is lost
			log.Printf("session: failed to cache token: %v", err)
		}
	}

	return token, nil
}

// Resolve maps a presented token to its user. The cached id is only a hint:
// the user row is re-checked so that an overwritten token stops resolving
// the moment a newer login lands.
func (s *Store) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if s.cache != nil {
		if id, err := s.cache.Get(ctx, cacheKey(token)).Uint64(); err == nil {
			user, err := s.loadUser(ctx, uint(id), token)
			if err == nil {
				return user, nil
			}
			// Stale entry, evict and fall through to the table scan
			s.cache.Del(ctx, cacheKey(token))
		}
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	if s.expired(&user) {
		return nil, ErrInvalidToken
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(token), user.ID, s.policy.CacheTTL()).Err(); err != nil {
			log.Printf("session: failed to cache token: %v", err)
		}
	}

	return &user, nil
}

// loadUser fetches a user by id and verifies the token column still matches
func (s *Store) loadUser(ctx context.Context, id uint, token string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, ErrInvalidToken
	}
	if user.Token == nil || *user.Token != token || s.expired(&user) {
		return nil, ErrInvalidToken
	}
	return &user, nil
}

func (s *Store) expired(user *models.User) bool {
	return user.TokenIssued != nil && s.policy.Expired(*user.TokenIssued)
}

func cacheKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
