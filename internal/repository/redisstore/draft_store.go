// Package redisstore keeps registration drafts in Redis so that a browsing
// session can be resumed from a different process.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"altranzfest/internal/domain"
)

const keyPrefix = "festreg:draft:"

// DefaultDraftTTL bounds how long an unfinished draft is kept.
const DefaultDraftTTL = 30 * time.Minute

// NewClient parses a redis:// URL and checks the connection.
func NewClient(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

type draftStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewDraftStore returns a DraftStore whose entries expire after ttl.
// A non-positive ttl uses DefaultDraftTTL.
func NewDraftStore(client redis.Cmdable, ttl time.Duration) domain.DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &draftStore{client: client, ttl: ttl}
}

func (s *draftStore) Save(ctx context.Context, sessionID string, draft *domain.RegistrationDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *draftStore) Load(ctx context.Context, sessionID string) (*domain.RegistrationDraft, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftAbsent
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var draft domain.RegistrationDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *draftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
