package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "loancrm:idemp:"

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

// buildKey scopes a key to the route pattern and the concrete path, so
// the same key reused on /applications/1 and /applications/2 never collides.
func buildKey(method, route, path, key string) string {
	return keyPrefix + strings.ToLower(method) + ":" + route + ":" + path + ":" + key
}

// normalizeKey accepts a UUID in any canonical form or 32 lowercase hex
// characters and returns the lowercase dashless form.
func normalizeKey(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	// uuid.Parse also accepts urn: and braces; only plain ids are keys
	if len(raw) != 32 && len(raw) != 36 {
		return "", false
	}
	return strings.ReplaceAll(u.String(), "-", ""), true
}

// parseRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339
// with a zone. Naive local timestamps are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New(HeaderRequestAt + " must be epoch (s/ms) or RFC3339 with timezone")
}

type entry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	CreatedAt  time.Time `json:"created_at"`
}

// replayStore keeps one entry per idempotency key in Redis.
type replayStore struct{ rdb redis.Cmdable }

// reserve claims key for an in-flight request; false means it exists.
func (s replayStore) reserve(ctx context.Context, key string, e entry, ttl time.Duration) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, payload, ttl).Result()
}

func (s replayStore) load(ctx context.Context, key string) (entry, error) {
	var e entry
	v, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(v, &e)
	return e, err
}

func (s replayStore) finish(ctx context.Context, key string, e entry, ttl time.Duration) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}

func (s replayStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
