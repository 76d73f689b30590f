package selection

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cross-page selection state: what the user is currently working on. Set on
// navigation entry, cleared on explicit deselect. Stored per dashboard
// session with a TTL so abandoned sessions expire on their own.

const ttl = 24 * time.Hour

// ErrNotSet is returned when a session has no selection of the given kind.
var ErrNotSet = errors.New("selection: not set")

type SelectedJob struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type ActiveReminder struct {
	ID      int    `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func jobKey(sessionID string) string      { return "selection:" + sessionID + ":job" }
func reminderKey(sessionID string) string { return "selection:" + sessionID + ":reminder" }

func (s *Store) SetJob(ctx context.Context, sessionID string, job SelectedJob) error {
	return s.set(ctx, jobKey(sessionID), job)
}

func (s *Store) Job(ctx context.Context, sessionID string) (*SelectedJob, error) {
	var job SelectedJob
	if err := s.get(ctx, jobKey(sessionID), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *Store) ClearJob(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, jobKey(sessionID)).Err()
}

func (s *Store) SetReminder(ctx context.Context, sessionID string, r ActiveReminder) error {
	return s.set(ctx, reminderKey(sessionID), r)
}

func (s *Store) Reminder(ctx context.Context, sessionID string) (*ActiveReminder, error) {
	var r ActiveReminder
	if err := s.get(ctx, reminderKey(sessionID), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ClearReminder(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, reminderKey(sessionID)).Err()
}

func (s *Store) set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}

func (s *Store) get(ctx context.Context, key string, out any) error {
	payload, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotSet
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}
