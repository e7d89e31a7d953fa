// Package kvstore is the whole "backend": named keys mapped to
// JSON-serialized collections in one table. Every mutation is a full
// read-modify-write of its collection, so the last writer wins for the
// entire collection — acceptable at single-admin scale, and preserved
// deliberately.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. The two message keys are intentionally separate
// collections with different schemas.
const (
	KeyUsers          = "loan-app-users"
	KeyLoans          = "loan-app-loans"
	KeyDirectMessages = "loan-app-messages"
	KeyLoanMessages   = "loan_messages"
	KeySettings       = "loan-app-settings"
	KeySession        = "loan-app-user"

	contractTextPrefix = "contract-text-"
)

type Entry struct {
	K         string    `gorm:"primaryKey;size:191;column:k"`
	V         string    `gorm:"type:text;column:v"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at"`
}

func (Entry) TableName() string { return "kv_entries" }

// Store owns the entries table and fans out change notifications.
type Store struct {
	db       *gorm.DB
	notifier *notifier
}

// Open migrates the entries table and returns a ready store.
func Open(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db, notifier: newNotifier()}, nil
}

// get unmarshals the value at key into out. Returns false when the key
// has never been written.
func (s *Store) get(ctx context.Context, key string, out any) (bool, error) {
	var e Entry
	res := s.db.WithContext(ctx).Where("k = ?", key).First(&e)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if res.Error != nil {
		return false, res.Error
	}
	if err := json.Unmarshal([]byte(e.V), out); err != nil {
		return false, err
	}
	return true, nil
}

// put serializes v and replaces the value at key, then notifies
// subscribers. The replace is unconditional: no version check, no
// merge.
func (s *Store) put(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "k"}},
			DoUpdates: clause.AssignmentColumns([]string{"v", "updated_at"}),
		}).
		Create(&Entry{K: key, V: string(payload), UpdatedAt: time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	s.notifier.notify(key)
	return nil
}

// delete removes the key; missing keys are not an error.
func (s *Store) delete(ctx context.Context, key string) error {
	res := s.db.WithContext(ctx).Where("k = ?", key).Delete(&Entry{})
	if res.Error != nil {
		return res.Error
	}
	s.notifier.notify(key)
	return nil
}

// Subscribe registers fn to run after writes to key. A non-zero
// minInterval rate-limits delivery to at most one call per interval,
// matching the 2–3 second refresh cadence of the polling UIs this
// replaces. The returned function cancels the subscription.
func (s *Store) Subscribe(key string, minInterval time.Duration, fn func(key string)) (cancel func()) {
	return s.notifier.subscribe(key, minInterval, fn)
}
