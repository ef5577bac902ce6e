// services/gamification.go - Gamification Engine Service
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var (
	ErrRewardNotFound       = errors.New("reward not found")
	ErrRewardAlreadyClaimed = errors.New("reward already claimed")
)

// GamificationService turns raw reader activity into streaks, points,
// daily challenges, and unlocked rewards. The database handle and the
// clock are injected so tests can run against an in-memory store with
// a fixed "today".
type GamificationService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGamificationService(db *gorm.DB) *GamificationService {
	return &GamificationService{db: db, now: time.Now}
}

// NewGamificationServiceWithClock builds a service with a custom clock.
func NewGamificationServiceWithClock(db *gorm.DB, clock func() time.Time) *GamificationService {
	return &GamificationService{db: db, now: clock}
}

// DB exposes the underlying handle for read-model queries outside the
// engine (leaderboard, admin tooling).
func (s *GamificationService) DB() *gorm.DB {
	return s.db
}

// Today returns the engine's current calendar date as YYYY-MM-DD.
func (s *GamificationService) Today() string {
	return s.now().Format(time.DateOnly)
}

func (s *GamificationService) today() string {
	return s.Today()
}

// daysBetween returns the whole calendar days from one stored date to
// another. Dates are engine-written, so a parse failure means the row
// was corrupted outside the engine.
func daysBetween(from, to string) (int, error) {
	a, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", from, err)
	}
	b, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", to, err)
	}
	return int(b.Sub(a).Hours() / 24), nil
}
