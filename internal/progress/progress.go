// Package progress records completed levels per topic and keeps the XP and
// streak counters that go with them.
//
// XP and streak are stored values, not derived from the progress records,
// and only this package writes them. A completion touches several keys in
// turn; the writes are not atomic against the process dying between them.
package progress

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aptidude/aptidude/internal/logging"
	"github.com/aptidude/aptidude/internal/models"
	"github.com/aptidude/aptidude/internal/records"
	"github.com/golang-module/carbon/v2"
)

const (
	KeyPrefix     = "progress:"
	KeyXP         = "user-xp"
	KeyStreak     = "user-streak"
	KeyLastActive = "last-active-date"
)

var ErrEmptyID = errors.New("progress: topic and level ids must not be empty")

func nonNegative(v int) int { return max(v, 0) }

var (
	xpField     = records.Int(KeyXP, 0, nonNegative)
	streakField = records.Int(KeyStreak, 0, nonNegative)
)

func topicField(topicID string) records.Field[models.Progress] {
	return records.JSON(KeyPrefix+topicID, models.Progress{TopicID: topicID})
}

type Store struct {
	store     *records.Store
	log       logging.Logger
	timezone  string
	now       func() carbon.Carbon
	lastField records.Field[string]
}

type Option func(*Store)

// WithTimezone sets the zone that decides where one day ends. Default UTC.
func WithTimezone(tz string) Option {
	return func(s *Store) { s.timezone = tz }
}

// WithClock overrides the current time source.
func WithClock(now func() carbon.Carbon) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(store *records.Store, log logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{
		store:    store,
		log:      log.With("component", "progress"),
		timezone: carbon.UTC,
	}
	for _, o := range opts {
		o(s)
	}

	if _, err := time.LoadLocation(s.timezone); err != nil {
		s.log.Warn(context.Background(), "unknown timezone, using UTC", "timezone", s.timezone)
		s.timezone = carbon.UTC
	}
	if s.now == nil {
		tz := s.timezone
		s.now = func() carbon.Carbon { return carbon.Now(tz) }
	}

	s.lastField = records.Text(KeyLastActive, "",
		func(v string) string { return v },
		s.parseDay)
	return s
}

func (s *Store) parseDay(v string) (string, error) {
	c := carbon.ParseByLayout(v, time.DateOnly, s.timezone)
	if c.Error != nil {
		return "", c.Error
	}
	return c.ToDateString(), nil
}

// RecordLevelCompletion marks levelID of topicID completed and credits xp.
// Completing an already completed level changes nothing and reports false.
func (s *Store) RecordLevelCompletion(ctx context.Context, topicID, levelID string, xp int) (bool, error) {
	if topicID == "" || levelID == "" {
		return false, ErrEmptyID
	}

	p, err := s.Progress(ctx, topicID)
	if err != nil {
		return false, err
	}
	if !p.Complete(levelID) {
		return false, nil
	}
	if err := records.Save(ctx, s.store, topicField(topicID), p); err != nil {
		return false, fmt.Errorf("save progress %s: %w", topicID, err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return true, err
	}
	stats = s.accrue(stats, xp)

	if err := records.Save(ctx, s.store, xpField, stats.XP); err != nil {
		return true, fmt.Errorf("save xp: %w", err)
	}
	if err := records.Save(ctx, s.store, streakField, stats.Streak); err != nil {
		return true, fmt.Errorf("save streak: %w", err)
	}
	if err := records.Save(ctx, s.store, s.lastField, stats.LastActiveDate); err != nil {
		return true, fmt.Errorf("save last active date: %w", err)
	}

	s.log.Debug(ctx, "level completed",
		"topic", topicID, "level", levelID, "xp", stats.XP, "streak", stats.Streak)
	return true, nil
}

// accrue adds xp and advances the streak by calendar day. A missed day does
// not reset the streak; it only stops growing until activity resumes on
// consecutive days.
func (s *Store) accrue(st models.UserStats, xp int) models.UserStats {
	now := s.now()
	today := now.ToDateString()
	yesterday := now.SubDay().ToDateString()

	st.XP = saturatingAdd(st.XP, max(xp, 0))

	if st.LastActiveDate == yesterday {
		st.Streak = saturatingAdd(st.Streak, 1)
	} else {
		st.Streak = max(st.Streak, 1)
	}
	st.LastActiveDate = today
	return st
}

// saturatingAdd adds two non-negative counters, stopping at math.MaxInt.
func saturatingAdd(a, b int) int {
	if b > math.MaxInt-a {
		return math.MaxInt
	}
	return a + b
}

// Progress returns the record of one topic, empty if it has none.
func (s *Store) Progress(ctx context.Context, topicID string) (models.Progress, error) {
	p, err := records.Load(ctx, s.store, topicField(topicID))
	if err != nil {
		return models.Progress{}, err
	}
	p.TopicID = topicID
	p.Dedup()
	return p, nil
}

// AllProgress returns one record per topic with at least one completed level,
// ordered by topic id.
func (s *Store) AllProgress(ctx context.Context) ([]models.Progress, error) {
	keys, err := s.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	out := make([]models.Progress, 0, len(keys))
	for _, k := range keys {
		p, err := s.Progress(ctx, strings.TrimPrefix(k, KeyPrefix))
		if err != nil {
			return nil, err
		}
		if len(p.CompletedLevels) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Stats reads the stored counters.
func (s *Store) Stats(ctx context.Context) (models.UserStats, error) {
	xp, err := records.Load(ctx, s.store, xpField)
	if err != nil {
		return models.UserStats{}, err
	}
	streak, err := records.Load(ctx, s.store, streakField)
	if err != nil {
		return models.UserStats{}, err
	}
	last, err := records.Load(ctx, s.store, s.lastField)
	if err != nil {
		return models.UserStats{}, err
	}
	return models.UserStats{XP: xp, Streak: streak, LastActiveDate: last}, nil
}

// TotalCompletedLevels sums completed levels over all topics.
func (s *Store) TotalCompletedLevels(ctx context.Context) (int, error) {
	all, err := s.AllProgress(ctx)
	if err != nil {
		return 0, err
	}
	return Total(all), nil
}

// Total sums completed levels over ps.
func Total(ps []models.Progress) int {
	n := 0
	for _, p := range ps {
		n += len(p.CompletedLevels)
	}
	return n
}
