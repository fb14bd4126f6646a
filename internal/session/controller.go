// Package session owns the learner's progress state and moves the app
// between the welcome screen, the practice modes and the daily summary.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/store"
)

var (
	// ErrUnknownMode is returned for a mode tag outside progress.AllModes.
	ErrUnknownMode = errors.New("unknown practice mode")

	// ErrAlreadyCompleted is returned when a mode is completed a second time
	// on the same day. The completion is not applied.
	ErrAlreadyCompleted = errors.New("mode already completed today")

	// ErrInvalidTransition is returned when a view change is not allowed from
	// the current view.
	ErrInvalidTransition = errors.New("invalid view transition")
)

// Controller is the single owner of State. Each transition computes the new
// state with the pure progress functions, then saves the changed documents.
// Save failures are logged and do not undo the in-memory transition.
type Controller struct {
	mu     sync.Mutex
	st     State
	repo   store.StateRepo
	events store.EventRepo
	clock  progress.Clock
	log    *zap.Logger
	newID  func() string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for day identifiers.
func WithClock(c progress.Clock) Option { return func(ctl *Controller) { ctl.clock = c } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(ctl *Controller) { ctl.log = l } }

// WithEventRepo records every completion as a practice event.
func WithEventRepo(r store.EventRepo) Option { return func(ctl *Controller) { ctl.events = r } }

// NewController creates a controller over repo. Call Load before use.
func NewController(repo store.StateRepo, opts ...Option) *Controller {
	c := &Controller{
		repo:  repo,
		clock: progress.SystemClock,
		log:   zap.NewNop(),
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	c.st = c.initial()
	return c
}

func (c *Controller) initial() State {
	st := State{
		Progress:       progress.NewActivityProgress(c.clock.Today()),
		History:        []progress.DailyResult{},
		CompletedDates: []string{},
		View:           ViewWelcome,
	}
	c.derive(&st)
	return st
}

func (c *Controller) derive(st *State) {
	st.Level = progress.ForXP(st.Stats.XP)
	st.Week = progress.Weekly(st.CompletedDates, c.clock())
}

// Load reads the persisted documents. Corrupt documents are logged and
// replaced by defaults. A streak that can no longer continue is zeroed and
// progress from an earlier day is discarded.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	today, yesterday := c.clock.Today(), c.clock.Yesterday()
	st := c.initial()

	if err := c.read(ctx, store.KeyUserStats, &st.Stats); err != nil {
		return err
	}
	if err := c.read(ctx, store.KeyActivityProgress, &st.Progress); err != nil {
		return err
	}
	if err := c.read(ctx, store.KeyDailyResults, &st.History); err != nil {
		return err
	}
	if err := c.read(ctx, store.KeyCompletedDates, &st.CompletedDates); err != nil {
		return err
	}

	if reconciled := progress.Reconcile(st.Stats, today, yesterday); reconciled != st.Stats {
		c.log.Info("streak expired",
			zap.Int("streak", st.Stats.Streak), zap.String("last", st.Stats.LastCompletionDate))
		st.Stats = reconciled
		c.save(ctx, map[string]any{store.KeyUserStats: st.Stats})
	}
	if !st.Progress.IsFor(today) {
		st.Progress = progress.NewActivityProgress(today)
	}
	if st.Progress.Points == nil {
		st.Progress.Points = map[progress.Mode]int{}
	}
	if st.History == nil {
		st.History = []progress.DailyResult{}
	}
	if st.CompletedDates == nil {
		st.CompletedDates = []string{}
	}

	c.derive(&st)
	c.st = st
	return nil
}

// read decodes key into dst. A missing or corrupt document leaves dst as
// it was.
func (c *Controller) read(ctx context.Context, key string, dst any) error {
	if c.repo == nil {
		return nil
	}
	_, err := c.repo.Get(ctx, key, dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrCorrupt):
		c.log.Warn("discarding corrupt state", zap.String("key", key), zap.Error(err))
		return nil
	default:
		return fmt.Errorf("load %s: %w", key, err)
	}
}

func (c *Controller) save(ctx context.Context, docs map[string]any) {
	if c.repo == nil || len(docs) == 0 {
		return
	}
	if err := c.repo.PutMany(ctx, docs); err != nil {
		c.log.Warn("save state", zap.Error(err))
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.clone()
}

// Select moves from the welcome view to mode's view.
func (c *Controller) Select(mode progress.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := ViewFor(mode)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if c.st.View != ViewWelcome {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, c.st.View, v)
	}
	c.st.View = v
	return nil
}

// Exit returns to the welcome view without changing progress.
func (c *Controller) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.View = ViewWelcome
}

// Complete applies a finished mode: XP and level, the streak on the first
// completion of the day, the day's activity record and, once every mode is
// done, the daily result. The new view is welcome, or summary when the day
// is finished. A mode already completed today is rejected with
// ErrAlreadyCompleted and changes nothing but the view.
func (c *Controller) Complete(ctx context.Context, done Completion) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := ViewFor(done.Mode); !ok {
		return Outcome{View: c.st.View}, fmt.Errorf("%w: %q", ErrUnknownMode, done.Mode)
	}

	today, yesterday := c.clock.Today(), c.clock.Yesterday()
	st := c.st.clone()
	if !st.Progress.IsFor(today) {
		st.Progress = progress.NewActivityProgress(today)
	}

	runID := c.newID()
	if st.Progress.HasCompleted(done.Mode) {
		c.st.Progress = st.Progress
		c.st.View = ViewWelcome
		c.record(ctx, runID, today, done, false)
		c.log.Info("completion rejected", zap.String("mode", string(done.Mode)), zap.String("day", today))
		return Outcome{View: ViewWelcome, Level: c.st.Level, Streak: c.st.Stats.Streak},
			fmt.Errorf("%w: %s", ErrAlreadyCompleted, done.Mode)
	}

	before := st.Level.Level
	docs := map[string]any{}

	var newDay bool
	st.Stats, newDay = progress.Credit(st.Stats, done.XP, today, yesterday)
	docs[store.KeyUserStats] = st.Stats
	if newDay {
		st.CompletedDates = progress.AddCompletedDate(st.CompletedDates, today)
		docs[store.KeyCompletedDates] = st.CompletedDates
	}

	st.Progress = progress.RecordCompletion(st.Progress, done.Mode, done.Points, done.Missed)
	docs[store.KeyActivityProgress] = st.Progress

	out := Outcome{Accepted: true, NewDay: newDay, View: ViewWelcome}
	if progress.IsAllComplete(st.Progress, progress.AllModes) {
		result := progress.Finalize(st.Progress)
		st.History = progress.InsertResult(st.History, result)
		docs[store.KeyDailyResults] = st.History
		out.Result = &result
		out.View = ViewSummary
	}

	st.View = out.View
	c.derive(&st)
	c.st = st

	out.Level = st.Level
	out.LeveledUp = st.Level.Level > before
	out.Streak = st.Stats.Streak

	c.save(ctx, docs)
	c.record(ctx, runID, today, done, true)

	c.log.Info("mode completed",
		zap.String("run_id", runID),
		zap.String("mode", string(done.Mode)),
		zap.Int("xp", done.XP),
		zap.Int("points", done.Points),
		zap.Int("missed", len(done.Missed)),
		zap.Int("streak", st.Stats.Streak),
		zap.Bool("day_finished", out.Result != nil),
	)
	return out, nil
}

func (c *Controller) record(ctx context.Context, runID, day string, done Completion, accepted bool) {
	if c.events == nil {
		return
	}
	err := c.events.AppendPractice(ctx, store.PracticeEventData{
		RunID:       runID,
		Day:         day,
		Mode:        string(done.Mode),
		XP:          done.XP,
		Points:      done.Points,
		MissedCount: len(done.Missed),
		DurationMs:  done.Duration,
		Accepted:    accepted,
	})
	if err != nil {
		c.log.Warn("record practice event", zap.Error(err))
	}
}

// ResetProgress starts today's activity record over so every mode can be
// played and credited again. Stats, history and attendance are kept.
func (c *Controller) ResetProgress(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.st.Progress = progress.NewActivityProgress(c.clock.Today())
	c.st.View = ViewWelcome
	if c.repo == nil {
		return nil
	}
	if err := c.repo.Put(ctx, store.KeyActivityProgress, c.st.Progress); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	return nil
}

// ResetAll deletes every progress document and returns to a fresh state.
// Cached daily content is left alone.
func (c *Controller) ResetAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.repo != nil {
		err := c.repo.Delete(ctx,
			store.KeyUserStats, store.KeyActivityProgress,
			store.KeyDailyResults, store.KeyCompletedDates)
		if err != nil {
			return fmt.Errorf("reset all: %w", err)
		}
	}
	c.st = c.initial()
	return nil
}
