package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/store"
)

// friday is 2026-10-16; the week starts on Monday 2026-10-12.
var friday = time.Date(2026, 10, 16, 18, 0, 0, 0, time.Local)

type fixture struct {
	store *store.Store
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return &fixture{store: s, now: friday}
}

func (f *fixture) controller(t *testing.T) *Controller {
	t.Helper()
	c := NewController(f.store.StateRepo(),
		WithClock(func() time.Time { return f.now }),
		WithEventRepo(f.store.EventRepo()),
	)
	require.NoError(t, c.Load(context.Background()))
	return c
}

func (f *fixture) seed(t *testing.T, key string, v any) {
	t.Helper()
	require.NoError(t, f.store.StateRepo().Put(context.Background(), key, v))
}

func complete(t *testing.T, c *Controller, mode progress.Mode, xp, points int, missed ...progress.MissedItem) Outcome {
	t.Helper()
	require.NoError(t, c.Select(mode))
	out, err := c.Complete(context.Background(), Completion{Mode: mode, XP: xp, Points: points, Missed: missed})
	require.NoError(t, err)
	return out
}

func TestLoad_Fresh(t *testing.T) {
	c := newFixture(t).controller(t)
	st := c.State()

	assert.Equal(t, ViewWelcome, st.View)
	assert.Equal(t, progress.UserStats{}, st.Stats)
	assert.Equal(t, "2026-10-16", st.Progress.Date)
	assert.Empty(t, st.Progress.CompletedModes)
	assert.Equal(t, 1, st.Level.Level)
	assert.Equal(t, "Nybörjare", st.Level.Name)
	assert.Equal(t, 0, st.Week.Count)
	assert.Equal(t, 4, st.Week.TodayIndex)
}

func TestSelectAndExit(t *testing.T) {
	c := newFixture(t).controller(t)

	err := c.Select("spelling")
	assert.ErrorIs(t, err, ErrUnknownMode)

	require.NoError(t, c.Select(progress.ModeGrammar))
	assert.Equal(t, ViewGrammar, c.State().View)

	err = c.Select(progress.ModeQuiz)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	c.Exit()
	assert.Equal(t, ViewWelcome, c.State().View)
	assert.Empty(t, c.State().Progress.CompletedModes, "exit must not record anything")
}

func TestComplete_StreakContinues(t *testing.T) {
	f := newFixture(t)
	f.seed(t, store.KeyUserStats, progress.UserStats{Streak: 3, XP: 40, LastCompletionDate: "2026-10-15"})
	f.seed(t, store.KeyCompletedDates, []string{"2026-10-14", "2026-10-15"})
	c := f.controller(t)

	out := complete(t, c, progress.ModeFlashcard, 20, 40)

	assert.True(t, out.Accepted)
	assert.True(t, out.NewDay)
	assert.Equal(t, 4, out.Streak)
	assert.Equal(t, ViewWelcome, out.View)
	assert.Nil(t, out.Result)

	st := c.State()
	assert.Equal(t, 60, st.Stats.XP)
	assert.Equal(t, "2026-10-16", st.Stats.LastCompletionDate)
	assert.Equal(t, []string{"2026-10-14", "2026-10-15", "2026-10-16"}, st.CompletedDates)
	assert.Equal(t, 3, st.Week.Count)
	assert.Equal(t, [7]bool{false, false, true, true, true, false, false}, st.Week.Slots)

	// Second mode the same day: XP only.
	out = complete(t, c, progress.ModeQuiz, 5, 2)
	assert.False(t, out.NewDay)
	assert.Equal(t, 4, out.Streak)
	assert.Equal(t, 65, c.State().Stats.XP)
	assert.Len(t, c.State().CompletedDates, 3)
}

func TestLoad_ExpiredStreak(t *testing.T) {
	f := newFixture(t)
	f.seed(t, store.KeyUserStats, progress.UserStats{Streak: 5, XP: 300, LastCompletionDate: "2026-10-14"})
	c := f.controller(t)

	assert.Equal(t, 0, c.State().Stats.Streak)

	var saved progress.UserStats
	ok, err := f.store.StateRepo().Get(context.Background(), store.KeyUserStats, &saved)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, saved.Streak, "expired streak is saved")

	out := complete(t, c, progress.ModeChallenge, 30, 30)
	assert.Equal(t, 1, out.Streak)
}

func TestLoad_DiscardsEarlierProgress(t *testing.T) {
	f := newFixture(t)
	old := progress.RecordCompletion(progress.NewActivityProgress("2026-10-15"), progress.ModeQuiz, 6, nil)
	f.seed(t, store.KeyActivityProgress, old)
	c := f.controller(t)

	st := c.State()
	assert.Equal(t, "2026-10-16", st.Progress.Date)
	assert.Empty(t, st.Progress.CompletedModes)
}

func TestLoad_CorruptDocumentsFallBack(t *testing.T) {
	f := newFixture(t)
	for _, key := range []string{store.KeyUserStats, store.KeyDailyResults} {
		_, err := f.store.DB().Exec(
			"INSERT INTO state_documents (key, value, updated_at) VALUES (?, ?, ?)",
			key, "{not json", time.Now().UnixMilli(),
		)
		require.NoError(t, err)
	}
	c := f.controller(t)

	st := c.State()
	assert.Equal(t, 0, st.Stats.XP)
	assert.Empty(t, st.History)
	assert.NotNil(t, st.History)
}

func TestLoad_MistypedDocumentFallsBack(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.DB().Exec(
		"INSERT INTO state_documents (key, value, updated_at) VALUES (?, ?, ?)",
		store.KeyUserStats, `{"streak":"seven","xp":1500,"lastCompletionDate":"2026-10-16"}`, time.Now().UnixMilli(),
	)
	require.NoError(t, err)
	c := f.controller(t)

	st := c.State()
	assert.Equal(t, progress.UserStats{}, st.Stats)
	assert.Equal(t, 1, st.Level.Level)

	complete(t, c, progress.ModeFlashcard, 20, 40)
	assert.Equal(t, 1, c.State().Stats.Streak)
	assert.Equal(t, 20, c.State().Stats.XP)
}

func TestComplete_AllModesFinishTheDay(t *testing.T) {
	f := newFixture(t)
	f.seed(t, store.KeyDailyResults, []progress.DailyResult{{Date: "2026-10-15", TotalPoints: 70}})
	c := f.controller(t)

	miss := progress.MissedItem{Mode: progress.ModeGrammar, Question: "q", UserAnswer: "a", CorrectAnswer: "b"}
	for _, step := range []struct {
		mode       progress.Mode
		xp, points int
	}{
		{progress.ModeFlashcard, 20, 40},
		{progress.ModeScramble, 50, 18},
		{progress.ModeChallenge, 42, 42},
		{progress.ModeQuiz, 60, 20},
	} {
		out := complete(t, c, step.mode, step.xp, step.points)
		assert.Equal(t, ViewWelcome, out.View, "after %s", step.mode)
		assert.Nil(t, out.Result)
	}

	out := complete(t, c, progress.ModeGrammar, 180, 36, miss)
	assert.Equal(t, ViewSummary, out.View)
	require.NotNil(t, out.Result)
	assert.Equal(t, "2026-10-16", out.Result.Date)
	assert.Equal(t, 156, out.Result.TotalPoints)
	assert.Equal(t, []progress.MissedItem{miss}, out.Result.MissedItems)

	assert.True(t, out.LeveledUp)
	assert.Equal(t, 3, out.Level.Level, "352 XP is Utforskare")

	st := c.State()
	assert.Equal(t, ViewSummary, st.View)
	require.Len(t, st.History, 2)
	assert.Equal(t, "2026-10-16", st.History[0].Date)
	assert.Equal(t, "2026-10-15", st.History[1].Date)

	// A fresh controller sees the same saved state.
	reloaded := f.controller(t).State()
	assert.Equal(t, st.Stats, reloaded.Stats)
	assert.Equal(t, st.History, reloaded.History)
	assert.Equal(t, st.Progress.CompletedModes, reloaded.Progress.CompletedModes)
	assert.Equal(t, ViewWelcome, reloaded.View)

	c.Exit()
	assert.Equal(t, ViewWelcome, c.State().View)
}

func TestComplete_ReplayRejected(t *testing.T) {
	f := newFixture(t)
	c := f.controller(t)
	ctx := context.Background()

	complete(t, c, progress.ModeQuiz, 10, 4)
	before := c.State()

	require.NoError(t, c.Select(progress.ModeQuiz))
	out, err := c.Complete(ctx, Completion{Mode: progress.ModeQuiz, XP: 15, Points: 6,
		Missed: []progress.MissedItem{{Mode: progress.ModeQuiz, Question: "dog"}}})
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.False(t, out.Accepted)
	assert.Equal(t, ViewWelcome, out.View)

	after := c.State()
	assert.Equal(t, before.Stats, after.Stats)
	assert.Equal(t, 4, after.Progress.Points[progress.ModeQuiz])
	assert.Empty(t, after.Progress.MissedItems)
	assert.Equal(t, ViewWelcome, after.View)

	events, err := f.store.EventRepo().QueryPracticeEvents(ctx, store.QueryOpts{Mode: "quiz"})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.False(t, events[0].Accepted)
	assert.True(t, events[1].Accepted)
	assert.NotEqual(t, events[0].RunID, events[1].RunID)
}

func TestResetProgress_AllowsReplay(t *testing.T) {
	f := newFixture(t)
	c := f.controller(t)
	ctx := context.Background()

	complete(t, c, progress.ModeFlashcard, 20, 40)
	require.NoError(t, c.ResetProgress(ctx))
	assert.Empty(t, c.State().Progress.CompletedModes)

	out := complete(t, c, progress.ModeFlashcard, 20, 40)
	assert.True(t, out.Accepted)
	assert.False(t, out.NewDay, "streak is credited once per day")
	assert.Equal(t, 1, out.Streak)
	assert.Equal(t, 40, c.State().Stats.XP)

	var saved progress.ActivityProgress
	_, err := f.store.StateRepo().Get(ctx, store.KeyActivityProgress, &saved)
	require.NoError(t, err)
	assert.Equal(t, []progress.Mode{progress.ModeFlashcard}, saved.CompletedModes)
}

func TestComplete_DayRollover(t *testing.T) {
	f := newFixture(t)
	c := f.controller(t)

	complete(t, c, progress.ModeScramble, 5, 2)
	f.now = friday.Add(8 * time.Hour) // Saturday 02:00

	out := complete(t, c, progress.ModeScramble, 5, 1)
	assert.True(t, out.Accepted, "yesterday's completion does not block today")
	assert.True(t, out.NewDay)
	assert.Equal(t, 2, out.Streak)
	assert.Equal(t, "2026-10-17", c.State().Progress.Date)
}

func TestComplete_UnknownMode(t *testing.T) {
	c := newFixture(t).controller(t)
	_, err := c.Complete(context.Background(), Completion{Mode: "spelling"})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestResetAll(t *testing.T) {
	f := newFixture(t)
	c := f.controller(t)
	ctx := context.Background()

	complete(t, c, progress.ModeFlashcard, 20, 40)
	f.seed(t, store.KeyDailyContent, map[string]string{"date": "2026-10-16"})
	require.NoError(t, c.ResetAll(ctx))

	assert.Equal(t, 0, c.State().Stats.XP)
	var stats progress.UserStats
	ok, err := f.store.StateRepo().Get(ctx, store.KeyUserStats, &stats)
	require.NoError(t, err)
	assert.False(t, ok)

	var content map[string]string
	ok, err = f.store.StateRepo().Get(ctx, store.KeyDailyContent, &content)
	require.NoError(t, err)
	assert.True(t, ok, "cached content survives")
}

func TestStateIsACopy(t *testing.T) {
	c := newFixture(t).controller(t)
	complete(t, c, progress.ModeQuiz, 5, 2)

	st := c.State()
	st.Progress.Points[progress.ModeQuiz] = 99
	st.CompletedDates[0] = "tampered"

	assert.Equal(t, 2, c.State().Progress.Points[progress.ModeQuiz])
	assert.Equal(t, "2026-10-16", c.State().CompletedDates[0])
}

func TestViewMode(t *testing.T) {
	for _, m := range progress.AllModes {
		v, ok := ViewFor(m)
		require.True(t, ok)
		got, ok := v.Mode()
		assert.True(t, ok)
		assert.Equal(t, m, got)
		assert.Equal(t, string(m), v.String())
	}
	_, ok := ViewSummary.Mode()
	assert.False(t, ok)
	assert.Equal(t, "summary", ViewSummary.String())
}
