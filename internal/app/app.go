package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/svenska/internal/config"
	"github.com/abhisek/svenska/internal/content"
	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/router"
	"github.com/abhisek/svenska/internal/screen"
	"github.com/abhisek/svenska/internal/screens/challenge"
	"github.com/abhisek/svenska/internal/screens/configerror"
	"github.com/abhisek/svenska/internal/screens/flashcard"
	"github.com/abhisek/svenska/internal/screens/grammar"
	"github.com/abhisek/svenska/internal/screens/history"
	"github.com/abhisek/svenska/internal/screens/quiz"
	"github.com/abhisek/svenska/internal/screens/scramble"
	"github.com/abhisek/svenska/internal/screens/summary"
	"github.com/abhisek/svenska/internal/screens/welcome"
	"github.com/abhisek/svenska/internal/selfupdate"
	"github.com/abhisek/svenska/internal/session"
	"github.com/abhisek/svenska/internal/ui/layout"
)

const updateCheckTimeout = 5 * time.Second

// ContentSource supplies the day's practice material.
type ContentSource interface {
	Daily(ctx context.Context) (content.Daily, error)
	Refresh(ctx context.Context) (content.Daily, error)
	scramble.SentenceSource
	grammar.QuestionSource
}

// UpdateChecker reports whether a newer release exists.
type UpdateChecker interface {
	Check(ctx context.Context, input *selfupdate.CheckInput) (*selfupdate.CheckResult, error)
}

// Options holds dependencies for the app.
type Options struct {
	Controller *session.Controller
	Content    ContentSource
	Config     config.ContentConfig
	ConfigPath string

	// Version is the running build. Updater is only consulted when both
	// are set.
	Version string
	Updater UpdateChecker

	Log   *zap.Logger
	Clock progress.Clock
	Rand  *rand.Rand
}

type dailyLoadedMsg struct {
	daily     content.Daily
	err       error
	refreshed bool
}

type updateCheckedMsg struct {
	latest string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	welcome *welcome.WelcomeScreen
	ctl     *session.Controller
	opts    Options
	log     *zap.Logger
	width   int
	height  int
}

// newAppModel creates an AppModel rooted at the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = progress.SystemClock
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if opts.Config.ChallengeSeconds == 0 {
		opts.Config.ChallengeSeconds = 60
	}
	if opts.Config.ScrambleCount == 0 {
		opts.Config.ScrambleCount = 20
	}
	if opts.Config.GrammarCount == 0 {
		opts.Config.GrammarCount = 20
	}

	w := welcome.New(opts.Controller.State())
	return AppModel{
		router:  router.New(w),
		welcome: w,
		ctl:     opts.Controller,
		opts:    opts,
		log:     opts.Log,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.loadDaily(false), m.checkUpdate())
}

func (m AppModel) loadDaily(refresh bool) tea.Cmd {
	src := m.opts.Content
	return func() tea.Msg {
		ctx := context.Background()
		var (
			d   content.Daily
			err error
		)
		if refresh {
			d, err = src.Refresh(ctx)
		} else {
			d, err = src.Daily(ctx)
		}
		return dailyLoadedMsg{daily: d, err: err, refreshed: refresh}
	}
}

func (m AppModel) checkUpdate() tea.Cmd {
	if m.opts.Updater == nil || m.opts.Version == "" {
		return nil
	}
	checker, version, log := m.opts.Updater, m.opts.Version, m.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), updateCheckTimeout)
		defer cancel()
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			log.Debug("update check failed", zap.Error(err))
			return nil
		}
		if !res.UpdateAvailable {
			return nil
		}
		return updateCheckedMsg{latest: res.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.backToWelcome()
			}
			return m, nil
		}

	case dailyLoadedMsg:
		return m, m.handleDaily(msg)

	case updateCheckedMsg:
		m.welcome.SetUpdate(msg.latest)
		return m, nil

	case screen.StartModeMsg:
		return m, m.startMode(msg.Mode)

	case screen.ModeDoneMsg:
		return m, m.finishMode(msg)

	case screen.ExitMsg:
		m.backToWelcome()
		return m, nil

	case screen.HistoryMsg:
		return m, m.router.Push(history.New(m.ctl.State().History))

	case screen.NewWordsMsg:
		m.welcome.SetLoading()
		m.welcome.SetNotice("Fetching new words...")
		return m, m.loadDaily(true)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) handleDaily(msg dailyLoadedMsg) tea.Cmd {
	if errors.Is(msg.err, content.ErrNotConfigured) {
		m.log.Warn("no content provider configured")
		m.router.PopToRoot()
		return m.router.Replace(configerror.New(m.opts.ConfigPath))
	}

	if msg.refreshed && msg.daily.Fallback {
		// The cached set is still current, so today's progress stands.
		m.log.Warn("refresh fell back to the default set")
		if prev := m.welcome.Daily(); len(prev.Words) > 0 {
			m.welcome.SetDaily(prev)
		} else {
			m.welcome.SetDaily(msg.daily)
		}
		m.welcome.SetNotice("Could not fetch new words. Keeping today's set.")
		return nil
	}

	m.welcome.SetDaily(msg.daily)
	if !msg.refreshed {
		return nil
	}

	if err := m.ctl.ResetProgress(context.Background()); err != nil {
		m.log.Warn("reset progress after refresh", zap.Error(err))
	}
	m.welcome.SetState(m.ctl.State())
	m.welcome.SetNotice(fmt.Sprintf("New words loaded: %s", msg.daily.Theme))
	return nil
}

func (m AppModel) backToWelcome() {
	m.ctl.Exit()
	m.router.PopToRoot()
	m.welcome.SetState(m.ctl.State())
}

func (m AppModel) startMode(mode progress.Mode) tea.Cmd {
	if err := m.ctl.Select(mode); err != nil {
		m.log.Warn("select mode", zap.String("mode", string(mode)), zap.Error(err))
		return nil
	}

	s, err := m.modeScreen(mode)
	if err != nil {
		m.log.Warn("open mode", zap.String("mode", string(mode)), zap.Error(err))
		m.ctl.Exit()
		m.welcome.SetNotice(fmt.Sprintf("%s is unavailable: %v", mode.DisplayName(), err))
		return nil
	}
	m.welcome.SetNotice("")
	return m.router.Push(s)
}

func (m AppModel) modeScreen(mode progress.Mode) (screen.Screen, error) {
	words := m.welcome.Daily().Words
	now := m.opts.Clock
	cfg := m.opts.Config

	switch mode {
	case progress.ModeFlashcard:
		s, err := flashcard.New(words, now)
		if err != nil {
			return nil, err
		}
		return s, nil
	case progress.ModeChallenge:
		s, err := challenge.New(words, m.opts.Rand, time.Duration(cfg.ChallengeSeconds)*time.Second, now)
		if err != nil {
			return nil, err
		}
		return s, nil
	case progress.ModeScramble:
		return scramble.New(m.opts.Content, cfg.ScrambleCount, m.opts.Rand, now), nil
	case progress.ModeGrammar:
		return grammar.New(m.opts.Content, cfg.GrammarCount, now), nil
	case progress.ModeQuiz:
		s, err := quiz.New(words, m.opts.Rand, now)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", session.ErrUnknownMode, mode)
}

func (m AppModel) finishMode(msg screen.ModeDoneMsg) tea.Cmd {
	res := msg.Result
	out, err := m.ctl.Complete(context.Background(), session.Completion{
		Mode:     res.Mode,
		XP:       res.XP,
		Points:   res.Points,
		Missed:   res.Missed,
		Duration: msg.Duration.Milliseconds(),
	})

	m.router.PopToRoot()
	st := m.ctl.State()
	m.welcome.SetState(st)

	switch {
	case errors.Is(err, session.ErrAlreadyCompleted):
		m.welcome.SetNotice(fmt.Sprintf("%s was already completed today, no XP awarded", res.Mode.DisplayName()))
		return nil
	case err != nil:
		m.log.Error("complete mode", zap.String("mode", string(res.Mode)), zap.Error(err))
		m.welcome.SetNotice("Could not record the result")
		return nil
	}

	notice := fmt.Sprintf("+%d XP from %s", res.XP, res.Mode.DisplayName())
	if out.LeveledUp {
		notice += fmt.Sprintf(" · Level up! %s", out.Level.Name)
	}
	m.welcome.SetNotice(notice)

	if out.Result == nil {
		return nil
	}
	return m.router.Push(summary.New(summary.Data{
		Result:  *out.Result,
		History: st.History,
		Streak:  out.Streak,
		Level:   out.Level,
	}))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.ctl.State()
	header := layout.RenderHeader(title, layout.HeaderStats{
		Streak: st.Stats.Streak,
		XP:     st.Stats.XP,
		Level:  fmt.Sprintf("Lv %d", st.Level.Level),
	}, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, body, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
