package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/svenska/internal/llm"
	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/store"
)

// MinWords is the smallest usable word list; the challenge mode needs one
// correct answer plus four distractors.
const MinWords = 5

// Purpose labels recorded with each LLM request.
const (
	PurposeWords     = "daily-words"
	PurposeFunFact   = "fun-fact"
	PurposeSentences = "scramble-sentences"
	PurposeGrammar   = "grammar-questions"
)

// Config sizes requests.
type Config struct {
	Words       int
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard request sizes.
func DefaultConfig() Config {
	return Config{
		Words:       20,
		MaxTokens:   8192,
		Temperature: 0.9,
	}
}

// Service produces practice content. A nil provider is allowed: Daily then
// serves the fallback set and the other methods return ErrNotConfigured.
type Service struct {
	provider llm.Provider
	state    store.StateRepo
	config   Config
	log      *zap.Logger
	clock    progress.Clock
	rng      *rand.Rand
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = l } }

// WithClock sets the clock used to date content.
func WithClock(c progress.Clock) Option { return func(s *Service) { s.clock = c } }

// WithRand sets the random source used to pick themes.
func WithRand(r *rand.Rand) Option { return func(s *Service) { s.rng = r } }

// WithConfig overrides request sizes.
func WithConfig(c Config) Option { return func(s *Service) { s.config = c } }

// NewService creates a Service. state may be nil to disable caching.
func NewService(provider llm.Provider, state store.StateRepo, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		state:    state,
		config:   DefaultConfig(),
		log:      zap.NewNop(),
		clock:    progress.SystemClock,
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Configured reports whether a provider is available.
func (s *Service) Configured() bool {
	return s.provider != nil
}

// Daily returns today's content. Cached content for today is reused.
// Generation failures are logged and answered with the fallback set; the
// error is non-nil only for ErrNotConfigured, alongside the fallback.
func (s *Service) Daily(ctx context.Context) (Daily, error) {
	today := s.clock.Today()

	if cached, ok := s.cached(ctx, today); ok {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh fetches new content for today regardless of the cache.
func (s *Service) Refresh(ctx context.Context) (Daily, error) {
	today := s.clock.Today()
	if s.provider == nil {
		return fallbackDaily(today), ErrNotConfigured
	}

	d, err := s.fetchDaily(ctx, today)
	if err != nil {
		s.log.Warn("daily content generation failed, using fallback", zap.Error(err))
		return fallbackDaily(today), nil
	}

	if s.state != nil {
		if err := s.state.Put(ctx, store.KeyDailyContent, d); err != nil {
			s.log.Warn("cache daily content", zap.Error(err))
		}
	}
	s.log.Info("daily content fetched",
		zap.String("date", d.Date), zap.String("theme", d.Theme), zap.Int("words", len(d.Words)))
	return d, nil
}

func (s *Service) cached(ctx context.Context, today string) (Daily, bool) {
	if s.state == nil {
		return Daily{}, false
	}
	var d Daily
	ok, err := s.state.Get(ctx, store.KeyDailyContent, &d)
	if err != nil {
		s.log.Warn("read cached content", zap.Error(err))
		return Daily{}, false
	}
	if !ok || d.Date != today || len(d.Words) < MinWords {
		return Daily{}, false
	}
	return d, true
}

// fetchDaily requests the word list and fun fact concurrently.
func (s *Service) fetchDaily(ctx context.Context, today string) (Daily, error) {
	theme := Themes[s.rng.IntN(len(Themes))]

	var (
		words []Word
		fact  string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		words, err = s.fetchWords(gctx, theme)
		return err
	})
	g.Go(func() error {
		var err error
		fact, err = s.fetchFunFact(gctx, theme)
		return err
	})
	if err := g.Wait(); err != nil {
		return Daily{}, err
	}

	return Daily{Date: today, Theme: theme, Words: words, FunFact: fact}, nil
}

func (s *Service) fetchWords(ctx context.Context, theme string) ([]Word, error) {
	var out struct {
		Words []Word `json:"words"`
	}
	if err := s.generate(ctx, PurposeWords, wordsPrompt(theme, s.config.Words), WordsSchema, &out); err != nil {
		return nil, err
	}
	return decodeWords(out.Words)
}

func (s *Service) fetchFunFact(ctx context.Context, theme string) (string, error) {
	ctx = llm.WithPurpose(ctx, PurposeFunFact)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: funFactPrompt(theme)}},
		MaxTokens:   1024,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("fun fact: %w", err)
	}
	fact := cleanFact(resp.Text())
	if fact == "" {
		return "", fmt.Errorf("%w: empty fun fact", ErrDecode)
	}
	return fact, nil
}

// ScrambleSentences returns up to n sentences of 3 to 7 words. Sentences
// outside that range are dropped.
func (s *Service) ScrambleSentences(ctx context.Context, n int) ([]Sentence, error) {
	if s.provider == nil {
		return nil, ErrNotConfigured
	}
	var out struct {
		Sentences []Sentence `json:"sentences"`
	}
	if err := s.generate(ctx, PurposeSentences, sentencesPrompt(n), SentencesSchema, &out); err != nil {
		return nil, err
	}
	return decodeSentences(out.Sentences, n)
}

// GrammarQuestions returns exactly n questions.
func (s *Service) GrammarQuestions(ctx context.Context, n int) ([]GrammarQuestion, error) {
	if s.provider == nil {
		return nil, ErrNotConfigured
	}
	var out struct {
		Questions []GrammarQuestion `json:"questions"`
	}
	if err := s.generate(ctx, PurposeGrammar, grammarPrompt(n), GrammarSchema, &out); err != nil {
		return nil, err
	}
	return decodeGrammar(out.Questions, n)
}

// generate sends a schema-constrained request and decodes the validated
// JSON into dst.
func (s *Service) generate(ctx context.Context, purpose, prompt string, schema *llm.Schema, dst any) error {
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		var inv *llm.ErrInvalidResponse
		if errors.As(err, &inv) {
			return fmt.Errorf("%s: %w: %v", purpose, ErrDecode, err)
		}
		return fmt.Errorf("%s: %w", purpose, err)
	}
	if err := json.Unmarshal(resp.Content, dst); err != nil {
		return fmt.Errorf("%s: %w: %v", purpose, ErrDecode, err)
	}
	return nil
}

func decodeWords(in []Word) ([]Word, error) {
	seen := make(map[string]bool, len(in))
	words := make([]Word, 0, len(in))
	for _, w := range in {
		w.Swedish = strings.TrimSpace(w.Swedish)
		w.English = strings.TrimSpace(w.English)
		w.SwedishSentence = strings.TrimSpace(w.SwedishSentence)
		w.EnglishSentence = strings.TrimSpace(w.EnglishSentence)
		key := strings.ToLower(w.Swedish)
		if w.Swedish == "" || w.English == "" || seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, w)
	}
	if len(words) < MinWords {
		return nil, fmt.Errorf("%w: %d usable words, need %d", ErrDecode, len(words), MinWords)
	}
	return words, nil
}

func decodeSentences(in []Sentence, n int) ([]Sentence, error) {
	out := make([]Sentence, 0, len(in))
	for _, sn := range in {
		sn.Swedish = strings.TrimSpace(sn.Swedish)
		sn.English = strings.TrimSpace(sn.English)
		if c := len(strings.Fields(sn.Swedish)); c < 3 || c > 7 || sn.English == "" {
			continue
		}
		out = append(out, sn)
		if n > 0 && len(out) == n {
			break
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no usable sentences", ErrDecode)
	}
	return out, nil
}

func decodeGrammar(in []GrammarQuestion, n int) ([]GrammarQuestion, error) {
	if len(in) < n {
		return nil, fmt.Errorf("%w: got %d grammar questions, want %d", ErrDecode, len(in), n)
	}
	out := in[:n]
	for i, q := range out {
		if len(q.Options) != 3 {
			return nil, fmt.Errorf("%w: question %d has %d options", ErrDecode, i+1, len(q.Options))
		}
		found := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: question %d answer %q not among options", ErrDecode, i+1, q.CorrectAnswer)
		}
	}
	return out, nil
}

// cleanFact trims whitespace and one layer of surrounding quotes.
func cleanFact(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range [][2]string{{`"`, `"`}, {"“", "”"}, {"'", "'"}, {"„", "“"}} {
		if len(s) >= len(q[0])+len(q[1]) && strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) {
			s = strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
			break
		}
	}
	return s
}
