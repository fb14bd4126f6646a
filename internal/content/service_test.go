package content

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/svenska/internal/llm"
	"github.com/abhisek/svenska/internal/progress"
	"github.com/abhisek/svenska/internal/store"
)

var friday = time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)

func fixedClock(t time.Time) progress.Clock {
	return func() time.Time { return t }
}

func openState(t *testing.T) store.StateRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.StateRepo()
}

func animalWords(n int) map[string]any {
	names := []string{"hund", "katt", "häst", "ko", "gris", "får", "get", "räv", "björn", "älg"}
	words := make([]map[string]string, n)
	for i := range n {
		sv := names[i%len(names)]
		if i >= len(names) {
			sv = fmt.Sprintf("%s%d", sv, i)
		}
		words[i] = map[string]string{
			"swedish":         sv,
			"english":         "animal " + sv,
			"swedishSentence": "Jag ser en " + sv + ".",
			"englishSentence": "I see an animal.",
		}
	}
	return map[string]any{"words": words}
}

func newTestService(p llm.Provider, state store.StateRepo, now time.Time) *Service {
	return NewService(p, state,
		WithClock(fixedClock(now)),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
}

func TestDaily_FetchesAndCaches(t *testing.T) {
	state := openState(t)
	mock := llm.NewMockProvider().
		On(PurposeWords, llm.MockJSON(animalWords(20))).
		On(PurposeFunFact, llm.MockText(`"Sweden has more than 300,000 moose."`))
	svc := newTestService(mock, state, friday)

	d, err := svc.Daily(context.Background())
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if d.Fallback || d.Warning != "" {
		t.Errorf("unexpected fallback: %+v", d)
	}
	if d.Date != "2026-10-16" || len(d.Words) != 20 {
		t.Errorf("date %s, %d words", d.Date, len(d.Words))
	}
	if d.FunFact != "Sweden has more than 300,000 moose." {
		t.Errorf("fun fact = %q", d.FunFact)
	}
	if d.Theme == "" {
		t.Error("theme should be set")
	}

	again, err := svc.Daily(context.Background())
	if err != nil {
		t.Fatalf("daily (cached): %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (second Daily served from cache)", mock.CallCount())
	}
	if again.Theme != d.Theme || len(again.Words) != 20 {
		t.Errorf("cached = %+v", again)
	}
}

func TestDaily_StaleCacheRefetches(t *testing.T) {
	state := openState(t)
	yesterday := Daily{Date: "2026-10-15", Theme: "Travel", Words: FallbackWords, FunFact: "x"}
	if err := state.Put(context.Background(), store.KeyDailyContent, yesterday); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mock := llm.NewMockProvider().
		On(PurposeWords, llm.MockJSON(animalWords(8))).
		On(PurposeFunFact, llm.MockText("Sweden has 29 national parks."))
	d, err := newTestService(mock, state, friday).Daily(context.Background())
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if d.Date != "2026-10-16" || len(d.Words) != 8 {
		t.Errorf("got %s with %d words, want fresh content", d.Date, len(d.Words))
	}
}

func TestDaily_FailureUsesFallbackAndDoesNotCache(t *testing.T) {
	tests := []struct {
		name string
		mock *llm.MockProvider
	}{
		{
			name: "provider error",
			mock: llm.NewMockProvider().
				On(PurposeWords, llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}).
				On(PurposeFunFact, llm.MockText("fact")),
		},
		{
			name: "fun fact fails",
			mock: llm.NewMockProvider().
				On(PurposeWords, llm.MockJSON(animalWords(20))).
				On(PurposeFunFact, llm.MockResponse{Err: &llm.ErrRateLimit{}}),
		},
		{
			name: "too few words",
			mock: llm.NewMockProvider().
				On(PurposeWords, llm.MockJSON(animalWords(3))).
				On(PurposeFunFact, llm.MockText("fact")),
		},
		{
			name: "schema violation",
			mock: llm.NewMockProvider().
				On(PurposeWords, llm.MockText(`{"words":[{"swedish":"hund"}]}`)).
				On(PurposeFunFact, llm.MockText("fact")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := openState(t)
			d, err := newTestService(tt.mock, state, friday).Daily(context.Background())
			if err != nil {
				t.Fatalf("daily: %v", err)
			}
			if !d.Fallback || d.Warning != FallbackWarning {
				t.Errorf("expected fallback with warning, got %+v", d)
			}
			if d.FunFact != DefaultFunFact || len(d.Words) != len(FallbackWords) {
				t.Errorf("fallback content = %q, %d words", d.FunFact, len(d.Words))
			}

			var cached Daily
			if ok, _ := state.Get(context.Background(), store.KeyDailyContent, &cached); ok {
				t.Error("fallback content must not be cached")
			}
		})
	}
}

func TestDaily_NotConfigured(t *testing.T) {
	svc := newTestService(nil, nil, friday)
	d, err := svc.Daily(context.Background())
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if !d.Fallback || len(d.Words) != 20 {
		t.Errorf("expected fallback set alongside the error, got %+v", d)
	}
	if svc.Configured() {
		t.Error("Configured() should be false")
	}
}

func TestRefresh_IgnoresCache(t *testing.T) {
	state := openState(t)
	mock := llm.NewMockProvider().
		On(PurposeWords, llm.MockJSON(animalWords(10))).
		On(PurposeFunFact, llm.MockText("one")).
		On(PurposeWords, llm.MockJSON(animalWords(6))).
		On(PurposeFunFact, llm.MockText("two"))
	svc := newTestService(mock, state, friday)

	if _, err := svc.Daily(context.Background()); err != nil {
		t.Fatalf("daily: %v", err)
	}
	d, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if d.FunFact != "two" || len(d.Words) != 6 {
		t.Errorf("refresh = %q with %d words", d.FunFact, len(d.Words))
	}
	if mock.CallCount() != 4 {
		t.Errorf("calls = %d, want 4", mock.CallCount())
	}
}

func TestDecodeWords_DropsBlanksAndDuplicates(t *testing.T) {
	in := []Word{
		{Swedish: " Hund ", English: "Dog"},
		{Swedish: "hund", English: "Dog again"},
		{Swedish: "", English: "Nothing"},
		{Swedish: "Katt", English: "Cat"},
		{Swedish: "Häst", English: "Horse"},
		{Swedish: "Ko", English: "Cow"},
		{Swedish: "Gris", English: "Pig"},
	}
	got, err := decodeWords(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 5 || got[0].Swedish != "Hund" {
		t.Errorf("got %+v", got)
	}
}

func TestScrambleSentences(t *testing.T) {
	resp := map[string]any{"sentences": []map[string]string{
		{"swedishSentence": "Jag dricker kaffe.", "englishSentence": "I drink coffee."},
		{"swedishSentence": "Hej.", "englishSentence": "Hi."},
		{"swedishSentence": "Vi åker till Stockholm i morgon bitti med tåget", "englishSentence": "Too long."},
		{"swedishSentence": "Katten sover på soffan.", "englishSentence": "The cat sleeps on the sofa."},
	}}
	mock := llm.NewMockProvider(llm.MockJSON(resp))

	got, err := newTestService(mock, nil, friday).ScrambleSentences(context.Background(), 20)
	if err != nil {
		t.Fatalf("scramble: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d sentences, want 2 (out-of-range dropped)", len(got))
	}
	if got[1].Swedish != "Katten sover på soffan." {
		t.Errorf("second = %+v", got[1])
	}
	if mock.Calls[0].Schema != SentencesSchema {
		t.Error("request should carry the sentences schema")
	}
}

func TestScrambleSentences_Errors(t *testing.T) {
	empty := map[string]any{"sentences": []map[string]string{
		{"swedishSentence": "Hej.", "englishSentence": "Hi."},
	}}
	_, err := newTestService(llm.NewMockProvider(llm.MockJSON(empty)), nil, friday).
		ScrambleSentences(context.Background(), 20)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("err = %v, want ErrDecode", err)
	}

	_, err = newTestService(nil, nil, friday).ScrambleSentences(context.Background(), 20)
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func grammarItems(n int, breakAt int) map[string]any {
	qs := make([]map[string]any, n)
	for i := range n {
		answer := "den röda bilen"
		if i == breakAt {
			answer = "en röda bil"
		}
		qs[i] = map[string]any{
			"swedishSentence": "Jag ser en röd bil.",
			"englishSentence": "I see a red car.",
			"question":        "How would you say 'the red car'?",
			"options":         []string{"den röd bil", "den röda bilen", "en röd bilen"},
			"correctAnswer":   answer,
			"explanation":     "Swedish: definite adjectives take -a. English: no change.",
		}
	}
	return map[string]any{"questions": qs}
}

func TestGrammarQuestions(t *testing.T) {
	tests := []struct {
		name    string
		resp    map[string]any
		want    int
		wantErr error
	}{
		{"exact", grammarItems(20, -1), 20, nil},
		{"extra truncated", grammarItems(22, -1), 20, nil},
		{"too few", grammarItems(19, -1), 0, ErrDecode},
		{"answer not an option", grammarItems(20, 7), 0, ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockJSON(tt.resp))
			got, err := newTestService(mock, nil, friday).GrammarQuestions(context.Background(), 20)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("grammar: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d questions, want %d", len(got), tt.want)
			}
		})
	}
}

func TestCleanFact(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"Quoted."`, "Quoted."},
		{"“Curly.”", "Curly."},
		{"  Plain fact.  ", "Plain fact."},
		{`He said "hej" today.`, `He said "hej" today.`},
		{`"`, `"`},
	}
	for _, tt := range tests {
		if got := cleanFact(tt.in); got != tt.want {
			t.Errorf("cleanFact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
