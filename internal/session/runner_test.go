package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somosintegros/diagnostico/internal/lead"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []lead.Submission
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, s lead.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, s)
	return f.err
}

func (f *fakeSubmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func fastMachine() Machine {
	return Machine{
		Fade:        time.Millisecond,
		AnswerDelay: time.Millisecond,
		LoadingMin:  5 * time.Millisecond,
	}
}

func waitFor(t *testing.T, r *Runner, cond func(State) bool) State {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s := r.State(); cond(s) {
			return s
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not reached; state=%+v", r.State())
	return State{}
}

func runThrough(t *testing.T, r *Runner) {
	t.Helper()
	r.Dispatch(Start{})
	waitFor(t, r, func(s State) bool { return s.Stage == StageRegistration })

	steps := []string{"Maria da Silva", "maria@example.com", "11987654321"}
	for i, v := range steps {
		r.Dispatch(FieldChanged{Value: v})
		r.Dispatch(FieldNext{})
		if i < len(steps)-1 {
			idx := i + 1
			waitFor(t, r, func(s State) bool { return s.FieldIndex == idx })
		}
	}
	waitFor(t, r, func(s State) bool { return s.Stage == StageQuiz })

	for i := 0; i < TotalQuestions(); i++ {
		q := i
		waitFor(t, r, func(s State) bool { return s.Stage == StageQuiz && s.Question == q && !s.QuestionFading })
		r.Dispatch(Answered{Value: 4})
	}
}

func TestRunnerFullFlow(t *testing.T) {
	sub := &fakeSubmitter{}
	r := NewRunner(fastMachine(), sub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.Start(context.Background())
	defer r.Stop()

	runThrough(t, r)

	final := waitFor(t, r, func(s State) bool { return s.Stage == StageResult })
	assert.Equal(t, 100, final.Overall)
	require.Equal(t, 1, sub.count())
	assert.Equal(t, "Maturidade", sub.calls[0].Nivel)
}

func TestRunnerSwallowsSubmitFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	r := NewRunner(fastMachine(), sub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.Start(context.Background())
	defer r.Stop()

	runThrough(t, r)

	// The result screen is reached even though every submission fails.
	waitFor(t, r, func(s State) bool { return s.Stage == StageResult })
	assert.Equal(t, 1, sub.count())
}

func TestRunnerNilSubmitter(t *testing.T) {
	r := NewRunner(fastMachine(), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.Start(context.Background())
	defer r.Stop()

	runThrough(t, r)
	waitFor(t, r, func(s State) bool { return s.Stage == StageResult })
}
