// seed_lead.go — standalone script to drive a full simulated diagnostic run
// against a running instance and submit the resulting lead.
//
// Usage:
//
//	go run scripts/seed_lead.go -api http://localhost:8080 -nome "Maria Silva" -email maria@example.com -whatsapp 11987654321
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/somosintegros/diagnostico/internal/quiz"
	"github.com/somosintegros/diagnostico/internal/session"
	"github.com/somosintegros/diagnostico/internal/submit"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "base URL of the diagnostico API")
	nome := flag.String("nome", "Lead de Teste", "contact name")
	email := flag.String("email", "teste@example.com", "contact email")
	whatsapp := flag.String("whatsapp", "11987654321", "contact whatsapp, 11 digits")
	answer := flag.Int("answer", 0, "fixed option value 1-4 for every question, 0 for random")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Fast pacing; the delays only matter for a human watching the screen.
	machine := session.Machine{
		Fade:        time.Millisecond,
		AnswerDelay: time.Millisecond,
		LoadingMin:  time.Millisecond,
	}

	runner := session.NewRunner(machine, submit.NewHTTPClient(*apiURL), logger)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner.Start(ctx)
	defer runner.Stop()

	runner.Dispatch(session.Start{})
	waitFor(ctx, runner, func(s session.State) bool { return s.Stage == session.StageRegistration })

	for _, value := range []string{*nome, *email, *whatsapp} {
		field := runner.State().FieldIndex
		runner.Dispatch(session.FieldChanged{Value: value})
		runner.Dispatch(session.FieldNext{})
		waitFor(ctx, runner, func(s session.State) bool {
			return s.Stage == session.StageQuiz || (s.FieldIndex > field && !s.FieldFading)
		})
		if errs := runner.State().FieldErrors; len(errs) > 0 {
			fmt.Fprintf(os.Stderr, "field rejected: %v\n", errs)
			os.Exit(1)
		}
	}
	waitFor(ctx, runner, func(s session.State) bool { return s.Stage == session.StageQuiz })

	total := session.TotalQuestions()
	for i := 0; i < total; i++ {
		value := *answer
		if value == 0 {
			value = rand.Intn(4) + 1
		}
		question := i
		runner.Dispatch(session.Answered{Value: value})
		waitFor(ctx, runner, func(s session.State) bool {
			return s.Stage != session.StageQuiz || (s.Question > question && !s.QuestionFading)
		})
	}

	waitFor(ctx, runner, func(s session.State) bool { return s.Stage == session.StageResult })

	final := runner.State()
	fmt.Printf("submitted lead: nota_geral=%d nivel=%s\n", final.Overall, quiz.LevelFor(final.Overall).Name)
	for _, dim := range quiz.Dimensions {
		fmt.Printf("  %-24s %d\n", dim.Name, final.Scores[dim.ID])
	}
}

func waitFor(ctx context.Context, r *session.Runner, cond func(session.State) bool) {
	for {
		if cond(r.State()) {
			return
		}
		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "timed out waiting for session progress")
			os.Exit(1)
		case <-time.After(5 * time.Millisecond):
		}
	}
}
