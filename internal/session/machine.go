// Package session drives a single diagnostic run through its stages:
// intro -> registration -> quiz -> loading -> result. The machine is a pure
// reducer: Apply takes a state and an event and returns the next state plus
// the side effects to request (timers, lead submission). Nothing in here
// touches the clock or the network.
package session

import (
	"strings"
	"time"

	"github.com/somosintegros/diagnostico/internal/lead"
	"github.com/somosintegros/diagnostico/internal/quiz"
)

type Stage string

const (
	StageIntro        Stage = "intro"
	StageRegistration Stage = "registration"
	StageQuiz         Stage = "quiz"
	StageLoading      Stage = "loading"
	StageResult       Stage = "result"
)

// Registration field order. Each field advances only after its own
// validator passes.
const (
	FieldNome = iota
	FieldEmail
	FieldWhatsapp
	fieldCount
)

var fieldKeys = [fieldCount]string{"nome", "email", "whatsapp"}

// State is the complete machine state. It is a value: Apply never mutates
// its argument.
type State struct {
	Stage Stage

	// Transitioning is the in-flight fade guard. While set, further stage
	// transition requests are silently dropped, not queued.
	Transitioning bool

	// Registration
	FieldIndex  int
	FieldFading bool
	Nome        string
	Email       string
	Whatsapp    string
	FieldErrors map[string]string

	// Quiz
	Question       int
	QuestionFading bool
	Answers        quiz.Answers

	// Result
	Scores  quiz.Scores
	Overall int

	// Loading gates: result is reached only once both are set.
	SubmitDone   bool
	MinDelayDone bool
}

// NewState returns a fresh run at the intro stage.
func NewState() State {
	return State{
		Stage:       StageIntro,
		FieldErrors: map[string]string{},
		Answers:     quiz.Answers{},
		Scores:      quiz.Scores{},
	}
}

// Event is a user action or an elapsed timer fed back into the machine.
type Event interface{ isEvent() }

type (
	// Start leaves the intro screen.
	Start struct{}
	// FieldChanged updates the current registration field.
	FieldChanged struct{ Value string }
	// FieldNext validates the current field and advances past it.
	FieldNext struct{}
	// FieldFadeDone completes a registration field fade.
	FieldFadeDone struct{}
	// StageFadeDone completes a stage fade.
	StageFadeDone struct{ To Stage }
	// Answered records the chosen option for the current question.
	Answered struct{ Value int }
	// AdvanceQuestion fires after the post-answer delay.
	AdvanceQuestion struct{}
	// QuestionFadeDone completes a question fade.
	QuestionFadeDone struct{}
	// SubmitFinished reports that the lead submission attempt completed,
	// successfully or not.
	SubmitFinished struct{}
	// MinDelayElapsed reports that the minimum loading time has passed.
	MinDelayElapsed struct{}
	// Reset returns from the result screen to a fresh intro.
	Reset struct{}
)

func (Start) isEvent()            {}
func (FieldChanged) isEvent()     {}
func (FieldNext) isEvent()        {}
func (FieldFadeDone) isEvent()    {}
func (StageFadeDone) isEvent()    {}
func (Answered) isEvent()         {}
func (AdvanceQuestion) isEvent()  {}
func (QuestionFadeDone) isEvent() {}
func (SubmitFinished) isEvent()   {}
func (MinDelayElapsed) isEvent()  {}
func (Reset) isEvent()            {}

// Effect is a side-effect request emitted by Apply. The Runner executes
// them; tests inspect them.
type Effect interface{ isEffect() }

type (
	// Schedule asks for Event to be fed back after the delay.
	Schedule struct {
		After time.Duration
		Event Event
	}
	// SubmitLead asks for a fire-and-forget lead submission. Whatever the
	// outcome, a SubmitFinished event must come back.
	SubmitLead struct{ Submission lead.Submission }
)

func (Schedule) isEffect()   {}
func (SubmitLead) isEffect() {}

// Machine holds the pacing knobs. The durations are perceived-progress
// pacing, not correctness timeouts.
type Machine struct {
	Fade        time.Duration
	AnswerDelay time.Duration
	LoadingMin  time.Duration
}

// DefaultMachine matches the original pacing.
func DefaultMachine() Machine {
	return Machine{
		Fade:        300 * time.Millisecond,
		AnswerDelay: 400 * time.Millisecond,
		LoadingMin:  1200 * time.Millisecond,
	}
}

var questions = quiz.AllQuestions()

// Apply computes the next state and effect requests for an event. Events
// that do not apply to the current stage are ignored.
func (m Machine) Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Start:
		if s.Stage != StageIntro {
			return s, nil
		}
		return m.beginStage(s, StageRegistration)

	case FieldChanged:
		if s.Stage != StageRegistration {
			return s, nil
		}
		return s.withFieldValue(ev.Value), nil

	case FieldNext:
		if s.Stage != StageRegistration || s.FieldFading {
			return s, nil
		}
		return m.fieldNext(s)

	case FieldFadeDone:
		if !s.FieldFading {
			return s, nil
		}
		s.FieldFading = false
		s.FieldIndex++
		return s, nil

	case StageFadeDone:
		if !s.Transitioning {
			return s, nil
		}
		s.Transitioning = false
		s.Stage = ev.To
		return s, nil

	case Answered:
		if s.Stage != StageQuiz || s.QuestionFading {
			return s, nil
		}
		next := s.withAnswer(questions[s.Question].Key, ev.Value)
		return next, []Effect{Schedule{After: m.AnswerDelay, Event: AdvanceQuestion{}}}

	case AdvanceQuestion:
		if s.Stage != StageQuiz {
			return s, nil
		}
		return m.advanceQuestion(s)

	case QuestionFadeDone:
		if !s.QuestionFading {
			return s, nil
		}
		s.QuestionFading = false
		s.Question++
		return s, nil

	case SubmitFinished:
		s.SubmitDone = true
		return m.maybeFinishLoading(s)

	case MinDelayElapsed:
		s.MinDelayDone = true
		return m.maybeFinishLoading(s)

	case Reset:
		if s.Stage != StageResult {
			return s, nil
		}
		fresh := NewState()
		fresh.Stage = s.Stage
		fresh.Transitioning = s.Transitioning
		return m.beginStage(fresh, StageIntro)
	}
	return s, nil
}

// beginStage starts a fade transition. A request made while another fade is
// in flight is dropped.
func (m Machine) beginStage(s State, to Stage) (State, []Effect) {
	if s.Transitioning {
		return s, nil
	}
	s.Transitioning = true
	return s, []Effect{Schedule{After: m.Fade, Event: StageFadeDone{To: to}}}
}

func (m Machine) fieldNext(s State) (State, []Effect) {
	key := fieldKeys[s.FieldIndex]
	if msg := s.validateField(); msg != "" {
		errs := map[string]string{key: msg}
		s.FieldErrors = errs
		return s, nil
	}
	s.FieldErrors = map[string]string{}

	if s.FieldIndex < fieldCount-1 {
		s.FieldFading = true
		return s, []Effect{Schedule{After: m.Fade, Event: FieldFadeDone{}}}
	}
	return m.beginStage(s, StageQuiz)
}

func (m Machine) advanceQuestion(s State) (State, []Effect) {
	if s.Question < len(questions)-1 {
		s.QuestionFading = true
		return s, []Effect{Schedule{After: m.Fade, Event: QuestionFadeDone{}}}
	}

	// Last question answered: score the run, move to loading, and kick off
	// the submission and the minimum loading delay together.
	s.Scores = quiz.CalculateScores(s.Answers)
	s.Overall = quiz.CalculateOverall(s.Scores)
	s.SubmitDone = false
	s.MinDelayDone = false

	next, effects := m.beginStage(s, StageLoading)
	if !next.Transitioning {
		return next, effects
	}
	effects = append(effects,
		SubmitLead{Submission: lead.FromResult(next.Nome, next.Email, next.Whatsapp, next.Scores, next.Answers)},
		Schedule{After: m.LoadingMin, Event: MinDelayElapsed{}},
	)
	return next, effects
}

func (m Machine) maybeFinishLoading(s State) (State, []Effect) {
	if s.Stage != StageLoading && !(s.Transitioning && s.Stage == StageQuiz) {
		return s, nil
	}
	if !s.SubmitDone || !s.MinDelayDone {
		return s, nil
	}
	return m.beginStage(s, StageResult)
}

func (s State) withFieldValue(value string) State {
	key := fieldKeys[s.FieldIndex]
	switch s.FieldIndex {
	case FieldNome:
		s.Nome = value
	case FieldEmail:
		s.Email = value
	case FieldWhatsapp:
		s.Whatsapp = lead.FormatPhone(value)
	}
	errs := make(map[string]string, len(s.FieldErrors))
	for k, v := range s.FieldErrors {
		if k != key {
			errs[k] = v
		}
	}
	s.FieldErrors = errs
	return s
}

func (s State) withAnswer(key string, value int) State {
	answers := make(quiz.Answers, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[key] = value
	s.Answers = answers
	return s
}

// validateField checks only the field the user is on; earlier fields have
// already passed and later ones have not been reached.
func (s State) validateField() string {
	switch s.FieldIndex {
	case FieldNome:
		if strings.TrimSpace(s.Nome) == "" {
			return "Nome é obrigatório"
		}
	case FieldEmail:
		if !lead.ValidEmail(s.Email) {
			return "E-mail inválido"
		}
	case FieldWhatsapp:
		if !lead.ValidPhone(s.Whatsapp) {
			return "WhatsApp inválido"
		}
	}
	return ""
}

// CurrentQuestion returns the question the quiz stage is showing.
func (s State) CurrentQuestion() quiz.FlatQuestion {
	return questions[s.Question]
}

// TotalQuestions is the length of the flattened bank.
func TotalQuestions() int { return len(questions) }
