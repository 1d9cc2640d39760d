package lead

import (
	"testing"

	"github.com/somosintegros/diagnostico/internal/quiz"
)

func validSubmission() Submission {
	answers := quiz.Answers{}
	for _, q := range quiz.AllQuestions() {
		answers[q.Key] = 3
	}
	scores := quiz.CalculateScores(answers)
	return FromResult("Maria da Silva", "maria@example.com", "(11) 98765-4321", scores, answers)
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"a@b.co", true},
		{"bad", false},
		{"no@tld", false},
		{"spaces in@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q)=%v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(11) 98765-4321", true},
		{"11987654321", true},
		{"1198765432", false},  // 10 digits
		{"119876543210", false}, // 12 digits
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.phone); got != tt.want {
			t.Errorf("ValidPhone(%q)=%v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestFormatPhoneProgressive(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "(1"},
		{"11", "(11"},
		{"119", "(11) 9"},
		{"1198765", "(11) 98765"},
		{"11987654", "(11) 98765-4"},
		{"11987654321", "(11) 98765-4321"},
		{"119876543219999", "(11) 98765-4321"}, // capped at 11 digits
		{"(11) 98765-4321", "(11) 98765-4321"},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateAcceptsCompleteSubmission(t *testing.T) {
	s := validSubmission()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateFailClosed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"empty name", func(s *Submission) { s.Nome = "   " }},
		{"bad email", func(s *Submission) { s.Email = "bad" }},
		{"short phone", func(s *Submission) { s.Whatsapp = "123" }},
		{"negative score", func(s *Submission) { s.Clareza = -1 }},
		{"score above 100", func(s *Submission) { s.NotaGeral = 101 }},
		{"missing answers", func(s *Submission) { s.Respostas = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	s := validSubmission()
	s.Nome = "  Maria da Silva  "
	s.Email = " Maria@Example.COM "
	s.Normalize()
	if s.Nome != "Maria da Silva" {
		t.Errorf("expected trimmed name, got %q", s.Nome)
	}
	if s.Email != "maria@example.com" {
		t.Errorf("expected lowercased email, got %q", s.Email)
	}
}

func TestFirstName(t *testing.T) {
	s := Submission{Nome: "Maria da Silva"}
	if got := s.FirstName(); got != "Maria" {
		t.Errorf("expected Maria, got %q", got)
	}
	s.Nome = ""
	if got := s.FirstName(); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestFromResult(t *testing.T) {
	answers := quiz.Answers{}
	for _, q := range quiz.AllQuestions() {
		answers[q.Key] = 4
	}
	scores := quiz.CalculateScores(answers)
	s := FromResult("Maria", "maria@example.com", "(11) 98765-4321", scores, answers)

	if s.NotaGeral != 100 {
		t.Errorf("expected nota_geral 100, got %d", s.NotaGeral)
	}
	if s.Nivel != "Maturidade" {
		t.Errorf("expected Maturidade, got %s", s.Nivel)
	}
	if s.Clareza != 100 || s.Equipe != 100 {
		t.Error("expected all dimension fields at 100")
	}
	if s.PontoForte == "" || s.MaiorGargalo == "" {
		t.Error("expected strongest/weakest set")
	}
	if len(s.Respostas) != 14 {
		t.Errorf("expected raw answers carried, got %d entries", len(s.Respostas))
	}
}
