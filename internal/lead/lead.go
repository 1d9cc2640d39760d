// Package lead defines the wire payload a completed diagnostic submits and
// the fail-closed validation the ingestion endpoint applies to it. Field
// names match the persisted column names.
package lead

import (
	"errors"
	"regexp"
	"strings"

	"github.com/somosintegros/diagnostico/internal/quiz"
)

// Submission is the full lead payload: contact fields, the computed scores,
// the assigned level, strongest/weakest dimension names, and the raw answer
// map as an opaque blob.
type Submission struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`

	NotaGeral int    `json:"nota_geral"`
	Nivel     string `json:"nivel"`

	Clareza    int `json:"clareza"`
	Comercial  int `json:"comercial"`
	Tempo      int `json:"tempo"`
	Aquisicao  int `json:"aquisicao"`
	Entrega    int `json:"entrega"`
	Financeiro int `json:"financeiro"`
	Equipe     int `json:"equipe"`

	PontoForte   string       `json:"ponto_forte"`
	MaiorGargalo string       `json:"maior_gargalo"`
	Respostas    quiz.Answers `json:"respostas_json"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the simple local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// Digits strips every non-digit character.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone accepts a Brazilian mobile number: exactly 11 digits (area code
// plus nine-digit number) after stripping formatting.
func ValidPhone(phone string) bool {
	return len(Digits(phone)) == 11
}

// FormatPhone applies the progressive (11) 99999-9999 mask as the user
// types, capping input at 11 digits.
func FormatPhone(raw string) string {
	digits := Digits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 2:
		return "(" + digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}

// Validate applies the endpoint's fail-closed checks. Any violation means
// the request is rejected before side effects.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.Nome) == "" {
		return errors.New("nome is required")
	}
	if !ValidEmail(s.Email) {
		return errors.New("invalid email")
	}
	if !ValidPhone(s.Whatsapp) {
		return errors.New("invalid whatsapp")
	}
	for _, score := range []struct {
		name  string
		value int
	}{
		{"nota_geral", s.NotaGeral},
		{"clareza", s.Clareza},
		{"comercial", s.Comercial},
		{"tempo", s.Tempo},
		{"aquisicao", s.Aquisicao},
		{"entrega", s.Entrega},
		{"financeiro", s.Financeiro},
		{"equipe", s.Equipe},
	} {
		if score.value < 0 || score.value > 100 {
			return errors.New(score.name + " out of range")
		}
	}
	if s.Respostas == nil {
		return errors.New("respostas_json is required")
	}
	return nil
}

// Normalize trims the contact name and lowercases the email before
// persistence.
func (s *Submission) Normalize() {
	s.Nome = strings.TrimSpace(s.Nome)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

// FirstName returns the first whitespace-separated token of the contact
// name, the form the tagging service expects.
func (s *Submission) FirstName() string {
	fields := strings.Fields(s.Nome)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DimensionScores returns the seven per-dimension fields keyed by dimension
// id, in the bank's shape.
func (s *Submission) DimensionScores() quiz.Scores {
	return quiz.Scores{
		"clareza":    s.Clareza,
		"comercial":  s.Comercial,
		"tempo":      s.Tempo,
		"aquisicao":  s.Aquisicao,
		"entrega":    s.Entrega,
		"financeiro": s.Financeiro,
		"equipe":     s.Equipe,
	}
}

// FromResult assembles a Submission from contact fields and a completed
// scoring pass.
func FromResult(nome, email, whatsapp string, scores quiz.Scores, answers quiz.Answers) Submission {
	overall := quiz.CalculateOverall(scores)
	return Submission{
		Nome:         nome,
		Email:        email,
		Whatsapp:     whatsapp,
		NotaGeral:    overall,
		Nivel:        quiz.LevelFor(overall).Name,
		Clareza:      scores["clareza"],
		Comercial:    scores["comercial"],
		Tempo:        scores["tempo"],
		Aquisicao:    scores["aquisicao"],
		Entrega:      scores["entrega"],
		Financeiro:   scores["financeiro"],
		Equipe:       scores["equipe"],
		PontoForte:   quiz.Strongest(scores).Name,
		MaiorGargalo: quiz.Weakest(scores).Name,
		Respostas:    answers,
	}
}
