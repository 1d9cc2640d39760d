package quiz

import "testing"

func fullAnswers(value int) Answers {
	a := make(Answers)
	for _, q := range AllQuestions() {
		a[q.Key] = value
	}
	return a
}

func TestBankShape(t *testing.T) {
	if len(Dimensions) != 7 {
		t.Fatalf("expected 7 dimensions, got %d", len(Dimensions))
	}
	for _, dim := range Dimensions {
		if len(dim.Questions) != 2 {
			t.Errorf("dimension %s: expected 2 questions, got %d", dim.ID, len(dim.Questions))
		}
		for qi, q := range dim.Questions {
			if len(q.Options) != 4 {
				t.Errorf("%s question %d: expected 4 options, got %d", dim.ID, qi, len(q.Options))
			}
			seen := map[int]bool{}
			for _, opt := range q.Options {
				if opt.Value < 1 || opt.Value > 4 {
					t.Errorf("%s question %d: option value %d out of range", dim.ID, qi, opt.Value)
				}
				seen[opt.Value] = true
			}
			if len(seen) != 4 {
				t.Errorf("%s question %d: duplicate option values", dim.ID, qi)
			}
		}
	}
	if got := len(AllQuestions()); got != 14 {
		t.Errorf("expected 14 flattened questions, got %d", got)
	}
}

func TestCalculateScoresBuckets(t *testing.T) {
	// (q1+q2)/8*100 for q1,q2 in [1,4] yields only these values after
	// rounding. q1=1,q2=2 is the half case: 37.5 rounds to 38.
	tests := []struct {
		q1, q2 int
		want   int
	}{
		{1, 1, 25},
		{1, 2, 38},
		{2, 2, 50},
		{2, 3, 63},
		{3, 3, 75},
		{3, 4, 88},
		{4, 4, 100},
	}
	for _, tt := range tests {
		answers := Answers{
			AnswerKey("clareza", 0): tt.q1,
			AnswerKey("clareza", 1): tt.q2,
		}
		scores := CalculateScores(answers)
		if scores["clareza"] != tt.want {
			t.Errorf("q1=%d q2=%d: expected %d, got %d", tt.q1, tt.q2, tt.want, scores["clareza"])
		}
	}
}

func TestCalculateScoresMissingAnswers(t *testing.T) {
	answers := fullAnswers(4)
	delete(answers, AnswerKey("tempo", 0))
	delete(answers, AnswerKey("tempo", 1))

	scores := CalculateScores(answers)
	if scores["tempo"] != 0 {
		t.Errorf("expected 0 for unanswered dimension, got %d", scores["tempo"])
	}
	if scores["clareza"] != 100 {
		t.Errorf("expected other dimensions unaffected, got %d", scores["clareza"])
	}
	if len(scores) != 7 {
		t.Errorf("expected a score for every dimension, got %d", len(scores))
	}
}

func TestCalculateOverallExtremes(t *testing.T) {
	if got := CalculateOverall(CalculateScores(fullAnswers(4))); got != 100 {
		t.Errorf("all-max answers: expected overall 100, got %d", got)
	}
	if got := CalculateOverall(CalculateScores(fullAnswers(1))); got != 25 {
		t.Errorf("all-min answers: expected overall 25, got %d", got)
	}
}

func TestScoresAlwaysInRange(t *testing.T) {
	for q1 := 1; q1 <= 4; q1++ {
		for q2 := 1; q2 <= 4; q2++ {
			answers := fullAnswers(1)
			answers[AnswerKey("equipe", 0)] = q1
			answers[AnswerKey("equipe", 1)] = q2
			for id, v := range CalculateScores(answers) {
				if v < 0 || v > 100 {
					t.Errorf("q1=%d q2=%d: score %s=%d out of range", q1, q2, id, v)
				}
			}
		}
	}
}

func TestStrongestWeakestTieBreak(t *testing.T) {
	scores := Scores{}
	for _, dim := range Dimensions {
		scores[dim.ID] = 10
	}
	// clareza and comercial tie at 80; clareza is declared first.
	scores["clareza"] = 80
	scores["comercial"] = 80

	strong := Strongest(scores)
	if strong.Name != "Clareza de Oferta" || strong.Value != 80 {
		t.Errorf("expected first-declared max, got %+v", strong)
	}

	weak := Weakest(scores)
	if weak.Name != "Gestão de Tempo" || weak.Value != 10 {
		t.Errorf("expected first-declared min, got %+v", weak)
	}
}

func TestWeakestSentinelReplacedByRealScores(t *testing.T) {
	weak := Weakest(CalculateScores(fullAnswers(4)))
	if weak.Value != 100 {
		t.Errorf("expected sentinel replaced by 100, got %d", weak.Value)
	}
	if weak.Name != Dimensions[0].Name {
		t.Errorf("expected first dimension on full tie, got %s", weak.Name)
	}
}

func TestDimensionByID(t *testing.T) {
	if dim := DimensionByID("financeiro"); dim == nil || dim.Name != "Saúde Financeira" {
		t.Errorf("unexpected lookup result: %+v", dim)
	}
	if dim := DimensionByID("nope"); dim != nil {
		t.Errorf("expected nil for unknown id, got %+v", dim)
	}
}
