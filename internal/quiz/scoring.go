package quiz

import "math"

// Answers maps a composite question key (see AnswerKey) to the chosen
// option value. A complete quiz has 14 entries.
type Answers map[string]int

// Scores maps a dimension id to its percentage score in [0, 100].
type Scores map[string]int

// DimensionResult names a dimension together with its score.
type DimensionResult struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

const maxDimensionPoints = 8 // two questions, best option worth 4 each

// CalculateScores derives the per-dimension percentage scores from an answer
// set. Missing answers count as 0: an incomplete quiz yields a lower score,
// not an error.
func CalculateScores(answers Answers) Scores {
	scores := make(Scores, len(Dimensions))
	for _, dim := range Dimensions {
		q1 := answers[AnswerKey(dim.ID, 0)]
		q2 := answers[AnswerKey(dim.ID, 1)]
		scores[dim.ID] = int(math.Round(float64(q1+q2) / maxDimensionPoints * 100))
	}
	return scores
}

// CalculateOverall is the mean of the dimension scores, rounded to the
// nearest integer. Callers must pass exactly the seven dimension entries.
func CalculateOverall(scores Scores) int {
	var sum int
	for _, dim := range Dimensions {
		sum += scores[dim.ID]
	}
	return int(math.Round(float64(sum) / float64(len(Dimensions))))
}

// Strongest returns the highest-scoring dimension. Ties go to the first
// dimension in declaration order.
func Strongest(scores Scores) DimensionResult {
	best := DimensionResult{Value: 0}
	for _, dim := range Dimensions {
		if v := scores[dim.ID]; v > best.Value {
			best = DimensionResult{Name: dim.Name, Value: v}
		}
	}
	return best
}

// Weakest returns the lowest-scoring dimension. The sentinel sits above the
// valid range so any real score replaces it; ties go to the first dimension
// in declaration order.
func Weakest(scores Scores) DimensionResult {
	worst := DimensionResult{Value: 101}
	for _, dim := range Dimensions {
		if v := scores[dim.ID]; v < worst.Value {
			worst = DimensionResult{Name: dim.Name, Value: v}
		}
	}
	return worst
}
