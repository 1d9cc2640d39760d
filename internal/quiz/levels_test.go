package quiz

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Sobrevivência"},
		{25, "Sobrevivência"},
		{26, "Tração"},
		{50, "Tração"},
		{51, "Estruturação"},
		{75, "Estruturação"},
		{76, "Maturidade"},
		{100, "Maturidade"},
		{101, "Maturidade"}, // beyond every bound, last-tier fallback
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got.Name != tt.want {
			t.Errorf("LevelFor(%d): expected %s, got %s", tt.score, tt.want, got.Name)
		}
	}
}

func TestLevelsAscending(t *testing.T) {
	for i := 1; i < len(Levels); i++ {
		if Levels[i].Max <= Levels[i-1].Max {
			t.Errorf("levels not ascending at index %d", i)
		}
	}
}

func TestBarColorMatchesLevelPalette(t *testing.T) {
	// The bar bucketing is a separate function but must stay aligned with
	// the tier boundaries.
	for _, score := range []int{0, 25, 26, 50, 51, 75, 76, 100} {
		if got, want := BarColor(score), LevelFor(score).Color; got != want {
			t.Errorf("BarColor(%d)=%s diverges from level color %s", score, got, want)
		}
	}
}
