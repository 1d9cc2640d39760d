package quiz

// Level is a qualitative maturity tier selected from the overall score.
type Level struct {
	Max   int    `json:"max"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Desc  string `json:"desc"`
}

// Levels is ordered ascending by Max. LevelFor depends on that ordering.
var Levels = []Level{
	{
		Max:   25,
		Name:  "Sobrevivência",
		Color: "#C0392B",
		Desc:  "Seu negócio é basicamente um emprego disfarçado — e dos ruins. Você está trocando tempo por dinheiro sem estrutura, sem previsibilidade e sem clareza. A boa notícia: consciência é o primeiro passo.",
	},
	{
		Max:   50,
		Name:  "Tração",
		Color: "#D4731A",
		Desc:  "Você já tem algo funcionando, mas está preso no operacional e dependente de você pra tudo. O negócio cresce quando você empurra e para quando você para. É hora de parar de improvisar e construir fundamentos.",
	},
	{
		Max:   75,
		Name:  "Estruturação",
		Color: "#2E7D32",
		Desc:  "Você tem um negócio de verdade se formando. Algumas peças já funcionam, mas ainda falta consistência e integração. O próximo passo não é mais tática — é engenharia de negócio.",
	},
	{
		Max:   100,
		Name:  "Maturidade",
		Color: "#1A5276",
		Desc:  "Seu negócio tem estrutura, previsibilidade e não depende só de você. Isso é raro. O desafio agora é escalar sem perder a essência e manter a clareza que te trouxe até aqui.",
	},
}

// LevelFor returns the first level whose Max is at or above the score. A
// score beyond every bound falls back to the last level; do not assume the
// tier table ends at exactly 100.
func LevelFor(score int) Level {
	for _, l := range Levels {
		if score <= l.Max {
			return l
		}
	}
	return Levels[len(Levels)-1]
}

// BarColor buckets a single dimension score into the tier palette. Kept
// numerically aligned with the Levels bounds.
func BarColor(value int) string {
	switch {
	case value <= 25:
		return "#C0392B"
	case value <= 50:
		return "#D4731A"
	case value <= 75:
		return "#2E7D32"
	default:
		return "#1A5276"
	}
}
