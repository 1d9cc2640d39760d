package quiz

import "strconv"

// Option is one selectable answer, weighted 1 (worst) to 4 (best).
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Question carries exactly four options.
type Question struct {
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Dimension is one of the seven scored business capabilities.
// Each dimension has exactly two questions.
type Dimension struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon"`
	Questions []Question `json:"questions"`
}

// FlatQuestion is a question paired with its dimension, used by the
// sequential quiz flow. Key is "<dimension id>_<question index>".
type FlatQuestion struct {
	Question
	DimensionID   string
	DimensionName string
	DimensionIcon string
	QuestionIndex int
	Key           string
}

// Dimensions is the fixed question bank, in declaration order. Scoring and
// tie-breaks iterate this slice, never a map.
var Dimensions = []Dimension{
	{
		ID:   "clareza",
		Name: "Clareza de Oferta",
		Icon: "◎",
		Questions: []Question{
			{
				Text: "Se alguém te perguntar o que você vende, você consegue explicar em uma frase — e a pessoa entende?",
				Options: []Option{
					{Label: "Nem eu sei direito", Value: 1},
					{Label: "Consigo, mas a pessoa fica confusa", Value: 2},
					{Label: "Explico bem, mas mudo a cada semana", Value: 3},
					{Label: "Sim, qualquer pessoa entende na hora", Value: 4},
				},
			},
			{
				Text: "Quantas ofertas diferentes você tem ativas hoje?",
				Options: []Option{
					{Label: "Perdi a conta", Value: 1},
					{Label: "Mais de 5", Value: 2},
					{Label: "2 a 4 ofertas", Value: 3},
					{Label: "1 a 2 ofertas bem definidas", Value: 4},
				},
			},
		},
	},
	{
		ID:   "comercial",
		Name: "Estrutura Comercial",
		Icon: "⬡",
		Questions: []Question{
			{
				Text: "Como funciona seu processo de vendas hoje?",
				Options: []Option{
					{Label: "Não tenho processo, vendo quando aparece", Value: 1},
					{Label: "Posto conteúdo e torço pra alguém comprar", Value: 2},
					{Label: "Tenho um funil, mas não sei se funciona", Value: 3},
					{Label: "Tenho um processo claro com etapas definidas", Value: 4},
				},
			},
			{
				Text: "Você sabe exatamente quanto custa adquirir um cliente (CAC)?",
				Options: []Option{
					{Label: "Não faço ideia", Value: 1},
					{Label: "Tenho um chute", Value: 2},
					{Label: "Sei mais ou menos", Value: 3},
					{Label: "Sei o número e acompanho", Value: 4},
				},
			},
		},
	},
	{
		ID:   "tempo",
		Name: "Gestão de Tempo",
		Icon: "◈",
		Questions: []Question{
			{
				Text: "Quantas horas por semana você trabalha no operacional (entrega, suporte, conteúdo)?",
				Options: []Option{
					{Label: "Todas. Eu sou o operacional.", Value: 1},
					{Label: "Mais de 40h", Value: 2},
					{Label: "20 a 40h", Value: 3},
					{Label: "Menos de 20h, o resto é estratégia", Value: 4},
				},
			},
			{
				Text: "Se você parar de trabalhar por 30 dias, o que acontece com seu faturamento?",
				Options: []Option{
					{Label: "Zera completamente", Value: 1},
					{Label: "Cai mais de 70%", Value: 2},
					{Label: "Cai uns 30-50%", Value: 3},
					{Label: "Quase nada muda", Value: 4},
				},
			},
		},
	},
	{
		ID:   "aquisicao",
		Name: "Aquisição de Clientes",
		Icon: "◇",
		Questions: []Question{
			{
				Text: "De onde vêm seus clientes hoje?",
				Options: []Option{
					{Label: "Não sei, aparecem do nada", Value: 1},
					{Label: "Só de indicação ou boca a boca", Value: 2},
					{Label: "De 1-2 canais, mas sem previsibilidade", Value: 3},
					{Label: "De canais definidos com métricas e previsibilidade", Value: 4},
				},
			},
			{
				Text: "Você consegue prever quantos clientes novos vai ter no próximo mês?",
				Options: []Option{
					{Label: "Não, é sempre surpresa", Value: 1},
					{Label: "Tenho uma noção vaga", Value: 2},
					{Label: "Consigo estimar com margem grande de erro", Value: 3},
					{Label: "Sim, tenho previsibilidade razoável", Value: 4},
				},
			},
		},
	},
	{
		ID:   "entrega",
		Name: "Entrega e Retenção",
		Icon: "△",
		Questions: []Question{
			{
				Text: "Seus clientes voltam a comprar de você?",
				Options: []Option{
					{Label: "Quase nunca", Value: 1},
					{Label: "Alguns, por acaso", Value: 2},
					{Label: "Sim, mas não tenho estratégia pra isso", Value: 3},
					{Label: "Sim, tenho upsell/retenção estruturados", Value: 4},
				},
			},
			{
				Text: "Você coleta feedback dos seus clientes de forma sistemática?",
				Options: []Option{
					{Label: "Nunca pedi feedback", Value: 1},
					{Label: "Às vezes pergunto informalmente", Value: 2},
					{Label: "Peço, mas não faço nada com isso", Value: 3},
					{Label: "Coleto e uso pra melhorar minha entrega", Value: 4},
				},
			},
		},
	},
	{
		ID:   "financeiro",
		Name: "Saúde Financeira",
		Icon: "□",
		Questions: []Question{
			{
				Text: "Você sabe sua margem de lucro real (descontando tudo)?",
				Options: []Option{
					{Label: "Não controlo nada", Value: 1},
					{Label: "Sei o faturamento, mas não o lucro", Value: 2},
					{Label: "Tenho uma noção, mas não é preciso", Value: 3},
					{Label: "Sei exatamente e acompanho mensalmente", Value: 4},
				},
			},
			{
				Text: "Quanto do seu faturamento depende de lançamentos ou picos sazonais?",
				Options: []Option{
					{Label: "100% — sem lançamento, não fatura", Value: 1},
					{Label: "Mais de 70%", Value: 2},
					{Label: "30 a 50%", Value: 3},
					{Label: "Menos de 30%, tenho receita recorrente", Value: 4},
				},
			},
		},
	},
	{
		ID:   "equipe",
		Name: "Equipe e Operação",
		Icon: "⬢",
		Questions: []Question{
			{
				Text: "Quem executa o trabalho do dia a dia no seu negócio?",
				Options: []Option{
					{Label: "Só eu. Tudo.", Value: 1},
					{Label: "Eu e um freelancer aqui e ali", Value: 2},
					{Label: "Tenho pessoas, mas sem funções claras", Value: 3},
					{Label: "Tenho equipe com papéis e responsabilidades definidos", Value: 4},
				},
			},
			{
				Text: "Seus processos estão documentados? Se alguém novo entrasse, saberia o que fazer?",
				Options: []Option{
					{Label: "Nada documentado, tá tudo na minha cabeça", Value: 1},
					{Label: "Tenho algumas anotações soltas", Value: 2},
					{Label: "Principais processos estão registrados", Value: 3},
					{Label: "Sim, tenho processos claros e treináveis", Value: 4},
				},
			},
		},
	},
}

// AllQuestions flattens the bank into the sequential order the quiz presents:
// dimensions in declaration order, questions in index order.
func AllQuestions() []FlatQuestion {
	var out []FlatQuestion
	for _, dim := range Dimensions {
		for qi, q := range dim.Questions {
			out = append(out, FlatQuestion{
				Question:      q,
				DimensionID:   dim.ID,
				DimensionName: dim.Name,
				DimensionIcon: dim.Icon,
				QuestionIndex: qi,
				Key:           AnswerKey(dim.ID, qi),
			})
		}
	}
	return out
}

// AnswerKey builds the composite answer-map key for a question.
func AnswerKey(dimensionID string, questionIndex int) string {
	return dimensionID + "_" + strconv.Itoa(questionIndex)
}

// DimensionByID returns the dimension with the given id, or nil.
func DimensionByID(id string) *Dimension {
	for i := range Dimensions {
		if Dimensions[i].ID == id {
			return &Dimensions[i]
		}
	}
	return nil
}
