package api

import (
	"net/http"

	"github.com/somosintegros/diagnostico/internal/quiz"
)

type QuizHandler struct{}

func NewQuizHandler() *QuizHandler { return &QuizHandler{} }

// Get handles GET /api/quiz. The question bank and level table are static,
// so clients can cache the response freely.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dimensions": quiz.Dimensions,
		"levels":     quiz.Levels,
	})
}
