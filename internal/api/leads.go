package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/somosintegros/diagnostico/internal/events"
	"github.com/somosintegros/diagnostico/internal/lead"
	"github.com/somosintegros/diagnostico/internal/store"
	"github.com/somosintegros/diagnostico/internal/tagger"
)

type LeadsHandler struct {
	store  store.Store
	tagger tagger.Client
	events events.Client
	logger *slog.Logger
}

func NewLeadsHandler(s store.Store, t tagger.Client, e events.Client, logger *slog.Logger) *LeadsHandler {
	return &LeadsHandler{store: s, tagger: t, events: e, logger: logger}
}

// Create handles POST /api/leads. Validation fails closed before any side
// effect; after it passes, the persistence write and the tagging call run
// concurrently and independently, and the response is 200 regardless of
// either outcome.
func (h *LeadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	leadsReceived.Inc()

	var sub lead.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		leadsRejected.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid data"})
		return
	}
	if err := sub.Validate(); err != nil {
		leadsRejected.Inc()
		h.logger.Info("lead rejected", "reason", err.Error())
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "error": "Invalid data"})
		return
	}

	sub.Normalize()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.persist(r, &sub)
	}()
	go func() {
		defer wg.Done()
		h.forward(r, &sub)
	}()
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *LeadsHandler) persist(r *http.Request, sub *lead.Submission) {
	respostas, _ := json.Marshal(sub.Respostas)
	l := &store.Lead{
		Nome:          sub.Nome,
		Email:         sub.Email,
		Whatsapp:      sub.Whatsapp,
		NotaGeral:     sub.NotaGeral,
		Nivel:         sub.Nivel,
		Clareza:       sub.Clareza,
		Comercial:     sub.Comercial,
		Tempo:         sub.Tempo,
		Aquisicao:     sub.Aquisicao,
		Entrega:       sub.Entrega,
		Financeiro:    sub.Financeiro,
		Equipe:        sub.Equipe,
		PontoForte:    sub.PontoForte,
		MaiorGargalo:  sub.MaiorGargalo,
		RespostasJSON: string(respostas),
	}
	if err := h.store.InsertLead(r.Context(), l); err != nil {
		persistFailures.Inc()
		h.logger.Error("lead save failed", "error", err)
		return
	}
	if h.events != nil {
		_ = h.events.Publish(events.SubjectLeadCaptured(l.ID.String()), events.LeadCapturedEvent{
			LeadID:    l.ID.String(),
			Email:     l.Email,
			NotaGeral: l.NotaGeral,
			Nivel:     l.Nivel,
		})
	}
}

func (h *LeadsHandler) forward(r *http.Request, sub *lead.Submission) {
	if h.tagger == nil || !h.tagger.Configured() {
		taggingSkipped.Inc()
		h.logger.Warn("tagging credentials not set, skipping tag subscribe")
		return
	}
	err := h.tagger.Tag(r.Context(), tagger.Subscription{
		Email:     sub.Email,
		FirstName: sub.FirstName(),
		Whatsapp:  sub.Whatsapp,
	})
	if err != nil {
		taggingFailures.Inc()
		h.logger.Error("tag subscribe failed", "error", err)
	}
}

// List handles GET /api/leads (admin).
func (h *LeadsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.LeadFilter{
		Nivel: r.URL.Query().Get("nivel"),
		Email: r.URL.Query().Get("email"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	leads, err := h.store.ListLeads(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if leads == nil {
		leads = []*store.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

// Get handles GET /api/leads/{id} (admin).
func (h *LeadsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid lead id"})
		return
	}

	l, err := h.store.GetLead(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if l == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "lead not found"})
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Stats handles GET /api/stats (admin).
func (h *LeadsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
