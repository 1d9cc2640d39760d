package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is a persisted quiz completion: contact fields, the computed scores,
// and the raw answer set serialized as JSON text. Leads are insert-only;
// there is no update or delete path.
type Lead struct {
	ID uuid.UUID `json:"id"`

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

	PontoForte   string `json:"ponto_forte"`
	MaiorGargalo string `json:"maior_gargalo"`

	RespostasJSON string `json:"respostas_json"`

	CreatedAt time.Time `json:"created_at"`
}

type LeadFilter struct {
	Nivel  string
	Email  string
	Limit  int
	Offset int
}

// LeadStats is a rollup for the admin surface.
type LeadStats struct {
	Total        int            `json:"total"`
	ByLevel      map[string]int `json:"by_level"`
	AvgNotaGeral float64        `json:"avg_nota_geral"`
}

type Store interface {
	InsertLead(ctx context.Context, l *Lead) error
	GetLead(ctx context.Context, id uuid.UUID) (*Lead, error)
	ListLeads(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	Stats(ctx context.Context) (*LeadStats, error)

	Close() error
}
