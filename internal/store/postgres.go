package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const leadColumns = `id, nome, email, whatsapp, nota_geral, nivel,
	clareza, comercial, tempo, aquisicao, entrega, financeiro, equipe,
	ponto_forte, maior_gargalo, respostas_json, created_at`

func (s *PostgresStore) InsertLead(ctx context.Context, l *Lead) error {
	return s.pool.QueryRow(ctx, `
		INSERT INTO leads (
			nome, email, whatsapp, nota_geral, nivel,
			clareza, comercial, tempo, aquisicao, entrega,
			financeiro, equipe, ponto_forte, maior_gargalo, respostas_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at`,
		l.Nome, l.Email, l.Whatsapp, l.NotaGeral, l.Nivel,
		l.Clareza, l.Comercial, l.Tempo, l.Aquisicao, l.Entrega,
		l.Financeiro, l.Equipe, l.PontoForte, l.MaiorGargalo, l.RespostasJSON,
	).Scan(&l.ID, &l.CreatedAt)
}

func (s *PostgresStore) GetLead(ctx context.Context, id uuid.UUID) (*Lead, error) {
	l := &Lead{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+leadColumns+`
		FROM leads WHERE id = $1`, id,
	).Scan(
		&l.ID, &l.Nome, &l.Email, &l.Whatsapp, &l.NotaGeral, &l.Nivel,
		&l.Clareza, &l.Comercial, &l.Tempo, &l.Aquisicao, &l.Entrega,
		&l.Financeiro, &l.Equipe,
		&l.PontoForte, &l.MaiorGargalo, &l.RespostasJSON, &l.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *PostgresStore) ListLeads(ctx context.Context, filter LeadFilter) ([]*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Nivel != "" {
		n++
		query += fmt.Sprintf(" AND nivel = $%d", n)
		args = append(args, filter.Nivel)
	}
	if filter.Email != "" {
		n++
		query += fmt.Sprintf(" AND email = $%d", n)
		args = append(args, filter.Email)
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (s *PostgresStore) Stats(ctx context.Context) (*LeadStats, error) {
	stats := &LeadStats{ByLevel: map[string]int{}}
	err := s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(AVG(nota_geral), 0) FROM leads`,
	).Scan(&stats.Total, &stats.AvgNotaGeral)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT nivel, COUNT(*) FROM leads GROUP BY nivel`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var nivel string
		var count int
		if err := rows.Scan(&nivel, &count); err != nil {
			return nil, err
		}
		stats.ByLevel[nivel] = count
	}
	return stats, rows.Err()
}

func scanLeads(rows pgx.Rows) ([]*Lead, error) {
	var leads []*Lead
	for rows.Next() {
		l := &Lead{}
		if err := rows.Scan(
			&l.ID, &l.Nome, &l.Email, &l.Whatsapp, &l.NotaGeral, &l.Nivel,
			&l.Clareza, &l.Comercial, &l.Tempo, &l.Aquisicao, &l.Entrega,
			&l.Financeiro, &l.Equipe,
			&l.PontoForte, &l.MaiorGargalo, &l.RespostasJSON, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}
