package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/competitor-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

const trackedSearchTable = "tracked_search"

//go:generate mockgen -source=tracked_search.go -destination=mocks/tracked_search.go -package=mocks

type TrackedSearchRepository interface {
	Save(search *domain.TrackedSearch) error
	List() ([]*domain.TrackedSearch, error)
	ListActive() ([]*domain.TrackedSearch, error)
	UpdateSnapshot(id string, candidates int) error
}

type trackedSearchRepository struct {
	conn *postgres.Connection
}

func NewTrackedSearchRepository(conn *postgres.Connection) TrackedSearchRepository {
	return &trackedSearchRepository{conn: conn}
}

func (r *trackedSearchRepository) Save(search *domain.TrackedSearch) error {
	if search.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da busca: %w", err)
		}
		search.ID = id
	}
	if search.CreatedAt.IsZero() {
		search.CreatedAt = time.Now()
	}

	query, args, err := squirrel.
		Insert(trackedSearchTable).
		Columns("id", "keyword", "country", "active", "last_candidates", "created_at").
		Values(search.ID, search.Keyword, search.Country, search.Active, search.LastCandidates, search.CreatedAt).
		Suffix("ON CONFLICT (keyword, country) DO UPDATE SET active = EXCLUDED.active").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar busca acompanhada: %w", err)
	}

	return nil
}

func (r *trackedSearchRepository) List() ([]*domain.TrackedSearch, error) {
	return r.list(squirrel.Eq{})
}

func (r *trackedSearchRepository) ListActive() ([]*domain.TrackedSearch, error) {
	return r.list(squirrel.Eq{"active": true})
}

func (r *trackedSearchRepository) list(where squirrel.Eq) ([]*domain.TrackedSearch, error) {
	builder := squirrel.
		Select("id", "keyword", "country", "active", "last_candidates", "last_refreshed_at", "created_at").
		From(trackedSearchTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar buscas acompanhadas: %w", err)
	}
	defer rows.Close()

	searches := make([]*domain.TrackedSearch, 0)
	for rows.Next() {
		var search domain.TrackedSearch
		err := rows.Scan(
			&search.ID,
			&search.Keyword,
			&search.Country,
			&search.Active,
			&search.LastCandidates,
			&search.LastRefreshedAt,
			&search.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear busca acompanhada: %w", err)
		}
		searches = append(searches, &search)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return searches, nil
}

// UpdateSnapshot grava o resultado da última atualização agendada
func (r *trackedSearchRepository) UpdateSnapshot(id string, candidates int) error {
	query, args, err := squirrel.
		Update(trackedSearchTable).
		Set("last_candidates", candidates).
		Set("last_refreshed_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar snapshot da busca: %w", err)
	}

	return nil
}
