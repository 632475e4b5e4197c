// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/competitor-radar-api/infrastructure/database/postgres"
	"github.com/vfg2006/competitor-radar-api/internal/domain"
	"github.com/vfg2006/competitor-radar-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const analysisRunTable = "analysis_run"

//go:generate mockgen -source=analysis_run.go -destination=mocks/analysis_run.go -package=mocks

type AnalysisRunRepository interface {
	SaveRun(run *domain.AnalysisRun) error
	GetRunByID(id string) (*domain.AnalysisRun, error)
	ListRuns(limit int) ([]*domain.AnalysisRun, error)
}

type analysisRunRepository struct {
	conn *postgres.Connection
}

func NewAnalysisRunRepository(conn *postgres.Connection) AnalysisRunRepository {
	return &analysisRunRepository{conn: conn}
}

// SaveRun persiste uma execução de análise com os payloads em jsonb
func (r *analysisRunRepository) SaveRun(run *domain.AnalysisRun) error {
	if run.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da execução: %w", err)
		}
		run.ID = id
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	competitorsJSON, err := json.Marshal(run.Competitors)
	if err != nil {
		return fmt.Errorf("erro ao serializar concorrentes: %w", err)
	}

	statsJSON, err := json.Marshal(run.Stats)
	if err != nil {
		return fmt.Errorf("erro ao serializar estatísticas: %w", err)
	}

	query, args, err := squirrel.
		Insert(analysisRunTable).
		Columns("id", "keyword", "country", "competitors", "stats", "created_at").
		Values(run.ID, run.Keyword, run.Country, competitorsJSON, statsJSON, run.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução de análise: %w", err)
	}

	return nil
}

func (r *analysisRunRepository) GetRunByID(id string) (*domain.AnalysisRun, error) {
	query, args, err := squirrel.
		Select("id", "keyword", "country", "competitors", "stats", "created_at").
		From(analysisRunTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	run, err := scanAnalysisRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar execução de análise: %w", err)
	}

	return run, nil
}

func (r *analysisRunRepository) ListRuns(limit int) ([]*domain.AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}

	query, args, err := squirrel.
		Select("id", "keyword", "country", "competitors", "stats", "created_at").
		From(analysisRunTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar execuções de análise: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.AnalysisRun, 0)
	for rows.Next() {
		run, err := scanAnalysisRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução de análise: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysisRun(row rowScanner) (*domain.AnalysisRun, error) {
	var (
		run             domain.AnalysisRun
		competitorsJSON []byte
		statsJSON       []byte
	)

	err := row.Scan(
		&run.ID,
		&run.Keyword,
		&run.Country,
		&competitorsJSON,
		&statsJSON,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(competitorsJSON, &run.Competitors); err != nil {
		return nil, fmt.Errorf("erro ao desserializar concorrentes: %w", err)
	}
	if len(statsJSON) > 0 {
		if err := json.Unmarshal(statsJSON, &run.Stats); err != nil {
			return nil, fmt.Errorf("erro ao desserializar estatísticas: %w", err)
		}
	}

	return &run, nil
}
