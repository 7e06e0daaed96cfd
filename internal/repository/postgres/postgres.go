package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/YusovID/defect-tracker/internal/config"
	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

type Postgres struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewDB(ctx context.Context, cfg config.Postgres, log *slog.Logger) (*Postgres, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	log.Info("connected to postgres",
		slog.String("host", cfg.Host),
		slog.String("database", cfg.Database),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return &Postgres{
		db:  db,
		log: log,
	}, nil
}

func (p *Postgres) DB() *sqlx.DB {
	return p.db
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

type mapScanner interface {
	MapScan(dest map[string]any) error
}

// scanBag reads the current row into a Bag keyed by column name.
func scanBag(s mapScanner) (domain.Bag, error) {
	b := domain.Bag{}
	if err := s.MapScan(b); err != nil {
		return nil, err
	}

	return b, nil
}

// queryBags runs query and returns one Bag per row.
func queryBags(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]domain.Bag, error) {
	rows, err := q.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bags []domain.Bag

	for rows.Next() {
		b, err := scanBag(rows)
		if err != nil {
			return nil, err
		}

		bags = append(bags, b)
	}

	return bags, rows.Err()
}

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}

	return ""
}
