package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock_repository

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// DBI additionally opens transactions; *sqlx.DB satisfies it.
type DBI interface {
	QueryI
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type Repository struct {
	*FlashcardsR
	*QuizR
	*SessionsR
	*AnalyticsR
}

func NewRepository(db DBI) Repository {
	return Repository{
		FlashcardsR: NewFlashcardsRepository(db),
		QuizR:       NewQuizRepository(db),
		SessionsR:   NewSessionsRepository(db),
		AnalyticsR:  NewAnalyticsRepository(db),
	}
}
