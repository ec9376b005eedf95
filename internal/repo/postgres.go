package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// postgresRepo holds the pool and the query builder shared by every
// aggregate repository. Queries run inside the transaction stored in ctx
// when there is one.
type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newPostgresRepo(db *sqlx.DB) postgresRepo {
	return postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}

// affected runs an update or delete and returns the number of rows it hit.
func (r *postgresRepo) affected(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func offset(page, limit int) uint64 {
	if page < 1 {
		page = 1
	}
	return uint64((page - 1) * limit)
}
