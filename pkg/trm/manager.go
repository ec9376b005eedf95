package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction bound to ctx, or nil.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, Transaction, error)

	// Do runs callback inside a transaction. When ctx already carries one,
	// callback joins it and commit/rollback is left to the outer Do.
	Do(ctx context.Context, callback func(ctx context.Context) error) error
	DoWithOptions(ctx context.Context, opts *sql.TxOptions, callback func(ctx context.Context) error) error
}

type txManager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db: db,
	}
}

func (t *txManager) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	return t.DoWithOptions(ctx, nil, callback)
}

func (t *txManager) DoWithOptions(ctx context.Context, opts *sql.TxOptions, callback func(ctx context.Context) error) (err error) {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	ctx, tx, err := t.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("failed to rollback: %w", rbErr))
			}
		}
	}()

	if err = callback(ctx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}
	return nil
}
