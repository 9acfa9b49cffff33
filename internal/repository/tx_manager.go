package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager выполняет вызовы репозиториев в одной транзакции
type TxManager interface {
	// WithTx выполняет fn в транзакции: ошибка из fn - откат, иначе коммит.
	// Вложенный вызов переиспользует уже открытую транзакцию
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	// WithTxOptions то же, но с уровнем изоляции/режимом доступа
	WithTxOptions(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error
}

// DBTX общий интерфейс pool и tx
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &txManager{pool: pool}
}

type txKey struct{}

func (m *txManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.WithTxOptions(ctx, pgx.TxOptions{}, fn)
}

func (m *txManager) WithTxOptions(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// GetTxOrPool возвращает tx из контекста, если она есть, иначе pool
func GetTxOrPool(ctx context.Context, pool *pgxpool.Pool) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
