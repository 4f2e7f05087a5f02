package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
	"github.com/riskibarqy/football-live/internal/platform/txscope"
	"github.com/riskibarqy/football-live/internal/usecase"
)

const uniqueViolationCode = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolationCode
	}
	return false
}

type txKey struct{}

// TxManager stores the open transaction in the context; repositories pick it
// up through executor.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise. A nested call
// joins the outer transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(txscope.Enter(context.WithValue(ctx, txKey{}, tx))); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// executor returns the transaction carried by ctx, or db.
func executor(ctx context.Context, db *sqlx.DB) (sqlx.ExtContext, bool) {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx, true
	}
	return db, false
}

func selectOne[R any](ctx context.Context, q sqlx.ExtContext, table string, columns []string, where ...qb.Condition) (R, bool, error) {
	var row R
	query, args, err := qb.Select(columns...).From(table).Where(where...).Limit(1).ToSQL()
	if err != nil {
		return row, false, fmt.Errorf("build select %s query: %w", table, err)
	}
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return row, false, nil
		}
		return row, false, fmt.Errorf("select %s: %w", table, err)
	}
	return row, true, nil
}

func selectMany[R any](ctx context.Context, q sqlx.ExtContext, table string, columns []string, orderBy []string, where ...qb.Condition) ([]R, error) {
	query, args, err := qb.Select(columns...).From(table).Where(where...).OrderBy(orderBy...).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}
	var rows []R
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return rows, nil
}

// getOrCreate returns the row matching key, inserting insert when none exists.
// A unique violation means a concurrent writer won; its row is read back. Inside
// a transaction the insert runs under a savepoint so the violation does not
// abort the outer transaction.
func getOrCreate[R any](ctx context.Context, db *sqlx.DB, table string, columns []string, key []qb.Condition, insert any) (R, bool, error) {
	q, inTx := executor(ctx, db)

	row, found, err := selectOne[R](ctx, q, table, columns, key...)
	if err != nil || found {
		return row, false, err
	}

	query, args, err := qb.InsertModel(table, insert, columns...)
	if err != nil {
		return row, false, fmt.Errorf("build insert %s query: %w", table, err)
	}

	if inTx {
		if _, err := q.ExecContext(ctx, "SAVEPOINT get_or_create"); err != nil {
			return row, false, fmt.Errorf("savepoint %s: %w", table, err)
		}
	}

	var created R
	insertErr := sqlx.GetContext(ctx, q, &created, query, args...)
	if insertErr == nil {
		if inTx {
			if _, err := q.ExecContext(ctx, "RELEASE SAVEPOINT get_or_create"); err != nil {
				return created, false, fmt.Errorf("release savepoint %s: %w", table, err)
			}
		}
		return created, true, nil
	}
	if !isUniqueViolation(insertErr) {
		return row, false, fmt.Errorf("insert %s: %w", table, insertErr)
	}

	if inTx {
		if _, err := q.ExecContext(ctx, "ROLLBACK TO SAVEPOINT get_or_create"); err != nil {
			return row, false, fmt.Errorf("rollback savepoint %s: %w", table, err)
		}
	}
	row, found, err = selectOne[R](ctx, q, table, columns, key...)
	if err != nil {
		return row, false, err
	}
	if !found {
		return row, false, fmt.Errorf("%w: %s row vanished after conflict", usecase.ErrDuplicateKey, table)
	}
	return row, false, nil
}

// selectColumns prefixes id to the db columns of model.
func selectColumns(model any) []string {
	cols, err := qb.ColumnNames(model)
	if err != nil {
		panic(fmt.Sprintf("postgres: invalid column model %T: %v", model, err))
	}
	return append([]string{"id"}, cols...)
}
