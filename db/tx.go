package db

import (
	"context"
	"fmt"

	"auctionbase/internal/auctionerrors"

	"github.com/jmoiron/sqlx"
)

type TxFunc func(*sqlx.Tx) error

// WithTx выполняет fn в транзакции: commit при успехе, rollback при ошибке или панике
func WithTx(ctx context.Context, db *sqlx.DB, fn TxFunc) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: can't begin tx: %w", auctionerrors.ErrTransaction, err)
	}

	defer func() {
		p := recover()
		switch {
		case p != nil:
			_ = tx.Rollback()
			panic(p)

		case err != nil:
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("can't rollback tx: %w. original error: %w", rbErr, err)
			}

		default:
			if err = tx.Commit(); err != nil {
				err = fmt.Errorf("%w: can't commit tx: %w", auctionerrors.ErrTransaction, err)
			}
		}
	}()

	err = fn(tx)
	return
}
