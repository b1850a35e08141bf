package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auctionbase/internal/auction"
	"auctionbase/internal/auctionerrors"
	"auctionbase/models"

	"github.com/jmoiron/sqlx"
)

var _ auction.Store = (*Storage)(nil)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// mapError переводит sql.ErrNoRows в доменную ошибку notFound
func mapError(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return err
}

// txError помечает сбой запроса внутри транзакции как ErrTransaction
func txError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNotFound)
	}
	return fmt.Errorf("%w: %s: %w", auctionerrors.ErrTransaction, op, err)
}

// Текущее время (CurrentTime)

func (s *Storage) GetTime(ctx context.Context) (time.Time, error) {
	var t time.Time
	query := `SELECT time FROM currenttime`
	if err := s.db.GetContext(ctx, &t, query); err != nil {
		return time.Time{}, fmt.Errorf("can't get current time: %w", mapError(err, auctionerrors.ErrNotFound))
	}
	return t, nil
}

func (s *Storage) SetTime(ctx context.Context, t time.Time) error {
	return WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		query := `UPDATE currenttime SET time = $1`
		res, err := tx.ExecContext(ctx, query, t)
		if err != nil {
			return txError("can't update current time", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return txError("can't get affected rows", err)
		}
		// строка currenttime должна существовать всегда
		if affected != 1 {
			return fmt.Errorf("current time row: %w", auctionerrors.ErrNotFound)
		}
		return nil
	})
}

// Лоты (Items)

const itemColumns = `item_id, name, seller_user_id, description, currently,
       first_bid, buy_price, started, ends, number_of_bids`

func (s *Storage) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item := &models.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE item_id=$1`
	if err := s.db.GetContext(ctx, item, query, itemID); err != nil {
		return nil, fmt.Errorf("can't get item %d: %w", itemID, mapError(err, auctionerrors.ErrItemNotFound))
	}
	return item, nil
}

func (s *Storage) SearchItems(ctx context.Context, f auction.SearchFilter) ([]models.Item, error) {
	query, args, err := auction.BuildSearchQuery(f)
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	if err := s.db.SelectContext(ctx, &items, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("can't search items: %w", err)
	}
	return items, nil
}

func (s *Storage) GetCategories(ctx context.Context, itemID int64) ([]string, error) {
	categories := []string{}
	query := `SELECT category FROM categories WHERE item_id=$1 ORDER BY category`
	if err := s.db.SelectContext(ctx, &categories, query, itemID); err != nil {
		return nil, fmt.Errorf("can't get categories for item %d: %w", itemID, err)
	}
	return categories, nil
}

// Пользователи (Users)

func (s *Storage) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT user_id, rating, location, country FROM users WHERE user_id=$1`
	if err := s.db.GetContext(ctx, u, query, userID); err != nil {
		return nil, fmt.Errorf("can't get user %s: %w", userID, mapError(err, auctionerrors.ErrUserNotFound))
	}
	return u, nil
}

// Ставки (Bids)

func (s *Storage) GetBidsByItem(ctx context.Context, itemID int64) ([]models.Bid, error) {
	bids := []models.Bid{}
	query := `
        SELECT item_id, user_id, amount, time
        FROM bids
        WHERE item_id=$1
        ORDER BY amount DESC, time DESC`
	if err := s.db.SelectContext(ctx, &bids, query, itemID); err != nil {
		return nil, fmt.Errorf("can't get bids for item %d: %w", itemID, err)
	}
	return bids, nil
}

func (s *Storage) CreateBid(ctx context.Context, b *models.Bid) error {
	return WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM items WHERE item_id=$1`, b.ItemID); err != nil {
			return txError("can't check item", err)
		}
		if count == 0 {
			return fmt.Errorf("can't place bid on %d: %w", b.ItemID, auctionerrors.ErrItemNotFound)
		}

		if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM users WHERE user_id=$1`, b.UserID); err != nil {
			return txError("can't check user", err)
		}
		if count == 0 {
			return fmt.Errorf("can't place bid by %s: %w", b.UserID, auctionerrors.ErrUserNotFound)
		}

		// Время ставки - симулируемое текущее время
		if err := tx.GetContext(ctx, &b.Time, `SELECT time FROM currenttime`); err != nil {
			return txError("can't get current time", err)
		}

		query := `
            INSERT INTO bids (item_id, user_id, amount, time)
            VALUES ($1, $2, $3, $4)`
		if _, err := tx.ExecContext(ctx, query, b.ItemID, b.UserID, b.Amount, b.Time); err != nil {
			return txError("can't insert bid", err)
		}
		return nil
	})
}
