package auction

import (
	"context"
	"time"

	"auctionbase/models"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=auction

// Store доступ к данным аукциона. Реализуется db.Storage.
type Store interface {
	GetTime(ctx context.Context) (time.Time, error)
	SetTime(ctx context.Context, t time.Time) error

	SearchItems(ctx context.Context, f SearchFilter) ([]models.Item, error)
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetCategories(ctx context.Context, itemID int64) ([]string, error)
	GetBidsByItem(ctx context.Context, itemID int64) ([]models.Bid, error)

	// CreateBid проверяет существование лота и пользователя и вставляет ставку
	// в одной транзакции. Время ставки берётся из currenttime и пишется в bid.Time.
	CreateBid(ctx context.Context, bid *models.Bid) error
}
