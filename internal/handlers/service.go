package handlers

import (
	"context"
	"time"

	"auctionbase/internal/auction"
	"auctionbase/models"
)

// AuctionService операции аукциона, которые вызывают обработчики
type AuctionService interface {
	CurrentTime(ctx context.Context) (time.Time, error)
	SelectTime(ctx context.Context, in auction.SelectTimeInput) (time.Time, error)
	Search(ctx context.Context, in auction.SearchInput) ([]auction.ItemSummary, error)
	PlaceBid(ctx context.Context, in auction.PlaceBidInput) (*models.Bid, error)
	AuctionDetail(ctx context.Context, itemID string) (*auction.Detail, error)
}

var _ AuctionService = (*auction.Service)(nil)
