package auction

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"auctionbase/internal/auctionerrors"
	"auctionbase/models"
)

// Service бизнес-логика аукциона поверх Store
type Service struct {
	store Store
}

// NewService создает новый Service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ItemSummary лот вместе с вычисленным статусом
type ItemSummary struct {
	models.Item
	Status Status `json:"status"`
}

// Detail карточка лота
type Detail struct {
	Item       models.Item  `json:"item"`
	Seller     *models.User `json:"seller,omitempty"`
	Categories []string     `json:"categories"`
	Status     Status       `json:"status"`
	Bids       []models.Bid `json:"bids"`
	Winner     string       `json:"winner,omitempty"`
}

// CurrentTime возвращает текущее симулируемое время
func (s *Service) CurrentTime(ctx context.Context) (time.Time, error) {
	now, err := s.store.GetTime(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("service: failed to get current time: %w", err)
	}
	return now, nil
}

// SelectTime устанавливает текущее симулируемое время
func (s *Service) SelectTime(ctx context.Context, in SelectTimeInput) (time.Time, error) {
	if err := validate.Struct(in); err != nil {
		return time.Time{}, validationError(err)
	}

	t, err := in.Time()
	if err != nil {
		return time.Time{}, err
	}

	if err := s.store.SetTime(ctx, t); err != nil {
		return time.Time{}, fmt.Errorf("service: failed to set current time: %w", err)
	}
	return t, nil
}

// Search ищет лоты по фильтрам и вычисляет статус каждого
func (s *Service) Search(ctx context.Context, in SearchInput) ([]ItemSummary, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	filter, err := in.Filter()
	if err != nil {
		return nil, err
	}

	now, err := s.store.GetTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get current time: %w", err)
	}

	items, err := s.store.SearchItems(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search items: %w", err)
	}

	result := make([]ItemSummary, 0, len(items))
	for _, item := range items {
		result = append(result, ItemSummary{Item: item, Status: ResolveStatus(item, now)})
	}
	return result, nil
}

// PlaceBid проверяет ввод и записывает ставку
func (s *Service) PlaceBid(ctx context.Context, in PlaceBidInput) (*models.Bid, error) {
	if err := validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	itemID, amount, err := in.parse()
	if err != nil {
		return nil, err
	}

	// Currently и Number_of_Bids у лота здесь не обновляются
	bid := &models.Bid{
		ItemID: itemID,
		UserID: in.UserID,
		Amount: amount,
	}
	if err := s.store.CreateBid(ctx, bid); err != nil {
		return nil, fmt.Errorf("service: failed to record bid for item %d by user %s: %w", itemID, in.UserID, err)
	}

	return bid, nil
}

// AuctionDetail собирает карточку лота: категории, статус, ставки, продавца
func (s *Service) AuctionDetail(ctx context.Context, itemIDStr string) (*Detail, error) {
	itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item id %q", auctionerrors.ErrValidation, itemIDStr)
	}

	item, err := s.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get item %d: %w", itemID, err)
	}

	now, err := s.store.GetTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get current time: %w", err)
	}

	seller, err := s.store.GetUser(ctx, item.SellerUserID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNotFound) {
		return nil, fmt.Errorf("service: failed to get seller %s: %w", item.SellerUserID, err)
	}

	categories, err := s.store.GetCategories(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get categories for item %d: %w", itemID, err)
	}

	bids, err := s.store.GetBidsByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for item %d: %w", itemID, err)
	}

	d := &Detail{
		Item:       *item,
		Seller:     seller,
		Categories: categories,
		Status:     ResolveStatus(*item, now),
		Bids:       bids,
	}
	// Ставки отсортированы по убыванию суммы, первая - выигрышная
	if d.Status == StatusClosed && len(bids) > 0 {
		d.Winner = bids[0].UserID
	}

	return d, nil
}
