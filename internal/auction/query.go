package auction

import (
	"fmt"
	"strings"

	"auctionbase/internal/auctionerrors"
)

// StatusFilter значение фильтра по статусу в форме поиска
type StatusFilter string

const (
	FilterAll        StatusFilter = "all"
	FilterOpen       StatusFilter = "open"
	FilterNotStarted StatusFilter = "notStarted"
	FilterClosed     StatusFilter = "close"
)

// SearchFilter набор необязательных условий поиска лотов.
// Незаданные поля (nil или пустая строка) не ограничивают выборку.
type SearchFilter struct {
	ItemID      *int64
	SellerID    string
	MinPrice    *float64
	MaxPrice    *float64
	Description string
	Category    string
	Status      StatusFilter

	Limit  int // 0 - без ограничения
	Offset int
}

// подзапрос к единственной строке currenttime
const nowSubquery = "(SELECT time FROM currenttime)"

const searchBaseQuery = `SELECT i.item_id, i.name, i.seller_user_id, i.description, i.currently,
       i.first_bid, i.buy_price, i.started, i.ends, i.number_of_bids
FROM items i`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains строит шаблон LIKE для поиска подстроки
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// BuildSearchQuery собирает запрос поиска лотов.
// Пользовательские значения передаются только через плейсхолдеры "?",
// хранилище переводит их в формат драйвера через Rebind.
func BuildSearchQuery(f SearchFilter) (string, []any, error) {
	var (
		conds []string
		args  []any
	)

	if f.ItemID != nil {
		conds = append(conds, "i.item_id = ?")
		args = append(args, *f.ItemID)
	}
	if f.SellerID != "" {
		conds = append(conds, "i.seller_user_id = ?")
		args = append(args, f.SellerID)
	}
	if f.MinPrice != nil {
		conds = append(conds, "i.currently >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conds = append(conds, "i.currently <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.Description != "" {
		conds = append(conds, `i.description LIKE ? ESCAPE '\'`)
		args = append(args, likeContains(f.Description))
	}
	if f.Category != "" {
		conds = append(conds, `EXISTS (SELECT 1 FROM categories c WHERE c.item_id = i.item_id AND c.category LIKE ? ESCAPE '\')`)
		args = append(args, likeContains(f.Category))
	}

	switch f.Status {
	case "", FilterAll:
		// без ограничения
	case FilterOpen:
		conds = append(conds, "("+nowSubquery+" BETWEEN i.started AND i.ends AND (i.buy_price IS NULL OR i.currently < i.buy_price))")
	case FilterNotStarted:
		conds = append(conds, "i.started > "+nowSubquery)
	case FilterClosed:
		conds = append(conds, "(i.ends < "+nowSubquery+" OR (i.buy_price IS NOT NULL AND i.currently >= i.buy_price))")
	default:
		return "", nil, fmt.Errorf("%w: unknown status %q", auctionerrors.ErrValidation, f.Status)
	}

	query := searchBaseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY i.number_of_bids DESC, i.item_id ASC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, f.Offset)
	}

	return query, args, nil
}
