package auction

import (
	"time"

	"auctionbase/models"
)

// Status производный статус лота. В БД не хранится, всегда вычисляется заново.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusOpen       Status = "Open"
	StatusClosed     Status = "Closed"
)

// ResolveStatus вычисляет статус лота относительно момента now.
// "Not Started" имеет приоритет над "Closed".
func ResolveStatus(item models.Item, now time.Time) Status {
	switch {
	case item.Started.After(now):
		return StatusNotStarted
	case item.Ends.Before(now), boughtOut(item):
		return StatusClosed
	default:
		return StatusOpen
	}
}

// boughtOut сообщает, достигла ли текущая цена цены выкупа
func boughtOut(item models.Item) bool {
	return item.BuyPrice != nil && item.Currently >= *item.BuyPrice
}
