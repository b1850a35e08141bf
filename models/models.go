package models

import "time"

// TimeLayout формат времени, в котором время принимается и отдаётся наружу
const TimeLayout = "2006-01-02 15:04:05"

// Сущность Лота
type Item struct {
	ItemID       int64     `db:"item_id" json:"itemId"`
	Name         string    `db:"name" json:"name"`
	SellerUserID string    `db:"seller_user_id" json:"sellerUserId"`
	Description  string    `db:"description" json:"description"`
	Currently    float64   `db:"currently" json:"currently"`
	FirstBid     float64   `db:"first_bid" json:"firstBid"`
	BuyPrice     *float64  `db:"buy_price" json:"buyPrice,omitempty"` // nil, если выкуп не предусмотрен
	Started      time.Time `db:"started" json:"started"`
	Ends         time.Time `db:"ends" json:"ends"`
	NumberOfBids int       `db:"number_of_bids" json:"numberOfBids"`
}

// Сущность Пользователя (только чтение)
type User struct {
	UserID   string  `db:"user_id" json:"userId"`
	Rating   int     `db:"rating" json:"rating"`
	Location *string `db:"location" json:"location,omitempty"`
	Country  *string `db:"country" json:"country,omitempty"`
}

// Сущность Ставки
type Bid struct {
	ItemID int64     `db:"item_id" json:"itemId"`
	UserID string    `db:"user_id" json:"userId"`
	Amount float64   `db:"amount" json:"amount"`
	Time   time.Time `db:"time" json:"time"`
}

// Сущность Категории
type Category struct {
	ItemID   int64  `db:"item_id" json:"itemId"`
	Category string `db:"category" json:"category"`
}
