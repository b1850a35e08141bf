package db_test

import (
	"context"
	"os"
	"testing"
	"time"

	"auctionbase/db"
	"auctionbase/db/migrations"
	"auctionbase/internal/auction"
	"auctionbase/internal/auctionerrors"
	"auctionbase/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// Интеграционные тесты запускаются только при заданной TEST_POSTGRES_CONN
func newIntegrationStorage(t *testing.T) (*db.Storage, *sqlx.DB) {
	t.Helper()

	conn := os.Getenv("TEST_POSTGRES_CONN")
	if conn == "" {
		t.Skip("TEST_POSTGRES_CONN is not set")
	}

	dbConn, err := sqlx.Connect("postgres", conn)
	require.NoError(t, err)
	t.Cleanup(func() { dbConn.Close() })

	ctx := context.Background()
	require.NoError(t, migrations.Run(ctx, dbConn.DB))

	dbConn.MustExecContext(ctx, `TRUNCATE bids, categories, items, users`)
	dbConn.MustExecContext(ctx, `UPDATE currenttime SET time = $1`, now)

	dbConn.MustExecContext(ctx, `INSERT INTO users (user_id, rating) VALUES ('seller1', 10), ('bidder1', 3)`)
	dbConn.MustExecContext(ctx, `
        INSERT INTO items (item_id, name, seller_user_id, description, currently, first_bid, buy_price, started, ends, number_of_bids)
        VALUES
            (42, 'Lamp', 'seller1', 'brass 100% lamp', 10, 1, NULL, $1, $2, 5),
            (43, 'Desk', 'seller1', 'oak desk', 30, 5, 30, $1, $2, 9),
            (44, 'Vase', 'seller1', 'ming vase', 3, 1, NULL, $3, $4, 0)`,
		now.Add(-time.Hour), now.Add(time.Hour), now.Add(time.Hour), now.Add(2*time.Hour))
	dbConn.MustExecContext(ctx, `INSERT INTO categories (item_id, category) VALUES (42, 'Home & Garden'), (44, 'Antiques')`)

	return db.NewStorage(dbConn), dbConn
}

func TestIntegration_TimeRoundTrip(t *testing.T) {
	store, dbConn := newIntegrationStorage(t)
	ctx := context.Background()

	next := now.Add(48 * time.Hour)
	require.NoError(t, store.SetTime(ctx, next))

	got, err := store.GetTime(ctx)
	require.NoError(t, err)
	require.WithinDuration(t, next, got, 0)

	var rows int
	require.NoError(t, dbConn.GetContext(ctx, &rows, `SELECT COUNT(*) FROM currenttime`))
	require.Equal(t, 1, rows)
}

func TestIntegration_Search(t *testing.T) {
	store, _ := newIntegrationStorage(t)
	ctx := context.Background()

	all, err := store.SearchItems(ctx, auction.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int64{43, 42, 44}, []int64{all[0].ItemID, all[1].ItemID, all[2].ItemID})

	id := int64(42)
	open, err := store.SearchItems(ctx, auction.SearchFilter{ItemID: &id, Status: auction.FilterOpen})
	require.NoError(t, err)
	require.Len(t, open, 1)

	// 43 выкуплен: currently == buy_price
	id = 43
	open, err = store.SearchItems(ctx, auction.SearchFilter{ItemID: &id, Status: auction.FilterOpen})
	require.NoError(t, err)
	require.Empty(t, open)

	closed, err := store.SearchItems(ctx, auction.SearchFilter{Status: auction.FilterClosed})
	require.NoError(t, err)
	require.Len(t, closed, 1)
	require.Equal(t, int64(43), closed[0].ItemID)

	notStarted, err := store.SearchItems(ctx, auction.SearchFilter{Status: auction.FilterNotStarted})
	require.NoError(t, err)
	require.Len(t, notStarted, 1)
	require.Equal(t, int64(44), notStarted[0].ItemID)

	byCategory, err := store.SearchItems(ctx, auction.SearchFilter{Category: "Antique"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)

	byDescription, err := store.SearchItems(ctx, auction.SearchFilter{Description: "100%"})
	require.NoError(t, err)
	require.Len(t, byDescription, 1)

	caseSensitive, err := store.SearchItems(ctx, auction.SearchFilter{Description: "Brass"})
	require.NoError(t, err)
	require.Empty(t, caseSensitive)
}

func TestIntegration_CreateBid(t *testing.T) {
	store, dbConn := newIntegrationStorage(t)
	ctx := context.Background()

	bid := &models.Bid{ItemID: 42, UserID: "bidder1", Amount: 11}
	require.NoError(t, store.CreateBid(ctx, bid))
	require.WithinDuration(t, now, bid.Time, 0)

	err := store.CreateBid(ctx, &models.Bid{ItemID: 9999, UserID: "bidder1", Amount: 11})
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	err = store.CreateBid(ctx, &models.Bid{ItemID: 42, UserID: "ghost", Amount: 11})
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	var count int
	require.NoError(t, dbConn.GetContext(ctx, &count, `SELECT COUNT(*) FROM bids`))
	require.Equal(t, 1, count)

	bids, err := store.GetBidsByItem(ctx, 42)
	require.NoError(t, err)
	require.Len(t, bids, 1)
	require.Equal(t, 11.0, bids[0].Amount)
}
