package auction

import (
	"testing"
	"time"

	"auctionbase/models"

	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestResolveStatus(t *testing.T) {
	now := time.Date(2001, 12, 20, 0, 0, 1, 0, time.UTC)
	hour := time.Hour

	tests := []struct {
		name string
		item models.Item
		want Status
	}{
		{
			name: "not_started",
			item: models.Item{Started: now.Add(hour), Ends: now.Add(2 * hour), Currently: 10},
			want: StatusNotStarted,
		},
		{
			name: "not_started_wins_over_buy_price",
			item: models.Item{Started: now.Add(hour), Ends: now.Add(2 * hour), Currently: 50, BuyPrice: price(20)},
			want: StatusNotStarted,
		},
		{
			name: "open_without_buy_price",
			item: models.Item{Started: now.Add(-hour), Ends: now.Add(hour), Currently: 10},
			want: StatusOpen,
		},
		{
			name: "open_below_buy_price",
			item: models.Item{Started: now.Add(-hour), Ends: now.Add(hour), Currently: 10, BuyPrice: price(20)},
			want: StatusOpen,
		},
		{
			name: "open_on_start_boundary",
			item: models.Item{Started: now, Ends: now.Add(hour), Currently: 10},
			want: StatusOpen,
		},
		{
			name: "open_on_end_boundary",
			item: models.Item{Started: now.Add(-hour), Ends: now, Currently: 10},
			want: StatusOpen,
		},
		{
			name: "closed_after_end",
			item: models.Item{Started: now.Add(-2 * hour), Ends: now.Add(-hour), Currently: 10},
			want: StatusClosed,
		},
		{
			name: "closed_buy_price_reached",
			item: models.Item{Started: now.Add(-hour), Ends: now.Add(hour), Currently: 20, BuyPrice: price(20)},
			want: StatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveStatus(tt.item, now))
		})
	}
}

func TestResolveStatusIsPure(t *testing.T) {
	now := time.Date(2001, 12, 20, 0, 0, 1, 0, time.UTC)
	item := models.Item{Started: now.Add(-time.Hour), Ends: now.Add(time.Hour), Currently: 5, BuyPrice: price(7)}

	first := ResolveStatus(item, now)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, ResolveStatus(item, now))
	}
	require.Contains(t, []Status{StatusNotStarted, StatusOpen, StatusClosed}, first)

	// смена "текущего времени" меняет статус
	require.Equal(t, StatusClosed, ResolveStatus(item, now.Add(2*time.Hour)))
	require.Equal(t, StatusNotStarted, ResolveStatus(item, now.Add(-2*time.Hour)))
}
