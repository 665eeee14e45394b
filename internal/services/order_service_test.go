package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp_orders/internal/repository"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestOrderService_ListOrders(t *testing.T) {
	svc := NewOrderService(repository.NewOrderRepository())

	tests := []struct {
		name    string
		filter  ListFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns full catalog",
			filter:  ListFilter{},
			wantIDs: []string{"ORD-2025-001", "ORD-2025-002", "ORD-2025-003", "ORD-2025-004", "ORD-2025-005"},
		},
		{
			name:    "status filter is case-insensitive",
			filter:  ListFilter{Status: "PROCESSING"},
			wantIDs: []string{"ORD-2025-001", "ORD-2025-005"},
		},
		{
			name:    "status filter exact match only",
			filter:  ListFilter{Status: "shipped"},
			wantIDs: []string{"ORD-2025-002"},
		},
		{
			name:    "unknown status matches nothing",
			filter:  ListFilter{Status: "Cancelled"},
			wantIDs: []string{},
		},
		{
			name:    "customer substring is case-insensitive",
			filter:  ListFilter{Customer: "acme"},
			wantIDs: []string{"ORD-2025-001"},
		},
		{
			name:    "customer partial name",
			filter:  ListFilter{Customer: "tech"},
			wantIDs: []string{"ORD-2025-002"},
		},
		{
			name:    "limit truncates",
			filter:  ListFilter{Limit: 2},
			wantIDs: []string{"ORD-2025-001", "ORD-2025-002"},
		},
		{
			name:    "zero limit means no limit",
			filter:  ListFilter{Limit: 0},
			wantIDs: []string{"ORD-2025-001", "ORD-2025-002", "ORD-2025-003", "ORD-2025-004", "ORD-2025-005"},
		},
		{
			name:    "negative limit means no limit",
			filter:  ListFilter{Limit: -3},
			wantIDs: []string{"ORD-2025-001", "ORD-2025-002", "ORD-2025-003", "ORD-2025-004", "ORD-2025-005"},
		},
		{
			name:    "limit applies after filtering",
			filter:  ListFilter{Status: "Processing", Limit: 1},
			wantIDs: []string{"ORD-2025-001"},
		},
		{
			name:    "status and customer combine",
			filter:  ListFilter{Status: "processing", Customer: "global"},
			wantIDs: []string{"ORD-2025-005"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ListOrders(tt.filter)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.OrderID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOrderService_ListOrders_Decoration(t *testing.T) {
	svc := NewOrderService(repository.NewOrderRepository())

	orders := svc.ListOrders(ListFilter{Customer: "acme"})
	require.Len(t, orders, 1)
	assert.Equal(t, 10, orders[0].ItemCount)
	assert.Contains(t, orders[0].TotalAmountFormatted, "649,90")
	assert.Contains(t, orders[0].TotalAmountFormatted, "kr")
}

func TestOrderService_GetOrder(t *testing.T) {
	now := time.Date(2025, 10, 3, 10, 30, 0, 0, time.UTC)
	svc := NewOrderServiceWithClock(repository.NewOrderRepository(), fixedClock(now))

	order, err := svc.GetOrder("ORD-2025-001")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corporation", order.CustomerName)
	assert.Equal(t, 10, order.ItemCount)
	assert.Equal(t, "28.9.2025", order.OrderDateFormatted)
	// Seeded 2025-09-28T10:30:00Z, exactly five days before "now".
	assert.Equal(t, 5, order.DaysAgo)

	require.Len(t, order.Items, 2)
	assert.InDelta(t, 6499.95, order.Items[0].Subtotal, 0.001)
	assert.InDelta(t, 149.95, order.Items[1].Subtotal, 0.001)
	assert.NotEmpty(t, order.Items[0].SubtotalFormatted)
	assert.NotEmpty(t, order.Items[0].UnitPriceFormatted)
	assert.NotEmpty(t, order.TotalAmountFormatted)
}

func TestOrderService_GetOrder_DaysAgoFloorsElapsedTime(t *testing.T) {
	// 4 days and 23 hours after the order timestamp still counts as 4 days.
	now := time.Date(2025, 10, 3, 9, 30, 0, 0, time.UTC)
	svc := NewOrderServiceWithClock(repository.NewOrderRepository(), fixedClock(now))

	order, err := svc.GetOrder("ORD-2025-001")
	require.NoError(t, err)
	assert.Equal(t, 4, order.DaysAgo)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc := NewOrderService(repository.NewOrderRepository())

	_, err := svc.GetOrder("NOPE")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "NOPE", notFound.OrderID)
	assert.Contains(t, err.Error(), "NOPE")
}
