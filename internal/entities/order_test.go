package entities_test

import (
	"testing"

	"github.com/shopcore/order-placement-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{entities.StatusPending, entities.StatusPaid, true},
		{entities.StatusPending, entities.StatusPaymentFailed, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPending, entities.StatusCompleted, false},
		{entities.StatusPaid, entities.StatusCompleted, true},
		{entities.StatusPaid, entities.StatusCancelled, true},
		{entities.StatusPaid, entities.StatusPending, false},
		{entities.StatusCompleted, entities.StatusCancelled, false},
		{entities.StatusCancelled, entities.StatusPaid, false},
		{entities.StatusPaymentFailed, entities.StatusPaid, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []entities.OrderStatus{
		entities.StatusPending,
		entities.StatusPaid,
		entities.StatusPaymentFailed,
		entities.StatusCompleted,
		entities.StatusCancelled,
	} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, entities.OrderStatus("SHIPPED").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

func TestOrder_MarshalRoundTrip(t *testing.T) {
	order := entities.Order{
		OrderID:     "order-123",
		UserID:      42,
		Status:      entities.StatusPending,
		TotalAmount: 4800,
		Lines: []entities.OrderLine{
			{LineID: "l1", ProductID: 1, Quantity: 4, UnitPrice: 1200},
		},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, order, got)

	var broken entities.Order
	assert.ErrorIs(t, broken.Unmarshal([]byte("garbage")), entities.ErrInvalidOrder)
}

func TestOrderLine_Total(t *testing.T) {
	line := entities.OrderLine{Quantity: 4, UnitPrice: 1200}
	assert.Equal(t, 4800, line.Total())
}
