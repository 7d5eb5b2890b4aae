package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AmrIbrahim41/smart-shop0/models"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		assert.True(t, models.ValidOrderStatus(s), "%s", s)
	}
	assert.False(t, models.ValidOrderStatus("Refunded"))
	assert.False(t, models.ValidOrderStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusProcessing, true},
		{models.OrderStatusPending, models.OrderStatusShipped, true},
		{models.OrderStatusPending, models.OrderStatusDelivered, true},
		{models.OrderStatusProcessing, models.OrderStatusShipped, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},

		// no backward moves
		{models.OrderStatusProcessing, models.OrderStatusPending, false},
		{models.OrderStatusShipped, models.OrderStatusProcessing, false},
		{models.OrderStatusDelivered, models.OrderStatusShipped, false},

		// no self moves
		{models.OrderStatusPending, models.OrderStatusPending, false},
		{models.OrderStatusShipped, models.OrderStatusShipped, false},

		// cancel from any non-terminal state
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, true},

		// terminal states stay terminal
		{models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusProcessing, false},
		{models.OrderStatusCancelled, models.OrderStatusCancelled, false},

		// unknown statuses never transition
		{"Refunded", models.OrderStatusShipped, false},
		{models.OrderStatusPending, "Refunded", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, models.CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
