package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		r := Reservation{Status: tc.from}
		err := r.UpdateStatus(nil, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.to, r.Status)
		} else {
			assert.Error(t, err, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.from, r.Status)
		}
	}
}

func TestReservationIsActive(t *testing.T) {
	assert.True(t, Reservation{Status: StatusPending}.IsActive())
	assert.True(t, Reservation{Status: StatusConfirmed}.IsActive())
	assert.False(t, Reservation{Status: StatusCancelled}.IsActive())
	assert.False(t, Reservation{Status: StatusCompleted}.IsActive())
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPlaced, OrderPreparing, true},
		{OrderPlaced, OrderCancelled, true},
		{OrderPlaced, OrderServed, false},
		{OrderPreparing, OrderServed, true},
		{OrderPreparing, OrderCancelled, true},
		{OrderServed, OrderPreparing, false},
		{OrderCancelled, OrderPlaced, false},
	}

	for _, tc := range cases {
		o := Order{Status: tc.from}
		err := o.UpdateStatus(nil, tc.to)
		if tc.allowed {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			assert.Error(t, err, "%s -> %s", tc.from, tc.to)
		}
	}
}
