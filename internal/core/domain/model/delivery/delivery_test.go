package delivery_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignedAt = time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)

func newDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Time{}, assignedAt.AddDate(0, 0, 2), assignedAt)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts assigned with an empty route", func(t *testing.T) {
		d := newDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Assigned, d.Status())
		assert.Equal(t, assignedAt, d.PickupDate())
		assert.Zero(t, d.Attempts())
		assert.Empty(t, d.Route())
		assert.Nil(t, d.ActualDelivery())
	})

	t.Run("requires parcel, courier and estimate", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.UUID{}, kernel.UUID{}, assignedAt, time.Time{}, assignedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "parcel")
		assert.Contains(t, err.Error(), "courier")
		assert.Contains(t, err.Error(), "estimatedDelivery")
	})
}

func TestDelivery_ZeroValueIsInvalid(t *testing.T) {
	var d *delivery.Delivery
	require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	require.ErrorIs(t, (&delivery.Delivery{}).Validate(), delivery.ErrDeliveryIsNotConstructed)
}

func TestDelivery_ApplyStatus_Delivered(t *testing.T) {
	d := newDelivery(t)
	at := assignedAt.Add(5 * time.Hour)
	proof := &delivery.Proof{Signature: "sig", RecipientName: "Bo"}

	status, err := d.ApplyStatus(delivery.StatusUpdate{Status: delivery.Delivered, Location: "Front door", Proof: proof}, at)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, status)
	require.NotNil(t, d.ActualDelivery())
	assert.Equal(t, at, *d.ActualDelivery())
	assert.Equal(t, *proof, *d.Proof())
	assert.Equal(t, []delivery.RouteEntry{{Location: "Front door", Status: delivery.Delivered, Timestamp: at}}, d.Route())
	assert.Zero(t, d.Attempts())
}

func TestDelivery_ApplyStatus_RouteDefaults(t *testing.T) {
	d := newDelivery(t)

	_, err := d.ApplyStatus(delivery.StatusUpdate{Status: delivery.PickedUp}, assignedAt)
	require.NoError(t, err)
	_, err = d.ApplyStatus(delivery.StatusUpdate{Status: delivery.InTransit, Location: "Hub"}, assignedAt)
	require.NoError(t, err)

	route := d.Route()
	require.Len(t, route, 2)
	assert.Equal(t, delivery.DefaultLocation, route[0].Location)
	assert.Equal(t, "Hub", route[1].Location)
	assert.Nil(t, d.ActualDelivery())
}

func TestDelivery_ApplyStatus_FailedAttemptsCap(t *testing.T) {
	d := newDelivery(t)

	for i := 1; i <= delivery.MaxAttempts; i++ {
		status, err := d.ApplyStatus(delivery.StatusUpdate{Status: delivery.Failed, Notes: "nobody home"}, assignedAt)
		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, status)
		assert.Equal(t, i, d.Attempts())
		assert.Equal(t, "nobody home", d.FailureReason())
	}

	status, err := d.ApplyStatus(delivery.StatusUpdate{Status: delivery.Failed}, assignedAt)

	require.NoError(t, err)
	assert.Equal(t, delivery.Returned, status)
	assert.Equal(t, delivery.MaxAttempts, d.Attempts())
	assert.Equal(t, "maximum delivery attempts reached", d.FailureReason())
	assert.Len(t, d.Route(), 4)
	assert.Equal(t, delivery.Returned, d.Route()[3].Status)
	assert.Nil(t, d.ActualDelivery())

	_, err = d.ApplyStatus(delivery.StatusUpdate{Status: delivery.InTransit}, assignedAt)
	require.ErrorIs(t, err, delivery.ErrDeliveryIsClosed)
	assert.True(t, errs.IsValidation(err))
}

func TestDelivery_ApplyStatus_Rejects(t *testing.T) {
	d := newDelivery(t)

	_, err := d.ApplyStatus(delivery.StatusUpdate{Status: "teleported"}, assignedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = d.ApplyStatus(delivery.StatusUpdate{Status: delivery.Assigned}, assignedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Empty(t, d.Route())
	assert.Equal(t, delivery.Assigned, d.Status())
}

func TestDelivery_RescheduleAndProof(t *testing.T) {
	d := newDelivery(t)
	later := assignedAt.AddDate(0, 0, 4)

	require.NoError(t, d.Reschedule(time.Time{}, later, assignedAt))
	assert.Equal(t, assignedAt, d.PickupDate())
	assert.Equal(t, later, d.EstimatedDelivery())

	require.ErrorIs(t, d.AttachProof(delivery.Proof{}, assignedAt), errs.ErrValueIsRequired)
	require.NoError(t, d.AttachProof(delivery.Proof{Photo: "p.jpg"}, assignedAt))
	assert.Equal(t, "p.jpg", d.Proof().Photo)
}

func TestRestore(t *testing.T) {
	d := newDelivery(t)

	_, err := delivery.Restore(delivery.State{
		ID:                d.ID(),
		ParcelID:          d.ParcelID(),
		CourierID:         d.CourierID(),
		PickupDate:        d.PickupDate(),
		EstimatedDelivery: d.EstimatedDelivery(),
		Status:            delivery.Failed,
		Attempts:          4,
	})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	restored, err := delivery.Restore(delivery.State{
		ID:                d.ID(),
		ParcelID:          d.ParcelID(),
		CourierID:         d.CourierID(),
		PickupDate:        d.PickupDate(),
		EstimatedDelivery: d.EstimatedDelivery(),
		Status:            delivery.Failed,
		Attempts:          2,
		FailureReason:     "closed",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, restored.Attempts())
	assert.True(t, restored.IsCarriedBy(d.CourierID()))
}
