package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type recorder struct {
	records []models.HistoryRecord
	err     error
}

func (r *recorder) AppendHistory(_ context.Context, rec *models.HistoryRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, *rec)
	return nil
}

func TestFormatDetails(t *testing.T) {
	var none *string
	note := "ok"

	got := FormatDetails(
		F("date", "2024-06-20"),
		F("total_cost", 395.0),
		F("message", none),
		F("note", &note),
		F("missing", nil),
		F("position", 2),
	)

	assert.Equal(t,
		"date: 2024-06-20 | total_cost: 395.00 | message: None | note: ok | missing: None | position: 2",
		got,
	)
}

func TestLogAppendsRecord(t *testing.T) {
	at := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	l := New(func() time.Time { return at })
	w := &recorder{}

	actor := uuid.New()
	item := uuid.New()

	err := l.Log(context.Background(), w, actor, ItemAppointmentCanceled, item, F("status", "Pending"))
	require.NoError(t, err)
	require.Len(t, w.records, 1)

	rec := w.records[0]
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, actor, rec.ActorID)
	assert.Equal(t, "Appointment_Canceled", rec.ItemType)
	assert.Equal(t, item, rec.ItemID)
	assert.Equal(t, "status: Pending", rec.Details)
	assert.Equal(t, at, rec.RecordedAt)
}

func TestLogPropagatesWriterError(t *testing.T) {
	boom := errors.New("boom")
	err := New(nil).Log(context.Background(), &recorder{err: boom}, uuid.New(), ItemVehicle, uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestDeletedAppointmentSnapshot(t *testing.T) {
	ap := &models.Appointment{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		SlotDate: "2024-06-20",
		SlotTime: "08:00",
		Status:   "Completed",
		Customer: models.Customer{FullName: "Ana Reyes"},
		Vehicle:  models.Vehicle{PlateNo: "ABC 1234"},
		LineItems: []models.AppointmentLineItem{
			{ServiceName: "Oil Change", LaborRate: 145},
			{ServiceName: "Tire Services", LaborRate: 250},
		},
	}

	assert.Equal(t,
		"appointment_id: 11111111-1111-1111-1111-111111111111 | date: 2024-06-20 | time: 08:00 | "+
			"status: Completed | customer: Ana Reyes | plate_no: ABC 1234 | total_cost: 395.00",
		FormatDetails(DeletedAppointmentSnapshot(ap)...),
	)
}
