package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type ItemType string

const (
	ItemVehicle             ItemType = "Vehicle"
	ItemAppointment         ItemType = "Appointment"
	ItemAppointmentCanceled ItemType = "Appointment_Canceled"
	ItemServiceOffer        ItemType = "Service Offer"
)

// Field is one key of an entity snapshot; order is preserved in the output.
type Field struct {
	Key   string
	Value any
}

func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// FormatDetails renders fields as "key: value | key: value".
func FormatDetails(fields ...Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Key+": "+formatValue(f.Value))
	}
	return strings.Join(parts, " | ")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case float64:
		return fmt.Sprintf("%.2f", val)
	case *string:
		if val == nil {
			return "None"
		}
		return *val
	default:
		return fmt.Sprint(val)
	}
}

// Writer appends within whatever transaction the caller holds.
type Writer interface {
	AppendHistory(ctx context.Context, rec *models.HistoryRecord) error
}

type Logger struct {
	now func() time.Time
}

func New(now func() time.Time) *Logger {
	if now == nil {
		now = time.Now
	}
	return &Logger{now: now}
}

func (l *Logger) Log(
	ctx context.Context,
	w Writer,
	actorID uuid.UUID,
	itemType ItemType,
	itemID uuid.UUID,
	fields ...Field,
) error {

	rec := models.HistoryRecord{
		ID:         uuid.New(),
		ActorID:    actorID,
		ItemType:   string(itemType),
		ItemID:     itemID,
		Details:    FormatDetails(fields...),
		RecordedAt: l.now(),
	}

	return w.AppendHistory(ctx, &rec)
}
