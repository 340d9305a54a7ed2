package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

const (
	constraintActiveSlot = "ux_appointments_active_slot"
	constraintPlateNo    = "ux_vehicles_plate_no"
	constraintOfferName  = "ux_service_offers_name"
	constraintOperator   = "ux_customers_single_operator"
)

const pgUniqueViolation = "23505"

// SQLite reports the indexed columns instead of the index name.
var sqliteUniqueColumns = map[string]string{
	"appointments.slot_date, appointments.slot_time": constraintActiveSlot,
	"vehicles.plate_no":   constraintPlateNo,
	"service_offers.name": constraintOfferName,
	"customers.role":      constraintOperator,
}

// uniqueViolation reports whether err is a unique-constraint failure and, when the
// driver exposes it, which constraint fired.
func uniqueViolation(err error) (constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		columns := strings.TrimPrefix(liteErr.Error(), "UNIQUE constraint failed: ")
		return sqliteUniqueColumns[columns], true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	return "", false
}

// translateWrite maps unique-index failures onto the business error a caller expects.
// fallback is used when the driver does not name the constraint.
func translateWrite(err error, fallback string) error {
	if err == nil {
		return nil
	}

	constraint, ok := uniqueViolation(err)
	if !ok {
		return err
	}

	switch constraint {
	case constraintActiveSlot:
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	case constraintPlateNo:
		return httperr.ErrBusinessf(httperr.CodeDuplicateName, "plate_no")
	case constraintOfferName:
		return httperr.ErrBusinessf(httperr.CodeDuplicateName, "service_name")
	case constraintOperator:
		return httperr.ErrBusinessf(httperr.CodeInvalidState, "an operator account already exists")
	}
	return httperr.ErrBusiness(fallback)
}
