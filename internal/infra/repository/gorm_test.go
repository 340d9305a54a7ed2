package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/autoshop-scheduler/internal/db"
	domain "github.com/BruksfildServices01/autoshop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), dbpkg.GormConfig(""))
	require.NoError(t, err)

	return db, mock
}

func TestCatalogGorm_GetOffer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogGormRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "labor_rate", "created_at", "updated_at"}).
			AddRow(id.String(), "Oil Change", 145.0, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "service_offers" WHERE id = \$1`).
			WillReturnRows(rows)

		offer, err := repo.GetOffer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, offer.ID)
		assert.Equal(t, "Oil Change", offer.Name)
		assert.Equal(t, 145.0, offer.LaborRate)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "service_offers" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetOffer(ctx, id)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogGorm_ListOffersOrdersByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogGormRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "labor_rate"}).
		AddRow(uuid.NewString(), "Battery Services", 450.0).
		AddRow(uuid.NewString(), "Oil Change", 145.0)

	mock.ExpectQuery(`SELECT \* FROM "service_offers" ORDER BY name ASC`).
		WillReturnRows(rows)

	offers, err := repo.ListOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Battery Services", offers[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogGorm_UpdateOffer(t *testing.T) {
	ctx := context.Background()
	offer := &models.ServiceOffer{ID: uuid.New(), Name: "Oil Change", LaborRate: 160}

	t.Run("NoRows", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "service_offers" SET .* WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := NewCatalogGormRepository(db).UpdateOffer(ctx, offer)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "service_offers" SET`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: constraintOfferName})
		mock.ExpectRollback()

		err := NewCatalogGormRepository(db).UpdateOffer(ctx, offer)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateName), "got %v", err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAppointmentGorm_CountActiveAtSlotLocks(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)
	self := uuid.New()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString())

	mock.ExpectQuery(`SELECT .*id.* FROM "appointments" WHERE .*slot_date = \$1 AND slot_time = \$2.*id <> \$\d+ FOR UPDATE`).
		WillReturnRows(rows)

	n, err := repo.CountActiveAtSlot(context.Background(), domain.Slot{Date: "2024-06-20", Time: "08:00"}, &self)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranslateWrite(t *testing.T) {
	plain := errors.New("boom")

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"ActiveSlot", &pgconn.PgError{Code: "23505", ConstraintName: constraintActiveSlot}, httperr.CodeSlotConflict},
		{"Plate", &pgconn.PgError{Code: "23505", ConstraintName: constraintPlateNo}, httperr.CodeDuplicateName},
		{"OfferName", &pgconn.PgError{Code: "23505", ConstraintName: constraintOfferName}, httperr.CodeDuplicateName},
		{"Operator", &pgconn.PgError{Code: "23505", ConstraintName: constraintOperator}, httperr.CodeInvalidState},
		{"Wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraintPlateNo}), httperr.CodeDuplicateName},
		{"UnnamedFallsBack", gorm.ErrDuplicatedKey, httperr.CodeSlotConflict},
		{"SQLiteUnnamedFallsBack", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, httperr.CodeSlotConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateWrite(tt.err, httperr.CodeSlotConflict)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}

	assert.NoError(t, translateWrite(nil, httperr.CodeSlotConflict))
	assert.Same(t, plain, translateWrite(plain, httperr.CodeSlotConflict))

	fk := &pgconn.PgError{Code: "23503"}
	assert.Same(t, fk, translateWrite(fk, httperr.CodeSlotConflict))
}

func TestUniqueViolationNamesConstraint(t *testing.T) {
	name, ok := uniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraintPlateNo}))
	assert.True(t, ok)
	assert.Equal(t, constraintPlateNo, name)

	name, ok = uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, name)

	_, ok = uniqueViolation(&pgconn.PgError{Code: "23503"})
	assert.False(t, ok)

	_, ok = uniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})
	assert.False(t, ok)
}
