package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/audit"
	dbpkg "github.com/BruksfildServices01/autoshop-scheduler/internal/db"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/history"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/appointment"
)

var shopNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.FixedZone("PHT", 8*60*60))

type fixture struct {
	ctx   context.Context
	store *repository.Store
	repo  *repository.AppointmentGormRepository
	clock timezone.Clock
	audit *audit.Logger

	operator identity.Actor
	ana      identity.Actor
	ben      identity.Actor

	anaVehicle uuid.UUID
	benVehicle uuid.UUID

	offers map[string]models.ServiceOffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	store := openStore(t)

	f := &fixture{
		ctx:      ctx,
		store:    store,
		repo:     store.Appointments(),
		clock:    timezone.Fixed(shopNow),
		audit:    audit.New(timezone.Fixed(shopNow)),
		operator: identity.Operator(uuid.New()),
		ana:      identity.Customer(uuid.New()),
		ben:      identity.Customer(uuid.New()),
		offers:   map[string]models.ServiceOffer{},
	}

	require.NoError(t, store.Seed(
		models.Customer{ID: f.operator.ID, FullName: "Shop Operator"},
		catalog.DefaultOffers(),
	))

	customers := store.Customers()
	require.NoError(t, customers.CreateCustomer(ctx, &models.Customer{ID: f.ana.ID, FullName: "Ana Reyes", Phone: "09171234567"}))
	require.NoError(t, customers.CreateCustomer(ctx, &models.Customer{ID: f.ben.ID, FullName: "Ben Cruz", Phone: "09181234567"}))

	f.anaVehicle = f.addVehicle(t, f.ana.ID, "ABC 1234")
	f.benVehicle = f.addVehicle(t, f.ben.ID, "XYZ 9876")

	offers, err := store.Catalog().ListOffers(ctx)
	require.NoError(t, err)
	for _, o := range offers {
		f.offers[o.Name] = o
	}

	return f
}

func (f *fixture) addVehicle(t *testing.T, owner uuid.UUID, plate string) uuid.UUID {
	t.Helper()
	v := &models.Vehicle{
		ID:         uuid.New(),
		CustomerID: owner,
		Brand:      "Toyota",
		Model:      "Vios",
		PlateNo:    plate,
	}
	require.NoError(t, f.store.Vehicles().CreateVehicle(f.ctx, v))
	return v.ID
}

func (f *fixture) offerID(name string) uuid.UUID {
	return f.offers[name].ID
}

func (f *fixture) bookAs(actor identity.Actor, vehicleID uuid.UUID, date, tm string, services ...uuid.UUID) (*models.Appointment, error) {
	return ucAppointment.NewBookAppointment(f.repo, f.clock).Execute(f.ctx, ucAppointment.BookAppointmentInput{
		Actor:      actor,
		VehicleID:  vehicleID,
		ServiceIDs: services,
		Date:       date,
		Time:       tm,
	})
}

// book is Ana booking an oil change.
func (f *fixture) book(t *testing.T, date, tm string) *models.Appointment {
	t.Helper()
	ap, err := f.bookAs(f.ana, f.anaVehicle, date, tm, f.offerID("Oil Change"))
	require.NoError(t, err)
	return ap
}

func (f *fixture) history(t *testing.T) []history.Entry {
	t.Helper()
	entries, _, err := f.store.History().ListHistory(f.ctx, history.Filter{})
	require.NoError(t, err)
	return entries
}

func (f *fixture) setStatus(t *testing.T, id uuid.UUID, status string) *models.Appointment {
	t.Helper()
	ap, err := ucAppointment.NewSetAppointmentStatus(f.repo).Execute(f.ctx, ucAppointment.SetAppointmentStatusInput{
		AppointmentID: id,
		Status:        status,
	})
	require.NoError(t, err)
	return ap
}

func openStore(t *testing.T) *repository.Store {
	t.Helper()
	db, err := dbpkg.OpenMemory("")
	require.NoError(t, err)
	return repository.NewStore(db)
}
