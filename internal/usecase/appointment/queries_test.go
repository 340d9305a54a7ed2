package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	ucAppointment "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/catalog"
)

func TestInvoiceIgnoresLaterCatalogEdits(t *testing.T) {
	f := newFixture(t)

	ap, err := f.bookAs(f.ana, f.anaVehicle, "2024-06-20", "08:00",
		f.offerID("Oil Change"), f.offerID("Tire Services"))
	require.NoError(t, err)

	uc := ucAppointment.NewInvoiceFor(f.repo)

	inv, err := uc.Execute(f.ctx, f.ana, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 395.0, inv.TotalLaborCost)
	require.Len(t, inv.Services, 2)
	assert.Equal(t, "Oil Change", inv.Services[0].ServiceName)
	assert.Equal(t, 145.0, inv.Services[0].LaborRate)
	assert.Equal(t, "ABC 1234", inv.PlateNo)
	assert.Equal(t, "Ana Reyes", inv.CustomerName)

	_, err = ucCatalog.NewUpdateServiceOffer(f.store.Catalog(), nil).
		Execute(f.ctx, f.operator, f.offerID("Oil Change"), "Premium Oil Change", 999)
	require.NoError(t, err)
	require.NoError(t, ucCatalog.NewDeleteServiceOffer(f.store.Catalog(), nil, f.audit).
		Execute(f.ctx, f.operator, f.offerID("Tire Services")))

	inv, err = uc.Execute(f.ctx, f.operator, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 395.0, inv.TotalLaborCost)
	assert.Equal(t, "Oil Change", inv.Services[0].ServiceName)

	_, err = uc.Execute(f.ctx, f.ben, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeUnauthorized))
}

func TestListCustomerAppointments(t *testing.T) {
	f := newFixture(t)
	early := f.book(t, "2024-06-20", "08:00")
	late := f.book(t, "2024-06-21", "08:00")
	_, err := f.bookAs(f.ben, f.benVehicle, "2024-06-22", "08:00", f.offerID("Oil Change"))
	require.NoError(t, err)

	_, err = ucAppointment.NewCancelAppointment(f.repo, f.audit).Execute(f.ctx, f.ana, early.ID)
	require.NoError(t, err)

	list, err := ucAppointment.NewListCustomerAppointments(f.repo).Execute(f.ctx, f.ana)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, late.ID, list[0].ID)
	assert.Equal(t, early.ID, list[1].ID)
	assert.True(t, list[1].IsDeleted)
	assert.Equal(t, []string{"Oil Change"}, list[0].Services)
	assert.Equal(t, 145.0, list[0].TotalCost)
}

func TestListAppointmentsFilters(t *testing.T) {
	f := newFixture(t)
	a := f.book(t, "2024-06-20", "08:00")
	f.book(t, "2024-06-21", "08:00")
	f.setStatus(t, a.ID, "Approved")

	uc := ucAppointment.NewListAppointments(f.repo)

	all, err := uc.Execute(f.ctx, ucAppointment.ListAppointmentsInput{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := uc.Execute(f.ctx, ucAppointment.ListAppointmentsInput{Status: "Approved"})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, a.ID, approved[0].ID)

	byDate, err := uc.Execute(f.ctx, ucAppointment.ListAppointmentsInput{Date: "2024-06-21"})
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	_, err = uc.Execute(f.ctx, ucAppointment.ListAppointmentsInput{Status: "Lost"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidRequest))
}

func TestUpcoming(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewGetUpcomingAppointment(f.repo, f.clock)

	none, err := uc.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	assert.Nil(t, none)

	far := f.book(t, "2024-06-25", "08:00")
	near := f.book(t, "2024-06-15", "15:00")
	f.setStatus(t, far.ID, "Approved")

	up, err := uc.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	require.NotNil(t, up)
	assert.Equal(t, near.ID, up.ID)
	assert.Equal(t, "ABC 1234", up.PlateNo)

	f.setStatus(t, near.ID, "Rejected")
	up, err = uc.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	assert.Equal(t, far.ID, up.ID)

	later := ucAppointment.NewGetUpcomingAppointment(f.repo, func() time.Time {
		return shopNow.AddDate(0, 0, 30)
	})
	up, err = later.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	assert.Nil(t, up)
}

func TestLatestStatusMessage(t *testing.T) {
	f := newFixture(t)
	uc := ucAppointment.NewGetLatestStatusMessage(f.repo)

	first := f.book(t, "2024-06-20", "08:00")
	msg, err := uc.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	assert.Nil(t, msg)

	f.setStatus(t, first.ID, "Approved")
	second := f.book(t, "2024-06-19", "08:00")
	f.setStatus(t, second.ID, "Rejected")

	msg, err = uc.Execute(f.ctx, f.ana)
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Equal(t, "Rejected", msg.Status)
	assert.Contains(t, *msg.Message, "please reschedule")
}

func TestAvailability(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2024-06-20", "08:00")
	canceled := f.book(t, "2024-06-20", "09:00")
	_, err := ucAppointment.NewCancelAppointment(f.repo, f.audit).Execute(f.ctx, f.ana, canceled.ID)
	require.NoError(t, err)

	slots, err := ucAppointment.NewGetAvailability(f.repo, time.Hour, f.clock).Execute(f.ctx, "2024-06-20")
	require.NoError(t, err)

	times := map[string]bool{}
	for _, s := range slots {
		times[s.Time] = true
	}
	assert.Len(t, slots, 11)
	assert.False(t, times["08:00"])
	assert.True(t, times["09:00"])

	_, err = ucAppointment.NewGetAvailability(f.repo, time.Hour, f.clock).Execute(f.ctx, "June 20")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDateTime))
}
