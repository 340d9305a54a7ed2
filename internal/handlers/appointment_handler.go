package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	setStatus    *ucAppointment.SetAppointmentStatus
	cancel       *ucAppointment.CancelAppointment
	delete       *ucAppointment.DeleteAppointment
	reschedule   *ucAppointment.RescheduleAppointment
	invoice      *ucAppointment.InvoiceFor
	listMine     *ucAppointment.ListCustomerAppointments
	listAll      *ucAppointment.ListAppointments
	upcoming     *ucAppointment.GetUpcomingAppointment
	latestStatus *ucAppointment.GetLatestStatusMessage
	availability *ucAppointment.GetAvailability
}

type AppointmentUseCases struct {
	Book         *ucAppointment.BookAppointment
	SetStatus    *ucAppointment.SetAppointmentStatus
	Cancel       *ucAppointment.CancelAppointment
	Delete       *ucAppointment.DeleteAppointment
	Reschedule   *ucAppointment.RescheduleAppointment
	Invoice      *ucAppointment.InvoiceFor
	ListMine     *ucAppointment.ListCustomerAppointments
	ListAll      *ucAppointment.ListAppointments
	Upcoming     *ucAppointment.GetUpcomingAppointment
	LatestStatus *ucAppointment.GetLatestStatusMessage
	Availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(uc AppointmentUseCases) *AppointmentHandler {
	return &AppointmentHandler{
		book:         uc.Book,
		setStatus:    uc.SetStatus,
		cancel:       uc.Cancel,
		delete:       uc.Delete,
		reschedule:   uc.Reschedule,
		invoice:      uc.Invoice,
		listMine:     uc.ListMine,
		listAll:      uc.ListAll,
		upcoming:     uc.Upcoming,
		latestStatus: uc.LatestStatus,
		availability: uc.Availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	VehicleID  uuid.UUID   `json:"vehicle_id" binding:"required"`
	ServiceIDs []uuid.UUID `json:"service_ids"`
	Date       string      `json:"date" binding:"required"`
	Time       string      `json:"time" binding:"required"`
}

type SetStatusRequest struct {
	Status      string `json:"status" binding:"required"`
	DisplayName string `json:"display_name"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Actor:      actor,
		VehicleID:  req.VehicleID,
		ServiceIDs: req.ServiceIDs,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	list, err := h.listMine.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		Actor:         actor,
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	up, err := h.upcoming.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"upcoming": up})
}

func (h *AppointmentHandler) LatestStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	msg, err := h.latestStatus.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"latest": msg})
}

// ======================================================
// SHARED
// ======================================================

// Delete takes an optional ?status= guard against deleting a row that changed meanwhile.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	err := h.delete.Execute(c.Request.Context(), ucAppointment.DeleteAppointmentInput{
		Actor:          actor,
		AppointmentID:  id,
		ExpectedStatus: c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AppointmentHandler) Invoice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	inv, err := h.invoice.Execute(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, inv)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidDateTime, "Date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// OPERATOR
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	list, err := h.listAll.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), ucAppointment.SetAppointmentStatusInput{
		AppointmentID: id,
		Status:        req.Status,
		DisplayName:   req.DisplayName,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}
