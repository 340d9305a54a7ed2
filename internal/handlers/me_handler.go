package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucCustomer "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/customer"
)

type MeHandler struct {
	get  *ucCustomer.GetProfile
	save *ucCustomer.SaveProfile
	list *ucCustomer.ListCustomers
}

func NewMeHandler(
	get *ucCustomer.GetProfile,
	save *ucCustomer.SaveProfile,
	list *ucCustomer.ListCustomers,
) *MeHandler {
	return &MeHandler{get: get, save: save, list: list}
}

type ProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	customer, err := h.get.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, customer)
}

func (h *MeHandler) SaveMe(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.save.Execute(c.Request.Context(), actor, ucCustomer.ProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, customer)
}

func (h *MeHandler) ListCustomers(c *gin.Context) {
	customers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, customers)
}
