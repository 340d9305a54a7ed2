package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/catalog"
)

type ServiceOfferHandler struct {
	list   *ucCatalog.ListServiceOffers
	add    *ucCatalog.AddServiceOffer
	update *ucCatalog.UpdateServiceOffer
	delete *ucCatalog.DeleteServiceOffer
}

func NewServiceOfferHandler(
	list *ucCatalog.ListServiceOffers,
	add *ucCatalog.AddServiceOffer,
	update *ucCatalog.UpdateServiceOffer,
	del *ucCatalog.DeleteServiceOffer,
) *ServiceOfferHandler {
	return &ServiceOfferHandler{list: list, add: add, update: update, delete: del}
}

// --------- Requests ---------

type ServiceOfferRequest struct {
	Name      string   `json:"name" binding:"required"`
	LaborRate *float64 `json:"labor_rate" binding:"required"`
}

// --------- Handlers ---------

func (h *ServiceOfferHandler) List(c *gin.Context) {
	offers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, offers)
}

func (h *ServiceOfferHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req ServiceOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	offer, err := h.add.Execute(c.Request.Context(), actor, req.Name, *req.LaborRate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, offer)
}

func (h *ServiceOfferHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ServiceOfferRequest
	if !bindJSON(c, &req) {
		return
	}

	offer, err := h.update.Execute(c.Request.Context(), actor, id, req.Name, *req.LaborRate)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, offer)
}

func (h *ServiceOfferHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
