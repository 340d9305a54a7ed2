package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucVehicle "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/vehicle"
)

type VehicleHandler struct {
	register *ucVehicle.RegisterVehicle
	update   *ucVehicle.UpdateVehicle
	listMine *ucVehicle.ListMyVehicles
	listAll  *ucVehicle.ListAllVehicles
	delete   *ucVehicle.DeleteVehicle
}

func NewVehicleHandler(
	register *ucVehicle.RegisterVehicle,
	update *ucVehicle.UpdateVehicle,
	listMine *ucVehicle.ListMyVehicles,
	listAll *ucVehicle.ListAllVehicles,
	del *ucVehicle.DeleteVehicle,
) *VehicleHandler {
	return &VehicleHandler{
		register: register,
		update:   update,
		listMine: listMine,
		listAll:  listAll,
		delete:   del,
	}
}

type VehicleRequest struct {
	Brand   string `json:"brand" binding:"required"`
	Model   string `json:"model" binding:"required"`
	PlateNo string `json:"plate_no" binding:"required"`
}

func (r VehicleRequest) input() ucVehicle.VehicleInput {
	return ucVehicle.VehicleInput{Brand: r.Brand, Model: r.Model, PlateNo: r.PlateNo}
}

func (h *VehicleHandler) Register(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req VehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.register.Execute(c.Request.Context(), actor, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, v)
}

func (h *VehicleHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req VehicleRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.update.Execute(c.Request.Context(), actor, id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, v)
}

func (h *VehicleHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	vs, err := h.listMine.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, vs)
}

func (h *VehicleHandler) ListAll(c *gin.Context) {
	vs, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, vs)
}

func (h *VehicleHandler) Delete(c *gin.Context) {
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
