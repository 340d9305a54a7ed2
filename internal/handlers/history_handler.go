package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucHistory "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/history"
)

// ======================================================
// HANDLER
// ======================================================

type HistoryHandler struct {
	list *ucHistory.ListHistory
}

func NewHistoryHandler(list *ucHistory.ListHistory) *HistoryHandler {
	return &HistoryHandler{list: list}
}

func (h *HistoryHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(ucHistory.DefaultLimit)))

	out, err := h.list.Execute(c.Request.Context(), ucHistory.ListHistoryInput{
		Actor:    actor,
		ItemType: c.Query("item_type"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, out.Entries, out.Page, out.Limit, out.Total)
}
