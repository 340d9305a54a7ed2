package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/httpresp"
	ucReport "github.com/BruksfildServices01/autoshop-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	summary   *ucReport.GetSummary
	dashboard *ucReport.GetCustomerDashboard
}

func NewReportHandler(
	summary *ucReport.GetSummary,
	dashboard *ucReport.GetCustomerDashboard,
) *ReportHandler {
	return &ReportHandler{summary: summary, dashboard: dashboard}
}

func (h *ReportHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context(), actor)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
