package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agroregistry-backend/internal/http/response"
	"github.com/yungbote/agroregistry-backend/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	dashboard services.DashboardService
}

func NewDashboardHandler(dashboard services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GET /dashboards
func (h *DashboardHandler) Report(c *gin.Context) {
	report, err := h.dashboard.ComputeReport(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, report)
}

// GET /dashboards/export.xlsx
func (h *DashboardHandler) ExportXLSX(c *gin.Context) {
	out, err := h.dashboard.ExportXLSX(c.Request.Context())
	if err != nil {
		response.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="dashboard.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, out)
}
