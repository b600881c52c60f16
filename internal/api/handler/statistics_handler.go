package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/service"
)

type StatisticsHandler struct {
	dashboardService service.DashboardService
}

func NewStatisticsHandler(dashboardService service.DashboardService) *StatisticsHandler {
	return &StatisticsHandler{
		dashboardService: dashboardService,
	}
}

// Overview 全站统计
// @Summary 全站统计概览
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.Response{data=dto.DashboardStatistics}
// @Router /api/statistics [get]
func (h *StatisticsHandler) Overview(c *gin.Context) {
	stats, err := h.dashboardService.Overview()
	respond(c, stats, err)
}
