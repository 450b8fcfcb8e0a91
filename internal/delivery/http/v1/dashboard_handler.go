package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(protected *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/seeker", handler.SeekerStats)
		dashboard.GET("/employer", handler.EmployerStats)
	}
}

// SeekerStats godoc
// @Summary      Seeker dashboard stats
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SeekerStats}
// @Failure      403  {object}  response.Response
// @Router       /dashboard/seeker [get]
// @Security     BearerAuth
func (h *DashboardHandler) SeekerStats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.dashboardUC.GetSeekerStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Seeker dashboard", stats)
}

// EmployerStats godoc
// @Summary      Employer dashboard stats
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerStats}
// @Failure      403  {object}  response.Response
// @Router       /dashboard/employer [get]
// @Security     BearerAuth
func (h *DashboardHandler) EmployerStats(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	stats, err := h.dashboardUC.GetEmployerStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer dashboard", stats)
}
