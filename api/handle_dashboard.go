package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/driveline/rental-backend/dto"
	"github.com/driveline/rental-backend/usecases"
)

func handleGetDashboard(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewDashboardUsecase()
		stats, err := usecase.GetDashboard(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"dashboard": dto.AdaptDashboardStatsDto(stats)})
	}
}
