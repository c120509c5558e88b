package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"pulseboard_app_go/db"
	"pulseboard_app_go/middleware"
	"pulseboard_app_go/models"
	"pulseboard_app_go/services"
	"pulseboard_app_go/templates/pages"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// AdminDashboardHandler renders the demo request queue.
func AdminDashboardHandler(c echo.Context) error {
	svc := services.NewDemoRequestService(db.DB)

	status := c.QueryParam("status")
	requests, err := svc.List(status)
	if err != nil {
		log.Printf("Error listing demo requests: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load demo requests")
	}

	counts := make(map[string]int64, 3)
	for _, s := range []string{models.StatusNew, models.StatusContacted, models.StatusClosed} {
		n, err := svc.CountByStatus(s)
		if err != nil {
			log.Printf("Error counting demo requests: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load demo requests")
		}
		counts[s] = n
	}

	return render(c, http.StatusOK, pages.AdminDashboard(middleware.GetAdminEmail(c), requests, counts))
}

// UpdateDemoRequestStatusHandler changes one request's status and returns
// the updated row for an in-place swap.
func UpdateDemoRequestStatusHandler(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request id")
	}

	status := c.FormValue("status")
	if !models.IsValidStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status")
	}

	svc := services.NewDemoRequestService(db.DB)
	if err := svc.UpdateStatus(id, status); err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Demo request not found")
		}
		log.Printf("Error updating demo request %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update demo request")
	}

	var request models.DemoRequest
	if err := db.DB.First(&request, "id = ?", id).Error; err != nil {
		log.Printf("Error reloading demo request %s: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load demo request")
	}
	return render(c, http.StatusOK, pages.AdminRequestRow(request))
}

// ExportDemoRequestsHandler streams the queue as an .xlsx workbook.
func ExportDemoRequestsHandler(c echo.Context) error {
	filename := fmt.Sprintf("demo-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	svc := services.NewDemoRequestService(db.DB)
	if err := svc.ExportXLSX(c.Response().Writer); err != nil {
		log.Printf("Error exporting demo requests: %v", err)
		return err
	}
	return nil
}
