package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"pulseboard_app_go/middleware"
	"pulseboard_app_go/models"
	"pulseboard_app_go/services"
	"pulseboard_app_go/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func seedDemoRequest(t *testing.T, database *gorm.DB, name, email, org string) *models.DemoRequest {
	t.Helper()
	svc := services.NewDemoRequestService(database)
	request, err := svc.Create(context.Background(), ui.Fields{
		Name:         name,
		Email:        email,
		Organization: org,
		Message:      "Looking forward to it.",
	}, services.RequestMeta{IPAddress: "127.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	return request
}

func TestAdminDashboardHandler(t *testing.T) {
	database := setupTestDB(t)
	seedDemoRequest(t, database, "Ada Lovelace", "ada@example.com", "Analytical Engines")

	_, c, rec := setupEcho(http.MethodGet, "/admin", nil)
	c.Set(middleware.ContextKeyAdmin, "admin@pulseboard.io")

	err := AdminDashboardHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Analytical Engines")
	assert.Contains(t, body, "admin@pulseboard.io")
}

func TestUpdateDemoRequestStatusHandler(t *testing.T) {
	update := func(t *testing.T, id, status string) (*http.Response, string, error) {
		t.Helper()
		f := url.Values{}
		f.Add("status", status)
		_, c, rec := setupEcho(http.MethodPut, "/api/demo-requests/"+id+"/status", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
		c.SetParamNames("id")
		c.SetParamValues(id)
		err := UpdateDemoRequestStatusHandler(c)
		return rec.Result(), rec.Body.String(), err
	}

	t.Run("Valid transition returns the updated row", func(t *testing.T) {
		database := setupTestDB(t)
		request := seedDemoRequest(t, database, "Grace Hopper", "grace@example.com", "Compilers Inc")

		resp, body, err := update(t, request.ID, models.StatusContacted)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Grace Hopper")

		var reloaded models.DemoRequest
		require.NoError(t, database.First(&reloaded, "id = ?", request.ID).Error)
		assert.Equal(t, models.StatusContacted, reloaded.Status)
		assert.NotNil(t, reloaded.ContactedAt)
	})

	t.Run("Invalid status", func(t *testing.T) {
		database := setupTestDB(t)
		request := seedDemoRequest(t, database, "Grace Hopper", "grace@example.com", "Compilers Inc")

		_, _, err := update(t, request.ID, "bogus")
		assert.Error(t, err)
	})

	t.Run("Unknown id", func(t *testing.T) {
		setupTestDB(t)

		_, _, err := update(t, "11111111-1111-1111-1111-111111111111", models.StatusClosed)
		assert.Error(t, err)
	})

	t.Run("Malformed id", func(t *testing.T) {
		setupTestDB(t)

		_, _, err := update(t, "not-a-uuid", models.StatusClosed)
		assert.Error(t, err)
	})
}

func TestExportDemoRequestsHandler(t *testing.T) {
	database := setupTestDB(t)
	seedDemoRequest(t, database, "Ada Lovelace", "ada@example.com", "Analytical Engines")
	seedDemoRequest(t, database, "Grace Hopper", "grace@example.com", "Compilers Inc")

	_, c, rec := setupEcho(http.MethodGet, "/admin/demo-requests/export", nil)

	err := ExportDemoRequestsHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
}
