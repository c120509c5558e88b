package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"pulseboard_app_go/models"
	"pulseboard_app_go/ui"

	"github.com/microcosm-cc/bluemonday"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// messagePolicy strips all markup from the free-text message field before it
// is stored or rendered anywhere.
var messagePolicy = bluemonday.StrictPolicy()

// SanitizeMessage normalizes the optional message field.
func SanitizeMessage(message string) string {
	return strings.TrimSpace(messagePolicy.Sanitize(message))
}

type DemoRequestService struct {
	DB *gorm.DB
}

func NewDemoRequestService(db *gorm.DB) *DemoRequestService {
	return &DemoRequestService{DB: db}
}

// Create records a submitted demo request.
func (s *DemoRequestService) Create(ctx context.Context, fields ui.Fields, meta RequestMeta) (*models.DemoRequest, error) {
	request := &models.DemoRequest{
		Name:         strings.TrimSpace(fields.Name),
		Email:        strings.TrimSpace(fields.Email),
		Organization: strings.TrimSpace(fields.Organization),
		Message:      SanitizeMessage(fields.Message),
		Status:       models.StatusNew,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
	}

	if err := s.DB.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// List returns demo requests, newest first, optionally filtered by status.
func (s *DemoRequestService) List(status string) ([]models.DemoRequest, error) {
	query := s.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.DemoRequest
	err := query.Find(&requests).Error
	return requests, err
}

// CountByStatus returns how many requests are in the given status.
func (s *DemoRequestService) CountByStatus(status string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.DemoRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// UpdateStatus moves a request through the triage lifecycle.
func (s *DemoRequestService) UpdateStatus(id, status string) error {
	if !models.IsValidStatus(status) {
		return fmt.Errorf("invalid status: %s", status)
	}

	updates := map[string]interface{}{"status": status}
	if status == models.StatusContacted {
		now := time.Now()
		updates["contacted_at"] = &now
	}

	result := s.DB.Model(&models.DemoRequest{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CleanupOld hard-deletes demo requests older than the retention window.
func (s *DemoRequestService) CleanupOld(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.DB.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&models.DemoRequest{})
	return result.RowsAffected, result.Error
}

// exportColumns defines the spreadsheet layout for the admin export.
var exportColumns = []string{"Received", "Name", "Email", "Organization", "Message", "Status", "Contacted"}

// ExportXLSX writes all demo requests as a spreadsheet to w.
func (s *DemoRequestService) ExportXLSX(w io.Writer) error {
	requests, err := s.List("")
	if err != nil {
		return fmt.Errorf("failed to load demo requests: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, request := range requests {
		contacted := ""
		if request.ContactedAt != nil {
			contacted = request.ContactedAt.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			request.CreatedAt.Format("2006-01-02 15:04"),
			request.Name,
			request.Email,
			request.Organization,
			request.Message,
			request.Status,
			contacted,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
