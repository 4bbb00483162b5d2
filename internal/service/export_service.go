package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/export"
)

// Supported export formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// Exportable report names.
const (
	ExportReportFacultyLoad     = "faculty-load"
	ExportReportRoomUtilization = "room-utilization"
	ExportReportConflicts       = "conflicts"
	ExportReportSchedule        = "schedule"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult is a rendered report ready for download.
type ExportResult struct {
	Payload     []byte
	Filename    string
	ContentType string
}

// ExportService renders the scheduling reports as CSV or PDF downloads.
type ExportService struct {
	reports *ReportService
	csv     csvRenderer
	pdf     pdfRenderer
	title   string
	logger  *zap.Logger
}

// NewExportService constructs an export service.
func NewExportService(reports *ReportService, title string, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if title == "" {
		title = "Schedule Report"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{reports: reports, csv: csv, pdf: pdf, title: title, logger: logger}
}

// Generate renders the named report for a version in the requested format.
func (s *ExportService) Generate(ctx context.Context, report, format, versionID string) (*ExportResult, error) {
	dataset, title, err := s.buildDataset(ctx, report, versionID)
	if err != nil {
		return nil, err
	}

	var payload []byte
	var contentType string
	switch format {
	case ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case ExportFormatPDF:
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	filename := fmt.Sprintf("%s-%s-%s.%s", report, versionID, time.Now().UTC().Format("20060102"), format)
	return &ExportResult{Payload: payload, Filename: filename, ContentType: contentType}, nil
}

func (s *ExportService) buildDataset(ctx context.Context, report, versionID string) (export.Dataset, string, error) {
	switch report {
	case ExportReportFacultyLoad:
		rows, _, err := s.reports.FacultyLoad(ctx, versionID)
		if err != nil {
			return export.Dataset{}, "", err
		}
		return facultyLoadDataset(rows), s.title + " - Faculty Load", nil
	case ExportReportRoomUtilization:
		rows, _, err := s.reports.RoomUtilization(ctx, versionID)
		if err != nil {
			return export.Dataset{}, "", err
		}
		return roomUtilizationDataset(rows), s.title + " - Room Utilization", nil
	case ExportReportConflicts:
		items, _, err := s.reports.Conflicts(ctx, versionID)
		if err != nil {
			return export.Dataset{}, "", err
		}
		return conflictsDataset(items), s.title + " - Conflicts", nil
	case ExportReportSchedule:
		rows, _, err := s.reports.ScheduleRows(ctx, versionID)
		if err != nil {
			return export.Dataset{}, "", err
		}
		return scheduleDataset(rows), s.title + " - Schedule", nil
	default:
		return export.Dataset{}, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown report %q", report))
	}
}

func facultyLoadDataset(rows []dto.FacultyLoadRow) export.Dataset {
	headers := []string{"Faculty", "Classes", "Units", "Hours", "Max Units", "Max Hours", "Status"}
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]string{
			"Faculty":   row.FacultyName,
			"Classes":   strconv.Itoa(row.ClassesCount),
			"Units":     strconv.Itoa(row.TotalUnits),
			"Hours":     strconv.FormatFloat(row.TotalHours, 'f', 2, 64),
			"Max Units": strconv.Itoa(row.MaxUnits),
			"Max Hours": strconv.FormatFloat(row.MaxHours, 'f', 2, 64),
			"Status":    row.Status,
		})
	}
	return export.Dataset{Headers: headers, Rows: out}
}

func roomUtilizationDataset(rows []dto.RoomUtilRow) export.Dataset {
	headers := []string{"Room", "Name", "Used Minutes", "Available Minutes", "Utilization %"}
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]string{
			"Room":              row.RoomCode,
			"Name":              row.RoomName,
			"Used Minutes":      strconv.Itoa(row.UsedMinutes),
			"Available Minutes": strconv.Itoa(row.AvailableMinutes),
			"Utilization %":     strconv.FormatFloat(row.UtilizationPct, 'f', 1, 64),
		})
	}
	return export.Dataset{Headers: headers, Rows: out}
}

func conflictsDataset(items []dto.ConflictItem) export.Dataset {
	headers := []string{"Type", "Day", "Start", "End", "Resource", "Class A", "Class B"}
	out := make([]map[string]string, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]string{
			"Type":     item.Type,
			"Day":      item.DayOfWeek,
			"Start":    item.StartTime,
			"End":      item.EndTime,
			"Resource": item.Resource,
			"Class A":  item.ClassA,
			"Class B":  item.ClassB,
		})
	}
	return export.Dataset{Headers: headers, Rows: out}
}

func scheduleDataset(rows []dto.ScheduleRow) export.Dataset {
	headers := []string{"Section", "Subject", "Title", "Faculty", "Day", "Start", "End", "Room", "Type"}
	out := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]string{
			"Section": row.SectionName,
			"Subject": row.SubjectCode,
			"Title":   row.SubjectTitle,
			"Faculty": row.FacultyName,
			"Day":     row.DayOfWeek,
			"Start":   row.StartTime,
			"End":     row.EndTime,
			"Room":    row.RoomCode,
			"Type":    row.MeetingType,
		})
	}
	return export.Dataset{Headers: headers, Rows: out}
}
