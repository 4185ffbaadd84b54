package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
	"github.com/noah-isme/school-registry-api/pkg/export"
)

// RosterFormat names a supported roster file type.
type RosterFormat string

const (
	RosterFormatCSV  RosterFormat = "csv"
	RosterFormatPDF  RosterFormat = "pdf"
	RosterFormatXLSX RosterFormat = "xlsx"
)

const rosterTitle = "students"

var rosterHeaders = []string{"national_id", "name", "active", "classes"}

// RosterFile is a rendered roster ready to be served.
type RosterFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type rosterLister interface {
	List(ctx context.Context, pattern string) ([]models.Student, error)
}

type rosterRegistrar interface {
	Register(ctx context.Context, req dto.StudentRequest) (*models.Student, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type titledRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// RosterService exports the student roster to files and imports students from spreadsheets.
type RosterService struct {
	students  rosterLister
	registrar rosterRegistrar
	csv       csvRenderer
	pdf       titledRenderer
	xlsx      titledRenderer
	logger    *zap.Logger
}

// NewRosterService constructs a RosterService over the student service.
func NewRosterService(students *StudentService, logger *zap.Logger) *RosterService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{
		students:  students,
		registrar: students,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		xlsx:      export.NewXLSXExporter(),
		logger:    logger,
	}
}

// Export renders students whose name contains pattern in the requested format.
func (s *RosterService) Export(ctx context.Context, format RosterFormat, pattern string) (*RosterFile, error) {
	students, err := s.students.List(ctx, pattern)
	if err != nil {
		return nil, err
	}
	data := rosterDataset(students)

	var (
		content     []byte
		contentType string
	)
	switch format {
	case RosterFormatCSV, "":
		format = RosterFormatCSV
		content, err = s.csv.Render(data)
		contentType = "text/csv"
	case RosterFormatPDF:
		content, err = s.pdf.Render(data, rosterTitle)
		contentType = "application/pdf"
	case RosterFormatXLSX:
		content, err = s.xlsx.Render(data, rosterTitle)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported format %q", format))
	}
	if err != nil {
		return nil, internalError(err, "failed to render roster")
	}
	return &RosterFile{
		Filename:    fmt.Sprintf("%s.%s", rosterTitle, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

// Import registers every row of the first sheet. Rows need national_id and name columns;
// an optional active column accepts true/false. Rejected and invalid rows are reported, not fatal.
func (s *RosterService) Import(ctx context.Context, r io.Reader) (*models.RosterImportResult, error) {
	data, err := export.ReadXLSX(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable spreadsheet")
	}
	if !hasColumns(data.Headers, "national_id", "name") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "spreadsheet must have national_id and name columns")
	}

	result := &models.RosterImportResult{}
	for i, row := range data.Rows {
		rowNumber := i + 2
		if i < len(data.Lines) {
			rowNumber = data.Lines[i]
		}
		req := dto.StudentRequest{
			NationalID: strings.TrimSpace(row["national_id"]),
			Name:       strings.TrimSpace(row["name"]),
		}
		if raw := strings.TrimSpace(row["active"]); raw != "" {
			active, err := strconv.ParseBool(raw)
			if err != nil {
				result.Failures = append(result.Failures, models.RosterRowError{Row: rowNumber, Message: "active must be true or false"})
				continue
			}
			req.Active = active
		}

		if _, err := s.registrar.Register(ctx, req); err != nil {
			appErr := appErrors.FromError(err)
			if appErr.Status >= 500 {
				return nil, err
			}
			if appErrors.IsRejection(err) {
				result.Rejected++
			}
			result.Failures = append(result.Failures, models.RosterRowError{Row: rowNumber, Message: rowMessage(appErr)})
			continue
		}
		result.Registered++
	}
	s.logger.Info("roster imported",
		zap.Int("registered", result.Registered),
		zap.Int("rejected", result.Rejected),
		zap.Int("failed", len(result.Failures)))
	return result, nil
}

func rosterDataset(students []models.Student) export.Dataset {
	rows := make([]map[string]string, len(students))
	for i, student := range students {
		classes := make([]string, len(student.Enrollments))
		for j, link := range student.Enrollments {
			classes[j] = strconv.FormatInt(link.ClassID, 10)
		}
		rows[i] = map[string]string{
			"national_id": student.NationalID,
			"name":        student.Name,
			"active":      strconv.FormatBool(student.Active),
			"classes":     strings.Join(classes, " "),
		}
	}
	return export.Dataset{Headers: rosterHeaders, Rows: rows}
}

// rowMessage names the first offending field so the report points at a column.
func rowMessage(appErr *appErrors.Error) string {
	if len(appErr.Details) == 0 {
		return appErr.Message
	}
	return fmt.Sprintf("%s: %s", appErr.Message, appErr.Details[0].Message)
}

func hasColumns(headers []string, required ...string) bool {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, col := range required {
		if !present[col] {
			return false
		}
	}
	return true
}
