package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/service"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

var errImportTooLarge = appErrors.New("FILE_TOO_LARGE", http.StatusRequestEntityTooLarge, "roster file is too large")

type studentService interface {
	List(ctx context.Context, pattern string) ([]models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Student, error)
	Register(ctx context.Context, req dto.StudentRequest) (*models.Student, error)
	Amend(ctx context.Context, id int64, req dto.StudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type rosterService interface {
	Export(ctx context.Context, format service.RosterFormat, pattern string) (*service.RosterFile, error)
	Import(ctx context.Context, r io.Reader) (*models.RosterImportResult, error)
}

// StudentHandler exposes student registration endpoints.
type StudentHandler struct {
	students      studentService
	roster        rosterService
	maxImportSize int64
}

// NewStudentHandler constructs a StudentHandler. maxImportSize bounds roster uploads in bytes.
func NewStudentHandler(students studentService, roster rosterService, maxImportSize int64) *StudentHandler {
	return &StudentHandler{students: students, roster: roster, maxImportSize: maxImportSize}
}

// List godoc
// @Summary List students
// @Tags Students
// @Produce json
// @Param name query string false "Case sensitive name fragment"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.list(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// Get godoc
// @Summary Get student
// @Description Responds with null data when no student has the id.
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, projectStudent(student))
}

// GetByNationalID godoc
// @Summary Find student by national id
// @Tags Students
// @Produce json
// @Param nationalId path string true "National ID"
// @Success 200 {object} response.Envelope
// @Router /students/national-id/{nationalId} [get]
func (h *StudentHandler) GetByNationalID(c *gin.Context) {
	student, err := h.students.GetByNationalID(c.Request.Context(), c.Param("nationalId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, projectStudent(student))
}

// Create godoc
// @Summary Register student
// @Description A duplicate national id answers 200 with the rejection in error and the unchanged list in data.
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.StudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentRequest
	if !bindJSON(c, &req, "student") {
		return
	}
	_, err := h.students.Register(c.Request.Context(), req)
	respondMutation(c, err, h.listAll(c))
}

// Update godoc
// @Summary Amend student
// @Description An active student answers 200 with the rejection in error and the unchanged list in data.
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param payload body dto.StudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.StudentRequest
	if !bindJSON(c, &req, "student") {
		return
	}
	_, err := h.students.Amend(c.Request.Context(), id, req)
	respondMutation(c, err, h.listAll(c))
}

// Delete godoc
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.students.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.listAll(c))
}

// Export godoc
// @Summary Export student roster
// @Tags Students
// @Produce text/csv
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv, pdf or xlsx" default(csv)
// @Param name query string false "Case sensitive name fragment"
// @Success 200 {file} file
// @Router /students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	format := service.RosterFormat(strings.ToLower(c.DefaultQuery("format", string(service.RosterFormatCSV))))
	file, err := h.roster.Export(c.Request.Context(), format, c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// Import godoc
// @Summary Import student roster
// @Description Registers every row of an xlsx sheet with national_id, name and optional active columns.
// @Tags Students
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx roster"
// @Success 200 {object} response.Envelope
// @Router /students/import [post]
func (h *StudentHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "file is required"))
		return
	}
	if h.maxImportSize > 0 && header.Size > h.maxImportSize {
		response.Error(c, errImportTooLarge)
		return
	}
	file, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	result, err := h.roster.Import(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *StudentHandler) list(ctx context.Context, pattern string) ([]dto.StudentResponse, error) {
	students, err := h.students.List(ctx, pattern)
	if err != nil {
		return nil, err
	}
	return dto.StudentsFromModels(students), nil
}

func (h *StudentHandler) listAll(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		return h.list(c.Request.Context(), "")
	}
}

func projectStudent(student *models.Student) interface{} {
	if student == nil {
		return nil
	}
	return dto.StudentFromModel(*student)
}
