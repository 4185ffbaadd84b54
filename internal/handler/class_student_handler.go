package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type classStudentService interface {
	List(ctx context.Context) ([]models.ClassStudentDetail, error)
	Get(ctx context.Context, id int64) (*models.ClassStudentDetail, error)
	Create(ctx context.Context, req dto.ClassStudentRequest) (*models.ClassStudent, error)
	Update(ctx context.Context, id int64, req dto.ClassStudentRequest) (*models.ClassStudent, error)
	Delete(ctx context.Context, id int64) error
}

// ClassStudentHandler exposes class student link endpoints.
type ClassStudentHandler struct {
	svc classStudentService
}

// NewClassStudentHandler constructs a ClassStudentHandler.
func NewClassStudentHandler(svc classStudentService) *ClassStudentHandler {
	return &ClassStudentHandler{svc: svc}
}

// List godoc
// @Summary List class student links
// @Tags Class Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /class-students [get]
func (h *ClassStudentHandler) List(c *gin.Context) {
	data, err := h.list(c)()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// Get godoc
// @Summary Get class student link
// @Tags Class Students
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /class-students/{id} [get]
func (h *ClassStudentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if item == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, dto.ClassStudentFromDetail(*item))
}

// Create godoc
// @Summary Create class student link
// @Tags Class Students
// @Accept json
// @Produce json
// @Param payload body dto.ClassStudentRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /class-students [post]
func (h *ClassStudentHandler) Create(c *gin.Context) {
	var req dto.ClassStudentRequest
	if !bindJSON(c, &req, "class student link") {
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req)
	respondMutation(c, err, h.list(c))
}

// Update godoc
// @Summary Replace class student link
// @Tags Class Students
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body dto.ClassStudentRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Router /class-students/{id} [put]
func (h *ClassStudentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ClassStudentRequest
	if !bindJSON(c, &req, "class student link") {
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, req)
	respondMutation(c, err, h.list(c))
}

// Delete godoc
// @Summary Delete class student link
// @Tags Class Students
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /class-students/{id} [delete]
func (h *ClassStudentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.list(c))
}

func (h *ClassStudentHandler) list(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		items, err := h.svc.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.ClassStudentsFromDetails(items), nil
	}
}
