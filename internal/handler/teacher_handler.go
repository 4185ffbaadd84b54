package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type teacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Get(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, req dto.TeacherRequest) (*models.Teacher, error)
	Update(ctx context.Context, id int64, req dto.TeacherRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// TeacherHandler exposes teacher endpoints.
type TeacherHandler struct {
	svc teacherService
}

// NewTeacherHandler constructs a TeacherHandler.
func NewTeacherHandler(svc teacherService) *TeacherHandler {
	return &TeacherHandler{svc: svc}
}

// List godoc
// @Summary List teachers
// @Tags Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *TeacherHandler) List(c *gin.Context) {
	data, err := h.list(c)()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// Get godoc
// @Summary Get teacher
// @Tags Teachers
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [get]
func (h *TeacherHandler) Get(c *gin.Context) {
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
	response.OK(c, dto.TeacherFromModel(*item))
}

// Create godoc
// @Summary Create teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param payload body dto.TeacherRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /teachers [post]
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.TeacherRequest
	if !bindJSON(c, &req, "teacher") {
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req)
	respondMutation(c, err, h.list(c))
}

// Update godoc
// @Summary Replace teacher
// @Tags Teachers
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body dto.TeacherRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [put]
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.TeacherRequest
	if !bindJSON(c, &req, "teacher") {
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, req)
	respondMutation(c, err, h.list(c))
}

// Delete godoc
// @Summary Delete teacher
// @Tags Teachers
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.list(c))
}

func (h *TeacherHandler) list(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		items, err := h.svc.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.TeachersFromModels(items), nil
	}
}
