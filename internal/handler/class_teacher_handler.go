package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type classTeacherService interface {
	List(ctx context.Context) ([]models.ClassTeacherDetail, error)
	Get(ctx context.Context, id int64) (*models.ClassTeacherDetail, error)
	Create(ctx context.Context, req dto.ClassTeacherRequest) (*models.ClassTeacher, error)
	Update(ctx context.Context, id int64, req dto.ClassTeacherRequest) (*models.ClassTeacher, error)
	Delete(ctx context.Context, id int64) error
}

// ClassTeacherHandler exposes class teacher link endpoints.
type ClassTeacherHandler struct {
	svc classTeacherService
}

// NewClassTeacherHandler constructs a ClassTeacherHandler.
func NewClassTeacherHandler(svc classTeacherService) *ClassTeacherHandler {
	return &ClassTeacherHandler{svc: svc}
}

// List godoc
// @Summary List class teacher links
// @Tags Class Teachers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /class-teachers [get]
func (h *ClassTeacherHandler) List(c *gin.Context) {
	data, err := h.list(c)()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// Get godoc
// @Summary Get class teacher link
// @Tags Class Teachers
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /class-teachers/{id} [get]
func (h *ClassTeacherHandler) Get(c *gin.Context) {
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
	response.OK(c, dto.ClassTeacherFromDetail(*item))
}

// Create godoc
// @Summary Create class teacher link
// @Tags Class Teachers
// @Accept json
// @Produce json
// @Param payload body dto.ClassTeacherRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /class-teachers [post]
func (h *ClassTeacherHandler) Create(c *gin.Context) {
	var req dto.ClassTeacherRequest
	if !bindJSON(c, &req, "class teacher link") {
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req)
	respondMutation(c, err, h.list(c))
}

// Update godoc
// @Summary Replace class teacher link
// @Tags Class Teachers
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body dto.ClassTeacherRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Router /class-teachers/{id} [put]
func (h *ClassTeacherHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ClassTeacherRequest
	if !bindJSON(c, &req, "class teacher link") {
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, req)
	respondMutation(c, err, h.list(c))
}

// Delete godoc
// @Summary Delete class teacher link
// @Tags Class Teachers
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /class-teachers/{id} [delete]
func (h *ClassTeacherHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.list(c))
}

func (h *ClassTeacherHandler) list(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		items, err := h.svc.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.ClassTeachersFromDetails(items), nil
	}
}
