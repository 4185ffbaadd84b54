package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type classService interface {
	List(ctx context.Context) ([]models.ClassGroupDetail, error)
	Get(ctx context.Context, id int64) (*models.ClassGroup, error)
	Create(ctx context.Context, req dto.ClassRequest) (*models.ClassGroup, error)
	Update(ctx context.Context, id int64, req dto.ClassRequest) (*models.ClassGroup, error)
	Delete(ctx context.Context, id int64) error
}

// ClassHandler exposes class endpoints.
type ClassHandler struct {
	svc classService
}

// NewClassHandler constructs a ClassHandler.
func NewClassHandler(svc classService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

// List godoc
// @Summary List classs
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	data, err := h.list(c)()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// Get godoc
// @Summary Get class
// @Tags Classes
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
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
	response.OK(c, dto.ClassFromModel(*item))
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body dto.ClassRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.ClassRequest
	if !bindJSON(c, &req, "class") {
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req)
	respondMutation(c, err, h.list(c))
}

// Update godoc
// @Summary Replace class
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body dto.ClassRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [put]
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ClassRequest
	if !bindJSON(c, &req, "class") {
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, req)
	respondMutation(c, err, h.list(c))
}

// Delete godoc
// @Summary Delete class
// @Tags Classes
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.list(c))
}

func (h *ClassHandler) list(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		items, err := h.svc.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.ClassesFromDetails(items), nil
	}
}
