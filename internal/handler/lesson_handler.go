package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type lessonService interface {
	List(ctx context.Context) ([]models.LessonDetail, error)
	Get(ctx context.Context, id int64) (*models.Lesson, error)
	Create(ctx context.Context, req dto.LessonRequest) (*models.Lesson, error)
	Update(ctx context.Context, id int64, req dto.LessonRequest) (*models.Lesson, error)
	Delete(ctx context.Context, id int64) error
}

// LessonHandler exposes lesson endpoints.
type LessonHandler struct {
	svc lessonService
}

// NewLessonHandler constructs a LessonHandler.
func NewLessonHandler(svc lessonService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

// List godoc
// @Summary List lessons
// @Tags Lessons
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /lessons [get]
func (h *LessonHandler) List(c *gin.Context) {
	data, err := h.list(c)()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// Get godoc
// @Summary Get lesson
// @Tags Lessons
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
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
	response.OK(c, dto.LessonFromModel(*item))
}

// Create godoc
// @Summary Create lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param payload body dto.LessonRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	var req dto.LessonRequest
	if !bindJSON(c, &req, "lesson") {
		return
	}
	_, err := h.svc.Create(c.Request.Context(), req)
	respondMutation(c, err, h.list(c))
}

// Update godoc
// @Summary Replace lesson
// @Tags Lessons
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body dto.LessonRequest true "Payload"
// @Success 200 {object} response.Envelope
// @Router /lessons/{id} [put]
func (h *LessonHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.LessonRequest
	if !bindJSON(c, &req, "lesson") {
		return
	}
	_, err := h.svc.Update(c.Request.Context(), id, req)
	respondMutation(c, err, h.list(c))
}

// Delete godoc
// @Summary Delete lesson
// @Tags Lessons
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} response.Envelope
// @Router /lessons/{id} [delete]
func (h *LessonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	respondMutation(c, err, h.list(c))
}

func (h *LessonHandler) list(c *gin.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		items, err := h.svc.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.LessonsFromDetails(items), nil
	}
}
