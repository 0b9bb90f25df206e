package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
)

// LessonController handles lesson operations
type LessonController struct {
	lessonService *services.LessonService
	logger        zerolog.Logger
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService *services.LessonService, logger zerolog.Logger) *LessonController {
	return &LessonController{
		lessonService: lessonService,
		logger:        logger,
	}
}

// ListLessons returns a course's lessons in order
// @Summary List course lessons
// @Tags lessons
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.LessonResponse} "Lessons"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	courseID := parseIDParam(ctx, "id")
	if courseID == 0 {
		return
	}

	lessons, err := c.lessonService.ListLessons(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lessons, ""))
}

// GetLesson returns a single lesson
// @Summary Get lesson detail
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=dto.LessonResponse} "Lesson"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	lesson, err := c.lessonService.GetLesson(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lesson, ""))
}

// CreateLesson adds a lesson to a course
// @Summary Create a lesson
// @Description Creates a lesson; the order must be unique within the course
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CreateLessonRequest true "Lesson data"
// @Success 201 {object} dto.APIResponse{data=dto.LessonResponse} "Created lesson"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate order"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 403 {object} dto.ErrorResponse "Actor is not an instructor"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(ctx)
	courseID := parseIDParam(ctx, "id")
	if courseID == 0 {
		return
	}

	var req dto.CreateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	lesson, err := c.lessonService.CreateLesson(ctx.Request.Context(), courseID, userID, role, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("courseID", courseID).Msg("Lesson creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(lesson, "Lesson created"))
}

// UpdateLesson applies a partial update to a lesson
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body dto.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.LessonResponse} "Updated lesson"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or duplicate order"
// @Failure 403 {object} dto.ErrorResponse "Actor does not own the course"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [patch]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	var req dto.UpdateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	lesson, err := c.lessonService.UpdateLesson(ctx.Request.Context(), id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lesson, "Lesson updated"))
}

// DeleteLesson removes a lesson
// @Summary Delete a lesson
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.APIResponse "Lesson deleted"
// @Failure 403 {object} dto.ErrorResponse "Actor does not own the course"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	if err := c.lessonService.DeleteLesson(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Lesson deleted"))
}
