package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/learnhub/internal/app/models/dto"
	"github.com/oguzk/learnhub/internal/app/services"
	"github.com/oguzk/learnhub/internal/middleware"
	"github.com/oguzk/learnhub/internal/pkg/helpers"
)

// EnrollmentController handles enrollment operations. Every endpoint is
// scoped to the authenticated user's own enrollments.
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll enrolls the authenticated user in a course
// @Summary Enroll in a course
// @Description Creates an enrollment; a second attempt for the same course fails with 400
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment"
// @Failure 400 {object} dto.ErrorResponse "Already enrolled"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{id}/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	courseID := parseIDParam(ctx, "id")
	if courseID == 0 {
		return
	}

	enrollment, err := c.enrollmentService.Enroll(ctx.Request.Context(), userID, courseID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Enrollment failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(enrollment, "Enrolled successfully"))
}

// ListEnrollments returns the authenticated user's enrollments
// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	enrollments, err := c.enrollmentService.ListEnrollments(ctx.Request.Context(), userID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollments, ""))
}

// GetEnrollment returns one of the user's enrollments
// @Summary Get enrollment detail
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx.Request.Context(), id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment, ""))
}

// UpdateProgress sets the progress of one of the user's enrollments
// @Summary Update enrollment progress
// @Description Clamps the value into [0,100]; reaching 100 marks the enrollment completed
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Param request body dto.ProgressUpdateRequest true "New progress value"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Updated enrollment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id}/progress [patch]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	var req dto.ProgressUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.UpdateProgress(ctx.Request.Context(), id, userID, *req.Progress)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrollment, "Progress updated"))
}

// DeleteEnrollment removes one of the user's enrollments
// @Summary Delete an enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse "Enrollment deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	userID, ok := requireAuth(ctx)
	if !ok {
		return
	}
	id := parseIDParam(ctx, "id")
	if id == 0 {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Enrollment deleted"))
}
