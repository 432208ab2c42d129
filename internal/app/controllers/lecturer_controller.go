package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/models/dto"
	"github.com/jkcodespace/academics/internal/app/services"
	"github.com/jkcodespace/academics/internal/middleware"
)

// LecturerController handles lecturer-related endpoints. The assignment
// endpoints delegate to the course service, which owns the relationship
// operations.
type LecturerController struct {
	lecturerService services.LecturerService
	courseService   services.CourseService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService services.LecturerService, courseService services.CourseService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
		courseService:   courseService,
	}
}

// GetLecturerByID returns the full representation of a single lecturer
func (c *LecturerController) GetLecturerByID(ctx *gin.Context) {
	lecturerID := ctx.Param("lecturerid")

	lecturer, err := c.lecturerService.GetLecturer(ctx, lecturerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LecturerToResponse(lecturer))
}

// GetAllLecturers returns the full representations of all lecturers
func (c *LecturerController) GetAllLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.GetAllLecturers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LecturersToResponses(lecturers))
}

// CreateLecturer creates a lecturer from its shallow representation
func (c *LecturerController) CreateLecturer(ctx *gin.Context) {
	var req dto.LecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	lecturer, err := c.lecturerService.CreateLecturer(ctx, &models.Lecturer{
		LecturerID: req.LecturerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.LecturerToResponse(lecturer))
}

// UpdateLecturer overwrites a lecturer's descriptive attributes; the
// lecturer id in the body identifies the target
func (c *LecturerController) UpdateLecturer(ctx *gin.Context) {
	var req dto.LecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	lecturer, err := c.lecturerService.UpdateLecturer(ctx, &models.Lecturer{
		LecturerID: req.LecturerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LecturerToResponse(lecturer))
}

// DeleteLecturer deletes a lecturer after its relationship repairs
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	lecturerID := ctx.Param("lecturerid")

	deleted, err := c.lecturerService.DeleteLecturer(ctx, lecturerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

// AssignToCourse assigns a lecturer to a course and returns the lecturer
// with the assignment visible
func (c *LecturerController) AssignToCourse(ctx *gin.Context) {
	lecturerID := ctx.Param("lecturerid")
	courseCode := ctx.Param("coursecode")

	lecturer, err := c.courseService.AssignLecturer(ctx, lecturerID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LecturerToResponse(lecturer))
}

// DeassignFromCourse clears a lecturer's assignment and returns the
// lecturer without a course
func (c *LecturerController) DeassignFromCourse(ctx *gin.Context) {
	lecturerID := ctx.Param("lecturerid")
	courseCode := ctx.Param("coursecode")

	lecturer, err := c.courseService.DeassignLecturer(ctx, lecturerID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LecturerToResponse(lecturer))
}
