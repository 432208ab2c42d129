package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/models/dto"
	"github.com/jkcodespace/academics/internal/app/services"
	"github.com/jkcodespace/academics/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourseByCode returns the full representation of a single course
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	courseCode := ctx.Param("coursecode")

	course, err := c.courseService.GetCourse(ctx, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseToResponse(course))
}

// GetAllCourses returns the full representations of all courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CoursesToResponses(courses))
}

// CreateCourse creates a course from its shallow representation
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &models.Course{
		Code:        req.CourseCode,
		Name:        req.CourseName,
		Description: req.CourseDescription,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CourseToResponse(course))
}

// UpdateCourse overwrites a course's descriptive attributes; the course code
// in the body identifies the target
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, &models.Course{
		Code:        req.CourseCode,
		Name:        req.CourseName,
		Description: req.CourseDescription,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseToResponse(course))
}

// DeleteCourse deletes a course after its relationship repairs
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseCode := ctx.Param("coursecode")

	deleted, err := c.courseService.DeleteCourse(ctx, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}
