package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/models/dto"
	"github.com/jkcodespace/academics/internal/app/services"
	"github.com/jkcodespace/academics/internal/middleware"
)

// StudentController handles student-related endpoints. The enrollment
// endpoints live here path-wise but delegate to the course service, which
// owns the relationship operations.
type StudentController struct {
	studentService services.StudentService
	courseService  services.CourseService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, courseService services.CourseService) *StudentController {
	return &StudentController{
		studentService: studentService,
		courseService:  courseService,
	}
}

// GetStudentByID returns the full representation of a single student
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	studentID := ctx.Param("studentid")

	student, err := c.studentService.GetStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentToResponse(student))
}

// GetAllStudents returns the full representations of all students
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentsToResponses(students))
}

// CreateStudent creates a student from its shallow representation
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	student, err := c.studentService.CreateStudent(ctx, &models.Student{
		StudentID: req.StudentID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentToResponse(student))
}

// UpdateStudent overwrites a student's descriptive attributes; the student
// id in the body identifies the target
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewJSONError(http.StatusBadRequest,
			middleware.BindingErrorMessage(err), ctx.Request.URL.Path))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, &models.Student{
		StudentID: req.StudentID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentToResponse(student))
}

// DeleteStudent deletes a student after its relationship repairs
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentid")

	deleted, err := c.studentService.DeleteStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deleted)
}

// EnrollInCourse enrolls a student in a course and returns the student with
// the enrollment reflected
func (c *StudentController) EnrollInCourse(ctx *gin.Context) {
	studentID := ctx.Param("studentid")
	courseCode := ctx.Param("coursecode")

	student, err := c.courseService.EnrollStudent(ctx, studentID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentToResponse(student))
}

// UnenrollFromCourse removes a student's enrollment in a course and returns
// the student with the enrollment removed
func (c *StudentController) UnenrollFromCourse(ctx *gin.Context) {
	studentID := ctx.Param("studentid")
	courseCode := ctx.Param("coursecode")

	student, err := c.courseService.UnenrollStudent(ctx, studentID, courseCode)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentToResponse(student))
}
