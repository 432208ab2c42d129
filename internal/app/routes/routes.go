package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jkcodespace/academics/internal/app/controllers"
	"github.com/jkcodespace/academics/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	lecturerController *controllers.LecturerController,
) {
	// API version group
	v1 := router.Group("/v1")

	// Health route
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Endpoints with request bodies only accept JSON
	requireJSON := middleware.RequireJSON()

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:coursecode", courseController.GetCourseByCode)
		courses.POST("", requireJSON, courseController.CreateCourse)
		courses.PATCH("", requireJSON, courseController.UpdateCourse)
		courses.DELETE("/:coursecode", courseController.DeleteCourse)
	}

	// Student routes, including enrollment management
	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:studentid", studentController.GetStudentByID)
		students.POST("", requireJSON, studentController.CreateStudent)
		students.PATCH("", requireJSON, studentController.UpdateStudent)
		students.DELETE("/:studentid", studentController.DeleteStudent)

		students.POST("/:studentid/courses/:coursecode", studentController.EnrollInCourse)
		students.DELETE("/:studentid/courses/:coursecode", studentController.UnenrollFromCourse)
	}

	// Lecturer routes, including assignment management
	lecturers := v1.Group("/lecturers")
	{
		lecturers.GET("", lecturerController.GetAllLecturers)
		lecturers.GET("/:lecturerid", lecturerController.GetLecturerByID)
		lecturers.POST("", requireJSON, lecturerController.CreateLecturer)
		lecturers.PATCH("", requireJSON, lecturerController.UpdateLecturer)
		lecturers.DELETE("/:lecturerid", lecturerController.DeleteLecturer)

		lecturers.POST("/:lecturerid/courses/:coursecode", lecturerController.AssignToCourse)
		lecturers.DELETE("/:lecturerid/courses/:coursecode", lecturerController.DeassignFromCourse)
	}
}
