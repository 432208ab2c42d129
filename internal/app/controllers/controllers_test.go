package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkcodespace/academics/internal/app/controllers"
	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/models/dto"
	"github.com/jkcodespace/academics/internal/app/routes"
	"github.com/jkcodespace/academics/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub services with overridable behavior per test. Methods without an
// override fail loudly so a test cannot silently hit the wrong endpoint.

type stubCourseService struct {
	getCourse       func(ctx context.Context, courseCode string) (*models.Course, error)
	getAllCourses   func(ctx context.Context) ([]*models.Course, error)
	createCourse    func(ctx context.Context, course *models.Course) (*models.Course, error)
	updateCourse    func(ctx context.Context, course *models.Course) (*models.Course, error)
	deleteCourse    func(ctx context.Context, courseCode string) (bool, error)
	enrollStudent   func(ctx context.Context, studentID, courseCode string) (*models.Student, error)
	unenrollStudent func(ctx context.Context, studentID, courseCode string) (*models.Student, error)
	assignLecturer  func(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error)
	deassign        func(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error)
}

func (s *stubCourseService) GetCourse(ctx context.Context, courseCode string) (*models.Course, error) {
	return s.getCourse(ctx, courseCode)
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.getAllCourses(ctx)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	return s.createCourse(ctx, course)
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	return s.updateCourse(ctx, course)
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, courseCode string) (bool, error) {
	return s.deleteCourse(ctx, courseCode)
}

func (s *stubCourseService) EnrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
	return s.enrollStudent(ctx, studentID, courseCode)
}

func (s *stubCourseService) UnenrollStudent(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
	return s.unenrollStudent(ctx, studentID, courseCode)
}

func (s *stubCourseService) AssignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
	return s.assignLecturer(ctx, lecturerID, courseCode)
}

func (s *stubCourseService) DeassignLecturer(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
	return s.deassign(ctx, lecturerID, courseCode)
}

type stubStudentService struct {
	getStudent     func(ctx context.Context, studentID string) (*models.Student, error)
	getAllStudents func(ctx context.Context) ([]*models.Student, error)
	createStudent  func(ctx context.Context, student *models.Student) (*models.Student, error)
	updateStudent  func(ctx context.Context, student *models.Student) (*models.Student, error)
	deleteStudent  func(ctx context.Context, studentID string) (bool, error)
}

func (s *stubStudentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.getStudent(ctx, studentID)
}

func (s *stubStudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.getAllStudents(ctx)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	return s.createStudent(ctx, student)
}

func (s *stubStudentService) UpdateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	return s.updateStudent(ctx, student)
}

func (s *stubStudentService) DeleteStudent(ctx context.Context, studentID string) (bool, error) {
	return s.deleteStudent(ctx, studentID)
}

type stubLecturerService struct {
	getLecturer     func(ctx context.Context, lecturerID string) (*models.Lecturer, error)
	getAllLecturers func(ctx context.Context) ([]*models.Lecturer, error)
	createLecturer  func(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error)
	updateLecturer  func(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error)
	deleteLecturer  func(ctx context.Context, lecturerID string) (bool, error)
}

func (s *stubLecturerService) GetLecturer(ctx context.Context, lecturerID string) (*models.Lecturer, error) {
	return s.getLecturer(ctx, lecturerID)
}

func (s *stubLecturerService) GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	return s.getAllLecturers(ctx)
}

func (s *stubLecturerService) CreateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	return s.createLecturer(ctx, lecturer)
}

func (s *stubLecturerService) UpdateLecturer(ctx context.Context, lecturer *models.Lecturer) (*models.Lecturer, error) {
	return s.updateLecturer(ctx, lecturer)
}

func (s *stubLecturerService) DeleteLecturer(ctx context.Context, lecturerID string) (bool, error) {
	return s.deleteLecturer(ctx, lecturerID)
}

func newTestRouter(cs *stubCourseService, ss *stubStudentService, ls *stubLecturerService) *gin.Engine {
	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewCourseController(cs),
		controllers.NewStudentController(ss, cs),
		controllers.NewLecturerController(ls, cs),
	)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetCourseByCode(t *testing.T) {
	cs := &stubCourseService{
		getCourse: func(ctx context.Context, courseCode string) (*models.Course, error) {
			return &models.Course{
				Code:     courseCode,
				Name:     "Intro",
				Students: []*models.Student{{StudentID: "S1", FirstName: "Ada"}},
				Lecturer: &models.Lecturer{LecturerID: "L1", FirstName: "Grace"},
			}, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodGet, "/v1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CourseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CS101", resp.CourseCode)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "S1", resp.Students[0].StudentID)
	require.NotNil(t, resp.Lecturer)
	assert.Equal(t, "L1", resp.Lecturer.LecturerID)
}

func TestGetCourseNotFoundBody(t *testing.T) {
	cs := &stubCourseService{
		getCourse: func(ctx context.Context, courseCode string) (*models.Course, error) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Cannot find Course with code %s", courseCode))
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodGet, "/v1/courses/NOPE", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Not Found", body.Error)
	assert.Equal(t, "Cannot find Course with code NOPE", body.Message)
	assert.Equal(t, "/v1/courses/NOPE", body.Path)
	assert.False(t, body.Timestamp.IsZero())
}

func TestCreateCourseReturnsCreated(t *testing.T) {
	cs := &stubCourseService{
		createCourse: func(ctx context.Context, course *models.Course) (*models.Course, error) {
			course.Students = []*models.Student{}
			return course, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/courses",
		`{"courseCode":"CS101","courseName":"Intro","courseDescription":"Basics"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.CourseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CS101", resp.CourseCode)
	assert.NotNil(t, resp.Students)
	assert.Empty(t, resp.Students)
	assert.Nil(t, resp.Lecturer)
}

func TestCreateCourseConflict(t *testing.T) {
	cs := &stubCourseService{
		createCourse: func(ctx context.Context, course *models.Course) (*models.Course, error) {
			return nil, apperrors.NewConflictError("A Course with Course code: CS101 already exists")
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/courses", `{"courseCode":"CS101"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Conflict", body.Error)
	assert.Equal(t, "A Course with Course code: CS101 already exists", body.Message)
}

func TestCreateCourseMissingCode(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/courses", `{"courseName":"Intro"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Contains(t, body.Message, "CourseCode is required")
}

func TestCreateCourseRejectsNonJSON(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubStudentService{}, &stubLecturerService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/courses", strings.NewReader("courseCode=CS101"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnsupportedMediaType, body.Status)
}

func TestUpdateCourseTargetsBodyCode(t *testing.T) {
	var seen string
	cs := &stubCourseService{
		updateCourse: func(ctx context.Context, course *models.Course) (*models.Course, error) {
			seen = course.Code
			course.Students = []*models.Student{}
			return course, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPatch, "/v1/courses",
		`{"courseCode":"CS101","courseName":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CS101", seen)
}

func TestDeleteCourseReturnsBoolean(t *testing.T) {
	cs := &stubCourseService{
		deleteCourse: func(ctx context.Context, courseCode string) (bool, error) {
			return true, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodDelete, "/v1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())
}

func TestEnrollStudentRoute(t *testing.T) {
	cs := &stubCourseService{
		enrollStudent: func(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
			return &models.Student{
				StudentID: studentID,
				FirstName: "Ada",
				Courses:   []*models.Course{{Code: courseCode, Name: "Intro"}},
			}, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/students/S1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "S1", resp.StudentID)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "CS101", resp.Courses[0].CourseCode)
}

func TestUnenrollStudentRoute(t *testing.T) {
	cs := &stubCourseService{
		unenrollStudent: func(ctx context.Context, studentID, courseCode string) (*models.Student, error) {
			return &models.Student{StudentID: studentID, Courses: []*models.Course{}}, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodDelete, "/v1/students/S1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.StudentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Courses)
}

func TestAssignLecturerRoute(t *testing.T) {
	cs := &stubCourseService{
		assignLecturer: func(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
			return &models.Lecturer{
				LecturerID: lecturerID,
				FirstName:  "Grace",
				Course:     &models.Course{Code: courseCode, Name: "Intro"},
			}, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/lecturers/L1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LecturerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "L1", resp.LecturerID)
	require.NotNil(t, resp.Course)
	assert.Equal(t, "CS101", resp.Course.CourseCode)
}

func TestAssignLecturerConflictRoute(t *testing.T) {
	cs := &stubCourseService{
		assignLecturer: func(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Course %s already has a lecturer assigned to it", courseCode))
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodPost, "/v1/lecturers/L2/courses/CS101", "")
	require.Equal(t, http.StatusConflict, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Course CS101 already has a lecturer assigned to it", body.Message)
}

func TestDeassignLecturerRoute(t *testing.T) {
	cs := &stubCourseService{
		deassign: func(ctx context.Context, lecturerID, courseCode string) (*models.Lecturer, error) {
			return &models.Lecturer{LecturerID: lecturerID}, nil
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodDelete, "/v1/lecturers/L1/courses/CS101", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LecturerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Course)
}

func TestInternalErrorHidesDetails(t *testing.T) {
	cs := &stubCourseService{
		getAllCourses: func(ctx context.Context) ([]*models.Course, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}
	router := newTestRouter(cs, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodGet, "/v1/courses", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body dto.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "connection refused")
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&stubCourseService{}, &stubStudentService{}, &stubLecturerService{})

	rec := doJSON(router, http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
}
