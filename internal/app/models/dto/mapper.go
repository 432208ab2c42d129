package dto

import "github.com/jkcodespace/academics/internal/app/models"

// Mapping between persisted entities and wire representations. All functions
// here are pure; they never touch the store. Full views nest shallow views
// exactly one level deep so cyclic entity graphs cannot recurse during
// serialization.

// CourseToShallow converts a course to its shallow representation.
func CourseToShallow(course *models.Course) CourseShallow {
	return CourseShallow{
		CourseCode:        course.Code,
		CourseName:        course.Name,
		CourseDescription: course.Description,
	}
}

// StudentToShallow converts a student to its shallow representation.
func StudentToShallow(student *models.Student) StudentShallow {
	return StudentShallow{
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
	}
}

// LecturerToShallow converts a lecturer to its shallow representation.
func LecturerToShallow(lecturer *models.Lecturer) LecturerShallow {
	return LecturerShallow{
		LecturerID: lecturer.LecturerID,
		FirstName:  lecturer.FirstName,
		LastName:   lecturer.LastName,
	}
}

// CourseToResponse converts a course with loaded relations to its full
// representation.
func CourseToResponse(course *models.Course) *CourseResponse {
	resp := &CourseResponse{
		CourseCode:        course.Code,
		CourseName:        course.Name,
		CourseDescription: course.Description,
		Students:          make([]StudentShallow, 0, len(course.Students)),
	}
	for _, student := range course.Students {
		resp.Students = append(resp.Students, StudentToShallow(student))
	}
	if course.Lecturer != nil {
		shallow := LecturerToShallow(course.Lecturer)
		resp.Lecturer = &shallow
	}
	return resp
}

// StudentToResponse converts a student with loaded enrollments to its full
// representation.
func StudentToResponse(student *models.Student) *StudentResponse {
	resp := &StudentResponse{
		StudentID: student.StudentID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Courses:   make([]CourseShallow, 0, len(student.Courses)),
	}
	for _, course := range student.Courses {
		resp.Courses = append(resp.Courses, CourseToShallow(course))
	}
	return resp
}

// LecturerToResponse converts a lecturer with its loaded assignment to its
// full representation.
func LecturerToResponse(lecturer *models.Lecturer) *LecturerResponse {
	resp := &LecturerResponse{
		LecturerID: lecturer.LecturerID,
		FirstName:  lecturer.FirstName,
		LastName:   lecturer.LastName,
	}
	if lecturer.Course != nil {
		shallow := CourseToShallow(lecturer.Course)
		resp.Course = &shallow
	}
	return resp
}

// CoursesToResponses converts a list of courses to full representations.
func CoursesToResponses(courses []*models.Course) []*CourseResponse {
	resps := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		resps = append(resps, CourseToResponse(course))
	}
	return resps
}

// StudentsToResponses converts a list of students to full representations.
func StudentsToResponses(students []*models.Student) []*StudentResponse {
	resps := make([]*StudentResponse, 0, len(students))
	for _, student := range students {
		resps = append(resps, StudentToResponse(student))
	}
	return resps
}

// LecturersToResponses converts a list of lecturers to full representations.
func LecturersToResponses(lecturers []*models.Lecturer) []*LecturerResponse {
	resps := make([]*LecturerResponse, 0, len(lecturers))
	for _, lecturer := range lecturers {
		resps = append(resps, LecturerToResponse(lecturer))
	}
	return resps
}
