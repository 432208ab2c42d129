package dto

// StudentShallow is the attributes-only view of a student.
type StudentShallow struct {
	StudentID string `json:"studentId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StudentResponse is the full view of a student including its enrollments
// as shallow courses.
type StudentResponse struct {
	StudentID string          `json:"studentId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Courses   []CourseShallow `json:"courses"`
}

// StudentRequest is the bound request body for student create/update.
type StudentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
