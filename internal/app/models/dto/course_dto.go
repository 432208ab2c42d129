package dto

// CourseShallow is the attributes-only view of a course, used for nesting
// inside other entities and as the create/update request body.
type CourseShallow struct {
	CourseCode        string `json:"courseCode"`
	CourseName        string `json:"courseName"`
	CourseDescription string `json:"courseDescription"`
}

// CourseResponse is the full view of a course: attributes plus one level of
// shallow-nested related entities. Nesting never recurses further.
type CourseResponse struct {
	CourseCode        string           `json:"courseCode"`
	CourseName        string           `json:"courseName"`
	CourseDescription string           `json:"courseDescription"`
	Students          []StudentShallow `json:"students"`
	Lecturer          *LecturerShallow `json:"lecturer"`
}

// CourseRequest is the bound request body for course create/update.
type CourseRequest struct {
	CourseCode        string `json:"courseCode" binding:"required"`
	CourseName        string `json:"courseName"`
	CourseDescription string `json:"courseDescription"`
}
