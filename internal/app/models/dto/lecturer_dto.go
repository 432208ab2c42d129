package dto

// LecturerShallow is the attributes-only view of a lecturer.
type LecturerShallow struct {
	LecturerID string `json:"lecturerId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

// LecturerResponse is the full view of a lecturer including its assigned
// course as a shallow course, null when unassigned.
type LecturerResponse struct {
	LecturerID string         `json:"lecturerId"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	Course     *CourseShallow `json:"course"`
}

// LecturerRequest is the bound request body for lecturer create/update.
type LecturerRequest struct {
	LecturerID string `json:"lecturerId" binding:"required"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}
