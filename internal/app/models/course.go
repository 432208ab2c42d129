package models

// Course represents a course offered by the institution.
type Course struct {
	ID          int64  `json:"-" db:"id"`
	Code        string `json:"courseCode" db:"course_code"`
	Name        string `json:"courseName" db:"course_name"`
	Description string `json:"courseDescription" db:"course_description"`

	// Relations (populated when needed). Students is derived from the
	// student-owned enrollment rows; Lecturer from the lecturer's assignment.
	Students []*Student `json:"students,omitempty"`
	Lecturer *Lecturer  `json:"lecturer,omitempty"`
}
