package models

// Lecturer represents a lecturer. A lecturer is assigned to at most one
// course at a time; CourseID is the assignment, nil when unassigned.
type Lecturer struct {
	ID         int64  `json:"-" db:"id"`
	LecturerID string `json:"lecturerId" db:"lecturer_id"`
	FirstName  string `json:"firstName" db:"first_name"`
	LastName   string `json:"lastName" db:"last_name"`
	CourseID   *int64 `json:"-" db:"course_id"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
