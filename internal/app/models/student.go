package models

// Student represents an enrolled student. The student owns its set of course
// enrollments; a course's view of attendees is the inverse query.
type Student struct {
	ID        int64  `json:"-" db:"id"`
	StudentID string `json:"studentId" db:"student_id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
