// Package models contains the persisted entities of the academic records
// service: courses, students and lecturers. Surrogate database ids are kept
// internal; the natural keys (course code, student id, lecturer id) are the
// identifiers exposed through the API.
package models
