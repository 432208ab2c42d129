package services

import (
	"context"
	"sort"
	"sync"

	"github.com/jkcodespace/academics/internal/app/models"
	"github.com/jkcodespace/academics/internal/app/repositories"
)

// memStores is an in-memory stand-in for the pgx repositories. It mirrors
// their contract: key lookups return nil without error on absence, creates
// fail on duplicate natural keys, and enrollment rows live on the student
// side. Reads hand out copies so callers cannot mutate stored state.
type memStores struct {
	mu          sync.Mutex
	nextID      int64
	courses     map[int64]*models.Course
	students    map[int64]*models.Student
	lecturers   map[int64]*models.Lecturer
	enrollments map[int64]map[int64]struct{}
}

func newMemStores() *memStores {
	return &memStores{
		courses:     make(map[int64]*models.Course),
		students:    make(map[int64]*models.Student),
		lecturers:   make(map[int64]*models.Lecturer),
		enrollments: make(map[int64]map[int64]struct{}),
	}
}

func (m *memStores) id() int64 {
	m.nextID++
	return m.nextID
}

func courseCopy(c *models.Course) *models.Course {
	return &models.Course{ID: c.ID, Code: c.Code, Name: c.Name, Description: c.Description}
}

func studentCopy(s *models.Student) *models.Student {
	return &models.Student{ID: s.ID, StudentID: s.StudentID, FirstName: s.FirstName, LastName: s.LastName}
}

func lecturerCopy(l *models.Lecturer) *models.Lecturer {
	cp := &models.Lecturer{ID: l.ID, LecturerID: l.LecturerID, FirstName: l.FirstName, LastName: l.LastName}
	if l.CourseID != nil {
		id := *l.CourseID
		cp.CourseID = &id
	}
	return cp
}

type memCourseStore struct{ m *memStores }

func (s *memCourseStore) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.courses {
		if c.Code == code {
			return courseCopy(c), nil
		}
	}
	return nil, nil
}

func (s *memCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if c, ok := s.m.courses[id]; ok {
		return courseCopy(c), nil
	}
	return nil, nil
}

func (s *memCourseStore) GetAll(ctx context.Context) ([]*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*models.Course, 0, len(s.m.courses))
	for _, c := range s.m.courses {
		out = append(out, courseCopy(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *memCourseStore) Create(ctx context.Context, course *models.Course) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, c := range s.m.courses {
		if c.Code == course.Code {
			return repositories.ErrCourseAlreadyExists
		}
	}
	course.ID = s.m.id()
	s.m.courses[course.ID] = courseCopy(course)
	return nil
}

func (s *memCourseStore) Update(ctx context.Context, course *models.Course) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	existing, ok := s.m.courses[course.ID]
	if !ok {
		return repositories.ErrCourseNotFound
	}
	existing.Name = course.Name
	existing.Description = course.Description
	return nil
}

func (s *memCourseStore) Delete(ctx context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.courses[id]; !ok {
		return repositories.ErrCourseNotFound
	}
	delete(s.m.courses, id)
	return nil
}

func (s *memCourseStore) GetStudents(ctx context.Context, courseID int64) ([]*models.Student, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*models.Student, 0)
	for studentID, set := range s.m.enrollments {
		if _, ok := set[courseID]; ok {
			if st, found := s.m.students[studentID]; found {
				out = append(out, studentCopy(st))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

type memStudentStore struct{ m *memStores }

func (s *memStudentStore) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, st := range s.m.students {
		if st.StudentID == studentID {
			return studentCopy(st), nil
		}
	}
	return nil, nil
}

func (s *memStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*models.Student, 0, len(s.m.students))
	for _, st := range s.m.students {
		out = append(out, studentCopy(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (s *memStudentStore) Create(ctx context.Context, student *models.Student) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, st := range s.m.students {
		if st.StudentID == student.StudentID {
			return repositories.ErrStudentAlreadyExists
		}
	}
	student.ID = s.m.id()
	s.m.students[student.ID] = studentCopy(student)
	return nil
}

func (s *memStudentStore) Update(ctx context.Context, student *models.Student) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	existing, ok := s.m.students[student.ID]
	if !ok {
		return repositories.ErrStudentNotFound
	}
	existing.FirstName = student.FirstName
	existing.LastName = student.LastName
	return nil
}

func (s *memStudentStore) Delete(ctx context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.students[id]; !ok {
		return repositories.ErrStudentNotFound
	}
	delete(s.m.students, id)
	delete(s.m.enrollments, id)
	return nil
}

func (s *memStudentStore) GetCourses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*models.Course, 0)
	for courseID := range s.m.enrollments[studentID] {
		if c, ok := s.m.courses[courseID]; ok {
			out = append(out, courseCopy(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *memStudentStore) AddCourse(ctx context.Context, studentID, courseID int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	set, ok := s.m.enrollments[studentID]
	if !ok {
		set = make(map[int64]struct{})
		s.m.enrollments[studentID] = set
	}
	set[courseID] = struct{}{}
	return nil
}

func (s *memStudentStore) RemoveCourse(ctx context.Context, studentID, courseID int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.enrollments[studentID], courseID)
	return nil
}

func (s *memStudentStore) RemoveAllCourses(ctx context.Context, studentID int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	delete(s.m.enrollments, studentID)
	return nil
}

type memLecturerStore struct{ m *memStores }

func (s *memLecturerStore) GetByLecturerID(ctx context.Context, lecturerID string) (*models.Lecturer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, l := range s.m.lecturers {
		if l.LecturerID == lecturerID {
			return lecturerCopy(l), nil
		}
	}
	return nil, nil
}

func (s *memLecturerStore) GetByCourseID(ctx context.Context, courseID int64) (*models.Lecturer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, l := range s.m.lecturers {
		if l.CourseID != nil && *l.CourseID == courseID {
			return lecturerCopy(l), nil
		}
	}
	return nil, nil
}

func (s *memLecturerStore) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	out := make([]*models.Lecturer, 0, len(s.m.lecturers))
	for _, l := range s.m.lecturers {
		out = append(out, lecturerCopy(l))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LecturerID < out[j].LecturerID })
	return out, nil
}

func (s *memLecturerStore) Create(ctx context.Context, lecturer *models.Lecturer) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, l := range s.m.lecturers {
		if l.LecturerID == lecturer.LecturerID {
			return repositories.ErrLecturerAlreadyExists
		}
	}
	lecturer.ID = s.m.id()
	s.m.lecturers[lecturer.ID] = lecturerCopy(lecturer)
	return nil
}

func (s *memLecturerStore) Update(ctx context.Context, lecturer *models.Lecturer) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	existing, ok := s.m.lecturers[lecturer.ID]
	if !ok {
		return repositories.ErrLecturerNotFound
	}
	existing.FirstName = lecturer.FirstName
	existing.LastName = lecturer.LastName
	return nil
}

func (s *memLecturerStore) Delete(ctx context.Context, id int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.lecturers[id]; !ok {
		return repositories.ErrLecturerNotFound
	}
	delete(s.m.lecturers, id)
	return nil
}

func (s *memLecturerStore) SetCourse(ctx context.Context, lecturerID int64, courseID *int64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	lecturer, ok := s.m.lecturers[lecturerID]
	if !ok {
		return repositories.ErrLecturerNotFound
	}
	if courseID != nil {
		for _, l := range s.m.lecturers {
			if l.ID != lecturerID && l.CourseID != nil && *l.CourseID == *courseID {
				return repositories.ErrCourseAlreadyAssigned
			}
		}
		id := *courseID
		lecturer.CourseID = &id
		return nil
	}
	lecturer.CourseID = nil
	return nil
}

// testEnv bundles the fake stores with fully wired services for tests.
type testEnv struct {
	stores    *memStores
	courses   *memCourseStore
	students  *memStudentStore
	lecturers *memLecturerStore
	rel       *RelationshipManager

	courseService   CourseService
	studentService  StudentService
	lecturerService LecturerService
}

func newTestEnv() *testEnv {
	m := newMemStores()
	env := &testEnv{
		stores:    m,
		courses:   &memCourseStore{m: m},
		students:  &memStudentStore{m: m},
		lecturers: &memLecturerStore{m: m},
	}
	env.rel = NewRelationshipManager(env.courses, env.students, env.lecturers)
	env.courseService = NewCourseService(env.courses, env.students, env.lecturers, env.rel)
	env.studentService = NewStudentService(env.students, env.rel)
	env.lecturerService = NewLecturerService(env.lecturers, env.rel)
	return env
}
