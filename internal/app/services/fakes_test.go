package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/yigit/gradebook/internal/app/auth"
	"github.com/yigit/gradebook/internal/app/models"
	"github.com/yigit/gradebook/internal/db"
	"github.com/yigit/gradebook/internal/pkg/apperrors"
)

var (
	adminSession   = auth.Session{LoggedIn: true, Username: "admin", Role: models.RoleAdmin}
	teacherSession = auth.Session{LoggedIn: true, Username: "teacher1", Role: models.RoleTeacher}
	nopLogger      = zerolog.Nop()
)

type scoreKey struct{ student, course string }

// memDB is an in-memory stand-in for the four tables
type memDB struct {
	users    map[string]models.User
	students map[string]models.Student
	courses  map[string]models.Course
	scores   map[scoreKey]float64
}

func newMemDB() *memDB {
	return &memDB{
		users:    map[string]models.User{},
		students: map[string]models.Student{},
		courses:  map[string]models.Course{},
		scores:   map[scoreKey]float64{},
	}
}

// fakeTx counts how often storage was entered
type fakeTx struct {
	txs   int
	reads int
}

func (f *fakeTx) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.txs++
	return fn(ctx, nil)
}

func (f *fakeTx) Read(ctx context.Context, fn db.TransactionFn) error {
	f.reads++
	return fn(ctx, nil)
}

func (f *fakeTx) calls() int { return f.txs + f.reads }

type memUsers struct{ m *memDB }

func (r memUsers) GetByUsername(_ context.Context, _ db.Querier, username string) (*models.User, error) {
	u, ok := r.m.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) Create(_ context.Context, _ db.Querier, u *models.User) error {
	if _, ok := r.m.users[u.Username]; ok {
		return apperrors.ErrResourceAlreadyExists
	}
	r.m.users[u.Username] = *u
	return nil
}

func (r memUsers) List(_ context.Context, _ db.Querier) ([]models.User, error) {
	out := []models.User{}
	for _, u := range r.m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r memUsers) Count(_ context.Context, _ db.Querier) (int, error) {
	return len(r.m.users), nil
}

type memStudents struct{ m *memDB }

func (r memStudents) Exists(_ context.Context, _ db.Querier, id string) (bool, error) {
	_, ok := r.m.students[id]
	return ok, nil
}

func (r memStudents) GetByID(_ context.Context, _ db.Querier, id string) (*models.Student, error) {
	s, ok := r.m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &s, nil
}

func (r memStudents) List(_ context.Context, _ db.Querier, className string) ([]models.Student, error) {
	out := []models.Student{}
	for _, s := range r.m.students {
		if className == "" || s.ClassName == className {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (r memStudents) Create(_ context.Context, _ db.Querier, s *models.Student) error {
	if _, ok := r.m.students[s.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	r.m.students[s.StudentID] = *s
	return nil
}

func (r memStudents) Update(_ context.Context, _ db.Querier, s *models.Student) error {
	if _, ok := r.m.students[s.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	r.m.students[s.StudentID] = *s
	return nil
}

func (r memStudents) Delete(_ context.Context, _ db.Querier, id string) error {
	if _, ok := r.m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.m.students, id)
	return nil
}

type memCourses struct{ m *memDB }

func (r memCourses) Exists(_ context.Context, _ db.Querier, id string) (bool, error) {
	_, ok := r.m.courses[id]
	return ok, nil
}

func (r memCourses) GetByID(_ context.Context, _ db.Querier, id string) (*models.Course, error) {
	c, ok := r.m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (r memCourses) List(_ context.Context, _ db.Querier) ([]models.Course, error) {
	out := []models.Course{}
	for _, c := range r.m.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (r memCourses) Create(_ context.Context, _ db.Querier, c *models.Course) error {
	if _, ok := r.m.courses[c.CourseID]; ok {
		return apperrors.ErrCourseIDAlreadyExists
	}
	r.m.courses[c.CourseID] = *c
	return nil
}

func (r memCourses) Update(_ context.Context, _ db.Querier, c *models.Course) error {
	if _, ok := r.m.courses[c.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	r.m.courses[c.CourseID] = *c
	return nil
}

func (r memCourses) Delete(_ context.Context, _ db.Querier, id string) error {
	if _, ok := r.m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	for k := range r.m.scores {
		if k.course == id {
			return apperrors.ErrCourseHasScores
		}
	}
	delete(r.m.courses, id)
	return nil
}

type memScores struct{ m *memDB }

func (r memScores) Exists(_ context.Context, _ db.Querier, sid, cid string) (bool, error) {
	_, ok := r.m.scores[scoreKey{sid, cid}]
	return ok, nil
}

func (r memScores) Get(_ context.Context, _ db.Querier, sid, cid string) (*models.Score, error) {
	v, ok := r.m.scores[scoreKey{sid, cid}]
	if !ok {
		return nil, apperrors.ErrScoreNotFound
	}
	return &models.Score{StudentID: sid, CourseID: cid, Score: v}, nil
}

func (r memScores) Create(_ context.Context, _ db.Querier, s *models.Score) error {
	k := scoreKey{s.StudentID, s.CourseID}
	if _, ok := r.m.scores[k]; ok {
		return apperrors.ErrDuplicateScore
	}
	r.m.scores[k] = s.Score
	return nil
}

func (r memScores) Update(_ context.Context, _ db.Querier, s *models.Score) error {
	k := scoreKey{s.StudentID, s.CourseID}
	if _, ok := r.m.scores[k]; !ok {
		return apperrors.ErrScoreNotFound
	}
	r.m.scores[k] = s.Score
	return nil
}

func (r memScores) Delete(_ context.Context, _ db.Querier, sid, cid string) error {
	k := scoreKey{sid, cid}
	if _, ok := r.m.scores[k]; !ok {
		return apperrors.ErrScoreNotFound
	}
	delete(r.m.scores, k)
	return nil
}

func (r memScores) DeleteByStudent(_ context.Context, _ db.Querier, sid string) (int64, error) {
	var n int64
	for k := range r.m.scores {
		if k.student == sid {
			delete(r.m.scores, k)
			n++
		}
	}
	return n, nil
}

func (r memScores) CountByCourse(_ context.Context, _ db.Querier, cid string) (int, error) {
	n := 0
	for k := range r.m.scores {
		if k.course == cid {
			n++
		}
	}
	return n, nil
}

func (r memScores) ListByStudent(_ context.Context, _ db.Querier, sid string) ([]models.CourseScore, error) {
	out := []models.CourseScore{}
	for k, v := range r.m.scores {
		if k.student != sid {
			continue
		}
		c := r.m.courses[k.course]
		out = append(out, models.CourseScore{CourseID: c.CourseID, CourseName: c.CourseName, Credit: c.Credit, Score: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out, nil
}

func (r memScores) ListByCourse(_ context.Context, _ db.Querier, cid, className string) ([]models.CourseScoreEntry, error) {
	out := []models.CourseScoreEntry{}
	for k, v := range r.m.scores {
		if k.course != cid {
			continue
		}
		st := r.m.students[k.student]
		if className != "" && st.ClassName != className {
			continue
		}
		out = append(out, models.CourseScoreEntry{StudentID: st.StudentID, Name: st.Name, ClassName: st.ClassName, Score: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (r memScores) ListAll(_ context.Context, _ db.Querier) ([]models.Score, error) {
	out := []models.Score{}
	for k, v := range r.m.scores {
		out = append(out, models.Score{StudentID: k.student, CourseID: k.course, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].CourseID < out[j].CourseID
	})
	return out, nil
}

// fixture wires every service to one in-memory database
type fixture struct {
	db       *memDB
	tx       *fakeTx
	auth     AuthService
	students StudentService
	courses  CourseService
	scores   ScoreService
	reports  ReportService
}

func newFixture() *fixture {
	m := newMemDB()
	tx := &fakeTx{}
	users, students, courses, scores := memUsers{m}, memStudents{m}, memCourses{m}, memScores{m}
	return &fixture{
		db:       m,
		tx:       tx,
		auth:     NewAuthService(tx, users, nopLogger),
		students: NewStudentService(tx, students, scores, nopLogger),
		courses:  NewCourseService(tx, courses, scores, nopLogger),
		scores:   NewScoreService(tx, students, courses, scores, nopLogger),
		reports:  NewReportService(tx, students, courses, scores, nopLogger),
	}
}

func (f *fixture) addStudent(id, name, class string) {
	f.db.students[id] = models.Student{StudentID: id, Name: name, Gender: models.GenderFemale, ClassName: class}
}

func (f *fixture) addCourse(id, name string, credit int) {
	f.db.courses[id] = models.Course{CourseID: id, CourseName: name, Credit: credit}
}

func (f *fixture) addScore(sid, cid string, v float64) {
	f.db.scores[scoreKey{sid, cid}] = v
}
