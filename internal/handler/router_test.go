package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/internal/service"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

type fakeTokens map[string]*models.JWTClaims

func (f fakeTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := f[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) List(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUsers) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	user := models.User{ID: int64(len(f.users) + 1), Name: req.Name, PasswordHash: "hashed", Role: models.UserRole(req.Role)}
	f.users = append(f.users, user)
	return &user, nil
}

type fakeTeachers struct {
	items map[int64]models.Teacher
}

func (f *fakeTeachers) List(ctx context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(f.items))
	for _, t := range f.items {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTeachers) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := f.items[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeTeachers) Create(ctx context.Context, req dto.TeacherRequest) (*models.Teacher, error) {
	teacher := req.ToModel(int64(len(f.items) + 1))
	f.items[teacher.ID] = *teacher
	return teacher, nil
}

func (f *fakeTeachers) Update(ctx context.Context, id int64, req dto.TeacherRequest) (*models.Teacher, error) {
	if _, ok := f.items[id]; !ok {
		return nil, appErrors.ErrNotFound
	}
	teacher := req.ToModel(id)
	f.items[id] = *teacher
	return teacher, nil
}

func (f *fakeTeachers) Delete(ctx context.Context, id int64) error {
	delete(f.items, id)
	return nil
}

type memoryLessons struct {
	items map[int64]models.Lesson
}

func (m *memoryLessons) FindAllComplete(ctx context.Context) ([]models.LessonDetail, error) {
	out := make([]models.LessonDetail, 0, len(m.items))
	for _, l := range m.items {
		teacher, course := "Rui", "Go"
		out = append(out, models.LessonDetail{Lesson: l, TeacherName: &teacher, ClassCourse: &course})
	}
	return out, nil
}

func (m *memoryLessons) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if l, ok := m.items[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (m *memoryLessons) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = int64(len(m.items) + 1)
	m.items[lesson.ID] = *lesson
	return nil
}

func (m *memoryLessons) Update(ctx context.Context, lesson *models.Lesson) error {
	if _, ok := m.items[lesson.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[lesson.ID] = *lesson
	return nil
}

func (m *memoryLessons) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type memoryEnrollments struct {
	items map[int64]models.ClassStudent
}

func (m *memoryEnrollments) resolve(link models.ClassStudent) models.ClassStudentDetail {
	student, course := "Ana", "Go"
	return models.ClassStudentDetail{ClassStudent: link, StudentName: &student, ClassCourse: &course}
}

func (m *memoryEnrollments) FindAllComplete(ctx context.Context) ([]models.ClassStudentDetail, error) {
	out := make([]models.ClassStudentDetail, 0, len(m.items))
	for _, link := range m.items {
		out = append(out, m.resolve(link))
	}
	return out, nil
}

func (m *memoryEnrollments) FindCompleteByID(ctx context.Context, id int64) (*models.ClassStudentDetail, error) {
	link, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	d := m.resolve(link)
	return &d, nil
}

func (m *memoryEnrollments) Create(ctx context.Context, link *models.ClassStudent) error {
	link.ID = int64(len(m.items) + 1)
	m.items[link.ID] = *link
	return nil
}

func (m *memoryEnrollments) Update(ctx context.Context, link *models.ClassStudent) error {
	if _, ok := m.items[link.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[link.ID] = *link
	return nil
}

func (m *memoryEnrollments) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func testRouter(pingErr error) (*gin.Engine, *fakeUsers) {
	users := &fakeUsers{}
	routes := Routes{
		Students: NewStudentHandler(newFakeStudents(), &fakeRoster{}, 0),
		Teachers: NewTeacherHandler(&fakeTeachers{items: map[int64]models.Teacher{}}),
		Lessons:  NewLessonHandler(service.NewLessonService(&memoryLessons{items: map[int64]models.Lesson{}}, nil, nil)),
		ClassStudents: NewClassStudentHandler(service.NewClassStudentService(
			&memoryEnrollments{items: map[int64]models.ClassStudent{}}, nil, nil, nil)),
		Users:    NewUserHandler(users),
		Auth:     NewAuthHandler(nil),
		Metrics:  NewMetricsHandler(nil, fakePinger{err: pingErr}),
		Tokens: fakeTokens{
			"marketing-token": {UserID: 1, Name: "marta", Role: models.RoleMarketing},
			"manager-token":   {UserID: 2, Name: "paula", Role: models.RoleManager},
		},
	}
	r := gin.New()
	routes.Register(r, "/api")
	return r, users
}

func serve(r http.Handler, req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterStudentRegistrationRequiresRole(t *testing.T) {
	r, _ := testRouter(nil)
	body := dto.StudentRequest{NationalID: "12345678901", Name: "Ana"}

	w := serve(r, jsonRequest(http.MethodPost, "/api/students", body), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, jsonRequest(http.MethodPost, "/api/students", body), "marketing-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/students?name=An", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.StudentResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Len(t, list, 1)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/students/export", nil), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterUsersListRequiresManager(t *testing.T) {
	r, _ := testRouter(nil)

	w := serve(r, jsonRequest(http.MethodPost, "/api/users", dto.UserRequest{Name: "paula", Password: "secret1", Role: "manager"}), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hashed")

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/users", nil), "marketing-token")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/users", nil), "manager-token")
	require.Equal(t, http.StatusOK, w.Code)
	var users []dto.UserResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "paula", users[0].Name)
}

func TestRouterTeacherCRUD(t *testing.T) {
	r, _ := testRouter(nil)

	w := serve(r, jsonRequest(http.MethodPost, "/api/teachers", dto.TeacherRequest{Name: "Rui", Email: "rui@school.test"}), "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []dto.TeacherResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Len(t, list, 1)

	w = serve(r, jsonRequest(http.MethodPut, "/api/teachers/9", dto.TeacherRequest{Name: "Rui", Email: "rui@school.test"}), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/teachers/1", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var teacher dto.TeacherResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &teacher))
	assert.Equal(t, "Rui", teacher.Name)

	w = serve(r, httptest.NewRequest(http.MethodDelete, "/api/teachers/1", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestRouterLessons(t *testing.T) {
	r, _ := testRouter(nil)

	w := serve(r, jsonRequest(http.MethodPost, "/api/lessons", dto.LessonRequest{TeacherID: 1, ClassID: 1}), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Error)
	require.Len(t, env.Error.Details, 1)
	assert.Equal(t, "subject", env.Error.Details[0].Field)

	w = serve(r, jsonRequest(http.MethodPost, "/api/lessons", dto.LessonRequest{Subject: "Algebra", TeacherID: 1, ClassID: 1}), "")
	require.Equal(t, http.StatusOK, w.Code)
	var lessons []dto.LessonResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &lessons))
	require.Len(t, lessons, 1)
	assert.Equal(t, dto.LessonResponse{ID: 1, Subject: "Algebra", TeacherID: 1, ClassID: 1, Teacher: "Rui", Class: "Go"}, lessons[0])

	w = serve(r, jsonRequest(http.MethodPut, "/api/lessons/7", dto.LessonRequest{Subject: "Algebra", TeacherID: 1, ClassID: 1}), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterClassStudents(t *testing.T) {
	r, _ := testRouter(nil)

	w := serve(r, jsonRequest(http.MethodPost, "/api/class-students", dto.ClassStudentRequest{ClassID: 1}), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "student_id", decode(t, w).Error.Details[0].Field)

	w = serve(r, jsonRequest(http.MethodPost, "/api/class-students", dto.ClassStudentRequest{ClassID: 1, StudentID: 2}), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/class-students/1", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	var link dto.ClassStudentResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &link))
	assert.Equal(t, dto.ClassStudentResponse{ID: 1, ClassID: 1, StudentID: 2, Student: "Ana", Class: "Go"}, link)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/class-students/abc", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodDelete, "/api/class-students/1", nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
}

func TestRouterAuthMe(t *testing.T) {
	r, _ := testRouter(nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), "manager-token")
	require.Equal(t, http.StatusOK, w.Code)
	var info models.UserInfo
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &info))
	assert.Equal(t, models.UserInfo{ID: 2, Name: "paula", Role: models.RoleManager}, info)
}

func TestRouterProbes(t *testing.T) {
	r, _ := testRouter(nil)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/health", nil), "").Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ready", nil), "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil), "").Code)

	down, _ := testRouter(errors.New("connection refused"))
	w := serve(down, httptest.NewRequest(http.MethodGet, "/ready", nil), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
