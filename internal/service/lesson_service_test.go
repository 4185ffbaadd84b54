package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

type mockLessonRepo struct {
	items   map[int64]models.Lesson
	nextID  int64
	listErr error
}

func newMockLessonRepo() *mockLessonRepo {
	return &mockLessonRepo{items: map[int64]models.Lesson{}}
}

func (m *mockLessonRepo) FindAllComplete(ctx context.Context) ([]models.LessonDetail, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.LessonDetail, 0, len(m.items))
	for _, l := range m.items {
		out = append(out, models.LessonDetail{Lesson: l})
	}
	return out, nil
}

func (m *mockLessonRepo) FindByID(ctx context.Context, id int64) (*models.Lesson, error) {
	if l, ok := m.items[id]; ok {
		return &l, nil
	}
	return nil, nil
}

func (m *mockLessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	m.nextID++
	lesson.ID = m.nextID
	m.items[lesson.ID] = *lesson
	return nil
}

func (m *mockLessonRepo) Update(ctx context.Context, lesson *models.Lesson) error {
	if _, ok := m.items[lesson.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[lesson.ID] = *lesson
	return nil
}

func (m *mockLessonRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func TestLessonServiceLifecycle(t *testing.T) {
	repo := newMockLessonRepo()
	svc := NewLessonService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.LessonRequest{Subject: "Algebra", TeacherID: 1, ClassID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := svc.Update(ctx, created.ID, dto.LessonRequest{Subject: "Geometry", TeacherID: 1, ClassID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Geometry", updated.Subject)

	lessons, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.Equal(t, int64(3), lessons[0].ClassID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLessonServiceValidates(t *testing.T) {
	repo := newMockLessonRepo()
	svc := NewLessonService(repo, nil, nil)

	_, err := svc.Create(context.Background(), dto.LessonRequest{TeacherID: 1})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	fields := make([]string, len(appErr.Details))
	for i, d := range appErr.Details {
		fields[i] = d.Field
	}
	assert.Equal(t, []string{"subject", "class_id"}, fields)
	assert.Empty(t, repo.items)
}

func TestLessonServiceUpdateMissingIsNotFound(t *testing.T) {
	svc := NewLessonService(newMockLessonRepo(), nil, nil)

	_, err := svc.Update(context.Background(), 9, dto.LessonRequest{Subject: "Algebra", TeacherID: 1, ClassID: 2})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestLessonServiceWrapsStorageFailures(t *testing.T) {
	repo := newMockLessonRepo()
	repo.listErr = errors.New("connection reset")
	svc := NewLessonService(repo, nil, nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}

type mockClassRepo struct {
	items  map[int64]models.ClassGroup
	nextID int64
}

func (m *mockClassRepo) FindAllComplete(ctx context.Context) ([]models.ClassGroupDetail, error) {
	out := make([]models.ClassGroupDetail, 0, len(m.items))
	for _, c := range m.items {
		out = append(out, models.ClassGroupDetail{ClassGroup: c})
	}
	return out, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id int64) (*models.ClassGroup, error) {
	if c, ok := m.items[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.ClassGroup) error {
	m.nextID++
	class.ID = m.nextID
	m.items[class.ID] = *class
	return nil
}

func (m *mockClassRepo) Update(ctx context.Context, class *models.ClassGroup) error {
	if _, ok := m.items[class.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[class.ID] = *class
	return nil
}

func (m *mockClassRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func TestClassServiceValidatesCourseAndEdition(t *testing.T) {
	repo := &mockClassRepo{items: map[int64]models.ClassGroup{}}
	svc := NewClassService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.ClassRequest{})
	require.Error(t, err)
	assert.Len(t, appErrors.FromError(err).Details, 2)
	assert.Empty(t, repo.items)
}

func TestClassServiceDeleteDropsCachedStudents(t *testing.T) {
	repo := &mockClassRepo{items: map[int64]models.ClassGroup{}}
	cacheRepo := newMemoryCacheRepo()
	cacheRepo.values["students:list:"] = []models.Student{{Name: "Ana"}}
	svc := NewClassService(repo, nil, NewCacheService(cacheRepo, nil, 0, nil, true), nil)
	ctx := context.Background()

	class, err := svc.Create(ctx, dto.ClassRequest{Course: "Go", Edition: "2024.1"})
	require.NoError(t, err)
	assert.Empty(t, cacheRepo.invalidated)

	require.NoError(t, svc.Delete(ctx, class.ID))
	assert.Equal(t, []string{studentCachePattern}, cacheRepo.invalidated)
	assert.Empty(t, cacheRepo.values)
}
