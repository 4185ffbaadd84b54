package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	appErrors "github.com/noah-isme/school-registry-api/pkg/errors"
)

type mockClassStudentRepo struct {
	items  map[int64]models.ClassStudent
	nextID int64
}

func newMockClassStudentRepo() *mockClassStudentRepo {
	return &mockClassStudentRepo{items: map[int64]models.ClassStudent{}}
}

func (m *mockClassStudentRepo) detail(link models.ClassStudent) models.ClassStudentDetail {
	name, course := "Ana", "Go"
	return models.ClassStudentDetail{ClassStudent: link, StudentName: &name, ClassCourse: &course}
}

func (m *mockClassStudentRepo) FindAllComplete(ctx context.Context) ([]models.ClassStudentDetail, error) {
	out := make([]models.ClassStudentDetail, 0, len(m.items))
	for _, link := range m.items {
		out = append(out, m.detail(link))
	}
	return out, nil
}

func (m *mockClassStudentRepo) FindCompleteByID(ctx context.Context, id int64) (*models.ClassStudentDetail, error) {
	link, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	d := m.detail(link)
	return &d, nil
}

func (m *mockClassStudentRepo) Create(ctx context.Context, link *models.ClassStudent) error {
	m.nextID++
	link.ID = m.nextID
	m.items[link.ID] = *link
	return nil
}

func (m *mockClassStudentRepo) Update(ctx context.Context, link *models.ClassStudent) error {
	if _, ok := m.items[link.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[link.ID] = *link
	return nil
}

func (m *mockClassStudentRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func TestClassStudentServiceMutationsDropCachedStudents(t *testing.T) {
	repo := newMockClassStudentRepo()
	cacheRepo := newMemoryCacheRepo()
	svc := NewClassStudentService(repo, nil, NewCacheService(cacheRepo, nil, 0, nil, true), nil)
	ctx := context.Background()

	link, err := svc.Create(ctx, dto.ClassStudentRequest{ClassID: 1, StudentID: 2})
	require.NoError(t, err)
	_, err = svc.Update(ctx, link.ID, dto.ClassStudentRequest{ClassID: 3, StudentID: 2})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, link.ID))

	assert.Equal(t, []string{studentCachePattern, studentCachePattern, studentCachePattern}, cacheRepo.invalidated)
}

func TestClassStudentServiceResolvesNames(t *testing.T) {
	repo := newMockClassStudentRepo()
	svc := NewClassStudentService(repo, nil, nil, nil)
	ctx := context.Background()

	link, err := svc.Create(ctx, dto.ClassStudentRequest{ClassID: 1, StudentID: 2})
	require.NoError(t, err)

	got, err := svc.Get(ctx, link.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", *got.StudentName)

	missing, err := svc.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClassStudentServiceInvalidLinkLeavesCache(t *testing.T) {
	repo := newMockClassStudentRepo()
	cacheRepo := newMemoryCacheRepo()
	svc := NewClassStudentService(repo, nil, NewCacheService(cacheRepo, nil, 0, nil, true), nil)

	_, err := svc.Create(context.Background(), dto.ClassStudentRequest{ClassID: 1})
	require.Error(t, err)
	assert.Equal(t, "student_id", appErrors.FromError(err).Details[0].Field)
	assert.Empty(t, repo.items)
	assert.Empty(t, cacheRepo.invalidated)
}

type mockClassTeacherRepo struct {
	items  map[int64]models.ClassTeacher
	nextID int64
}

func (m *mockClassTeacherRepo) FindAllComplete(ctx context.Context) ([]models.ClassTeacherDetail, error) {
	out := make([]models.ClassTeacherDetail, 0, len(m.items))
	for _, link := range m.items {
		out = append(out, models.ClassTeacherDetail{ClassTeacher: link})
	}
	return out, nil
}

func (m *mockClassTeacherRepo) FindCompleteByID(ctx context.Context, id int64) (*models.ClassTeacherDetail, error) {
	if link, ok := m.items[id]; ok {
		return &models.ClassTeacherDetail{ClassTeacher: link}, nil
	}
	return nil, nil
}

func (m *mockClassTeacherRepo) Create(ctx context.Context, link *models.ClassTeacher) error {
	m.nextID++
	link.ID = m.nextID
	m.items[link.ID] = *link
	return nil
}

func (m *mockClassTeacherRepo) Update(ctx context.Context, link *models.ClassTeacher) error {
	if _, ok := m.items[link.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[link.ID] = *link
	return nil
}

func (m *mockClassTeacherRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func TestClassTeacherServiceLifecycle(t *testing.T) {
	repo := &mockClassTeacherRepo{items: map[int64]models.ClassTeacher{}}
	svc := NewClassTeacherService(repo, nil, nil)
	ctx := context.Background()

	link, err := svc.Create(ctx, dto.ClassTeacherRequest{ClassID: 1, TeacherID: 4})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 42, dto.ClassTeacherRequest{ClassID: 1, TeacherID: 4})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Create(ctx, dto.ClassTeacherRequest{TeacherID: 4})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	links, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, int64(4), links[0].TeacherID)

	require.NoError(t, svc.Delete(ctx, link.ID))
	require.NoError(t, svc.Delete(ctx, link.ID))
	assert.Empty(t, repo.items)
}
