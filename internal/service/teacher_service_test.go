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

type mockTeacherRepo struct {
	items  map[int64]models.Teacher
	nextID int64
}

func (m *mockTeacherRepo) FindAllComplete(ctx context.Context) ([]models.Teacher, error) {
	result := make([]models.Teacher, 0, len(m.items))
	for _, t := range m.items {
		result = append(result, t)
	}
	return result, nil
}

func (m *mockTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := m.items[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	m.nextID++
	teacher.ID = m.nextID
	m.items[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	if _, ok := m.items[teacher.ID]; !ok {
		return appErrors.ErrNotFound
	}
	m.items[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepo) Delete(ctx context.Context, id int64) error {
	delete(m.items, id)
	return nil
}

func TestTeacherServiceLifecycle(t *testing.T) {
	repo := &mockTeacherRepo{items: map[int64]models.Teacher{}}
	svc := NewTeacherService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.TeacherRequest{Name: "Rui", Email: "rui@school.test", Shift: "morning"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated, err := svc.Update(ctx, created.ID, dto.TeacherRequest{Name: "Rui Costa", Email: "rui@school.test", Active: true, Shift: "evening"})
	require.NoError(t, err)
	assert.Equal(t, "Rui Costa", updated.Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "evening", got.Shift)
	assert.True(t, got.Active)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	missing, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeacherServiceUpdateMissingIsNotFound(t *testing.T) {
	repo := &mockTeacherRepo{items: map[int64]models.Teacher{}}
	svc := NewTeacherService(repo, nil, nil)

	_, err := svc.Update(context.Background(), 7, dto.TeacherRequest{Name: "Rui", Email: "rui@school.test"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestTeacherServiceRejectsInvalidEmail(t *testing.T) {
	repo := &mockTeacherRepo{items: map[int64]models.Teacher{}}
	svc := NewTeacherService(repo, nil, nil)

	_, err := svc.Create(context.Background(), dto.TeacherRequest{Name: "Rui", Email: "not-an-email"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "email", appErr.Details[0].Field)
	assert.Empty(t, repo.items)
}
