package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
)

func TestInstitutionService_Create(t *testing.T) {
	input := CreateInstitutionInput{Name: "University of Lagos", Location: "Lagos"}

	t.Run("success", func(t *testing.T) {
		institutions := new(MockInstitutionRepository)
		svc := NewInstitutionService(institutions)

		institutions.On("FindByName", mock.Anything, input.Name).
			Return(nil, gorm.ErrRecordNotFound)
		institutions.On("Create", mock.Anything, mock.MatchedBy(func(inst *model.Institution) bool {
			return inst.Name == input.Name && inst.ID != ""
		})).Return(nil)

		institution, err := svc.Create(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "Lagos", institution.Location)
		institutions.AssertExpectations(t)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		institutions := new(MockInstitutionRepository)
		svc := NewInstitutionService(institutions)

		institutions.On("FindByName", mock.Anything, input.Name).
			Return(&model.Institution{ID: "inst-1", Name: input.Name}, nil)

		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, apperrors.ErrNameTaken)
		institutions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInstitutionService_GetByID(t *testing.T) {
	institutions := new(MockInstitutionRepository)
	svc := NewInstitutionService(institutions)

	institutions.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
}
