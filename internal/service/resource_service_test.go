package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/policy"
)

type resourceServiceMocks struct {
	resources    *MockResourceRepository
	institutions *MockInstitutionRepository
	users        *MockUserService
}

func newResourceServiceForTest() (ResourceService, resourceServiceMocks) {
	m := resourceServiceMocks{
		resources:    new(MockResourceRepository),
		institutions: new(MockInstitutionRepository),
		users:        new(MockUserService),
	}
	return NewResourceService(m.resources, m.institutions, m.users), m
}

func TestResourceService_Create(t *testing.T) {
	actor := &auth.Identity{ID: "user-1", Role: auth.RoleInstitution}
	input := CreateResourceInput{
		InstitutionID: "unilag",
		Title:         "Past Questions 2025",
		URL:           "https://unilag.edu.ng/past-questions.pdf",
		ResourceType:  "document",
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newResourceServiceForTest()

		m.institutions.On("FindByID", mock.Anything, "unilag").
			Return(&model.Institution{ID: "unilag"}, nil)
		m.resources.On("Create", mock.Anything, mock.MatchedBy(func(r *model.StudentResource) bool {
			return r.InstitutionID == "unilag" && r.Title == input.Title && r.CreatedBy == actor.ID
		})).Return(nil)

		resource, err := svc.Create(context.Background(), actor, input)
		require.NoError(t, err)
		assert.NotEmpty(t, resource.ID)
		m.resources.AssertExpectations(t)
	})

	t.Run("unknown institution", func(t *testing.T) {
		svc, m := newResourceServiceForTest()

		m.institutions.On("FindByID", mock.Anything, "unilag").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(context.Background(), actor, input)
		assert.ErrorIs(t, err, apperrors.ErrInstitutionNotFound)
		m.resources.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResourceService_ListByInstitution(t *testing.T) {
	svc, m := newResourceServiceForTest()

	m.resources.On("ListByInstitution", mock.Anything, "unilag", 0, defaultFeedLimit).
		Return([]model.StudentResource{{ID: "res-1", InstitutionID: "unilag"}}, nil)

	resources, err := svc.ListByInstitution(context.Background(), "unilag", 0, 0)
	require.NoError(t, err)
	assert.Len(t, resources, 1)
}

func TestResourceService_Delete(t *testing.T) {
	stored := &model.StudentResource{
		ID:            "res-1",
		InstitutionID: "unilag",
		Title:         "Past Questions 2025",
		CreatedBy:     "user-1",
	}

	t.Run("creator deletes", func(t *testing.T) {
		svc, m := newResourceServiceForTest()
		actor := &auth.Identity{ID: "user-1", Role: auth.RoleInstitution}

		m.resources.On("FindByID", mock.Anything, "res-1").Return(stored, nil)
		m.users.On("Affiliation", mock.Anything, actor.ID).Return(policy.Affiliation{}, nil)
		m.resources.On("Delete", mock.Anything, "res-1").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), actor, "res-1"))
		m.resources.AssertExpectations(t)
	})

	t.Run("institution admin of the owning school deletes", func(t *testing.T) {
		svc, m := newResourceServiceForTest()
		actor := &auth.Identity{ID: "user-2", Role: auth.RoleInstitution}

		m.resources.On("FindByID", mock.Anything, "res-1").Return(stored, nil)
		m.users.On("Affiliation", mock.Anything, actor.ID).
			Return(policy.Affiliation{InstitutionID: "unilag", InstitutionAdmin: true}, nil)
		m.resources.On("Delete", mock.Anything, "res-1").Return(nil)

		require.NoError(t, svc.Delete(context.Background(), actor, "res-1"))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		svc, m := newResourceServiceForTest()
		actor := &auth.Identity{ID: "user-3", Role: auth.RoleStudent}

		m.resources.On("FindByID", mock.Anything, "res-1").Return(stored, nil)
		m.users.On("Affiliation", mock.Anything, actor.ID).Return(policy.Affiliation{}, nil)

		err := svc.Delete(context.Background(), actor, "res-1")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.resources.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown resource", func(t *testing.T) {
		svc, m := newResourceServiceForTest()
		actor := &auth.Identity{ID: "user-1", Role: auth.RoleInstitution}

		m.resources.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(context.Background(), actor, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}
