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
)

func TestCommunityService_Create(t *testing.T) {
	actor := &auth.Identity{ID: "user-1", Role: auth.RoleStudent}

	t.Run("creator is enrolled", func(t *testing.T) {
		communities := new(MockCommunityRepository)
		svc := NewCommunityService(communities)

		communities.On("FindByName", mock.Anything, "naija devs").
			Return(nil, gorm.ErrRecordNotFound)
		communities.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Community) bool {
			return c.Name == "naija devs" && c.CreatedBy == actor.ID
		})).Return(nil)
		communities.On("AddMember", mock.Anything, mock.MatchedBy(func(member *model.CommunityMember) bool {
			return member.UserID == actor.ID
		})).Return(nil)

		community, err := svc.Create(context.Background(), actor, "naija devs", "dev talk")
		require.NoError(t, err)
		assert.NotEmpty(t, community.ID)
		communities.AssertExpectations(t)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		communities := new(MockCommunityRepository)
		svc := NewCommunityService(communities)

		communities.On("FindByName", mock.Anything, "naija devs").
			Return(&model.Community{ID: "comm-1", Name: "naija devs"}, nil)

		_, err := svc.Create(context.Background(), actor, "naija devs", "dev talk")
		assert.ErrorIs(t, err, apperrors.ErrNameTaken)
		communities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCommunityService_Leave(t *testing.T) {
	actor := &auth.Identity{ID: "user-1", Role: auth.RoleStudent}

	communities := new(MockCommunityRepository)
	svc := NewCommunityService(communities)

	communities.On("FindMember", mock.Anything, actor.ID, "comm-1").
		Return(nil, gorm.ErrRecordNotFound)

	err := svc.Leave(context.Background(), actor, "comm-1")
	assert.ErrorIs(t, err, apperrors.ErrNotMember)
}
