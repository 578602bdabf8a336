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

type channelServiceMocks struct {
	channels      *MockChannelRepository
	users         *MockUserRepository
	notifications *MockNotificationService
}

func newChannelServiceForTest() (ChannelService, channelServiceMocks) {
	m := channelServiceMocks{
		channels:      new(MockChannelRepository),
		users:         new(MockUserRepository),
		notifications: new(MockNotificationService),
	}
	return NewChannelService(m.channels, m.users, m.notifications), m
}

func channelActor(role auth.Role) *auth.Identity {
	return &auth.Identity{
		ID:       "user-1",
		Email:    "ada@unilag.edu.ng",
		FullName: "Ada Obi",
		Role:     role,
	}
}

func TestChannelService_Create(t *testing.T) {
	svc, m := newChannelServiceForTest()
	actor := channelActor(auth.RoleStudent)

	m.channels.On("Create", mock.Anything, mock.MatchedBy(func(ch *model.Channel) bool {
		return ch.Name == "gists" && ch.CreatedBy == actor.ID && !ch.IsPrivate
	})).Return(nil)
	m.channels.On("AddMember", mock.Anything, mock.MatchedBy(func(member *model.ChannelMember) bool {
		return member.UserID == actor.ID && member.IsAdmin
	})).Return(nil)

	channel, err := svc.Create(context.Background(), actor, "gists", "campus gist", false)
	require.NoError(t, err)
	assert.NotEmpty(t, channel.ID)
	m.channels.AssertExpectations(t)
}

func TestChannelService_Join(t *testing.T) {
	t.Run("public channel", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindByID", mock.Anything, "chan-1").
			Return(&model.Channel{ID: "chan-1", Name: "gists"}, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(nil, gorm.ErrRecordNotFound)
		m.channels.On("AddMember", mock.Anything, mock.MatchedBy(func(member *model.ChannelMember) bool {
			return member.UserID == actor.ID && member.ChannelID == "chan-1" && !member.IsAdmin
		})).Return(nil)

		require.NoError(t, svc.Join(context.Background(), actor, "chan-1"))
		m.channels.AssertExpectations(t)
	})

	t.Run("private channel is invite only", func(t *testing.T) {
		svc, m := newChannelServiceForTest()

		m.channels.On("FindByID", mock.Anything, "chan-2").
			Return(&model.Channel{ID: "chan-2", IsPrivate: true}, nil)

		err := svc.Join(context.Background(), channelActor(auth.RoleStudent), "chan-2")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.channels.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})

	t.Run("already a member is a no-op", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindByID", mock.Anything, "chan-1").
			Return(&model.Channel{ID: "chan-1"}, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1"}, nil)

		require.NoError(t, svc.Join(context.Background(), actor, "chan-1"))
		m.channels.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc, m := newChannelServiceForTest()

		m.channels.On("FindByID", mock.Anything, "nope").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Join(context.Background(), channelActor(auth.RoleStudent), "nope")
		assert.ErrorIs(t, err, apperrors.ErrChannelNotFound)
	})
}

func TestChannelService_Leave(t *testing.T) {
	t.Run("member leaves", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1"}, nil)
		m.channels.On("RemoveMember", mock.Anything, actor.ID, "chan-1").Return(nil)

		require.NoError(t, svc.Leave(context.Background(), actor, "chan-1"))
		m.channels.AssertExpectations(t)
	})

	t.Run("non-member cannot leave", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(nil, gorm.ErrRecordNotFound)

		err := svc.Leave(context.Background(), actor, "chan-1")
		assert.ErrorIs(t, err, apperrors.ErrNotMember)
	})
}

func TestChannelService_Invite(t *testing.T) {
	channel := &model.Channel{ID: "chan-1", Name: "gists", IsPrivate: true}

	t.Run("channel admin invites and invitee is notified", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindByID", mock.Anything, "chan-1").Return(channel, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1", IsAdmin: true}, nil)
		m.users.On("FindByID", mock.Anything, "user-2").
			Return(&model.User{ID: "user-2"}, nil)
		m.channels.On("FindMember", mock.Anything, "user-2", "chan-1").
			Return(nil, gorm.ErrRecordNotFound)
		m.channels.On("AddMember", mock.Anything, mock.MatchedBy(func(member *model.ChannelMember) bool {
			return member.UserID == "user-2" && member.ChannelID == "chan-1"
		})).Return(nil)
		m.notifications.On("Notify", mock.Anything, "user-2", model.NotificationChannelInvite,
			mock.MatchedBy(func(payload map[string]interface{}) bool {
				return payload["channel_id"] == "chan-1" && payload["actor_id"] == actor.ID
			})).Return(nil)

		require.NoError(t, svc.Invite(context.Background(), actor, "chan-1", "user-2"))
		m.channels.AssertExpectations(t)
		m.notifications.AssertExpectations(t)
	})

	t.Run("plain member cannot invite", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindByID", mock.Anything, "chan-1").Return(channel, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1"}, nil)

		err := svc.Invite(context.Background(), actor, "chan-1", "user-2")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		m.channels.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
	})

	t.Run("platform admin may invite without membership rank", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleAdmin)

		m.channels.On("FindByID", mock.Anything, "chan-1").Return(channel, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1"}, nil)
		m.users.On("FindByID", mock.Anything, "user-2").
			Return(&model.User{ID: "user-2"}, nil)
		m.channels.On("FindMember", mock.Anything, "user-2", "chan-1").
			Return(nil, gorm.ErrRecordNotFound)
		m.channels.On("AddMember", mock.Anything, mock.Anything).Return(nil)
		m.notifications.On("Notify", mock.Anything, "user-2", model.NotificationChannelInvite, mock.Anything).
			Return(nil)

		require.NoError(t, svc.Invite(context.Background(), actor, "chan-1", "user-2"))
	})

	t.Run("unknown invitee", func(t *testing.T) {
		svc, m := newChannelServiceForTest()
		actor := channelActor(auth.RoleStudent)

		m.channels.On("FindByID", mock.Anything, "chan-1").Return(channel, nil)
		m.channels.On("FindMember", mock.Anything, actor.ID, "chan-1").
			Return(&model.ChannelMember{UserID: actor.ID, ChannelID: "chan-1", IsModerator: true}, nil)
		m.users.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		err := svc.Invite(context.Background(), actor, "chan-1", "ghost")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
