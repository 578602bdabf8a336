package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lagtalk/internal/auth"
	"lagtalk/internal/cache"
	apperrors "lagtalk/internal/errors"
	"lagtalk/internal/model"
	"lagtalk/internal/policy"
	"lagtalk/internal/repository"
)

const (
	publicFeedCacheKey = "feed:public:first_page"
	publicFeedCacheTTL = 30 * time.Second
	defaultFeedLimit   = 100
)

// MediaInput references already-uploaded media attached to a new post.
type MediaInput struct {
	MediaType model.MediaType
	URL       string
	Metadata  string
}

// CreatePostInput carries the fields accepted when creating a post or reel.
type CreatePostInput struct {
	Content       string
	PostType      model.PostType
	Privacy       model.PostPrivacy
	IsSchoolScope bool
	ChannelID     string
	CommunityID   string
	Media         []MediaInput
}

// PostService applies the visibility policy around the post store.
type PostService interface {
	Create(ctx context.Context, actor *auth.Identity, input CreatePostInput) (*model.Post, error)
	Feed(ctx context.Context, actor *auth.Identity, skip, limit int, schoolScope string) ([]model.Post, error)
	Reels(ctx context.Context, actor *auth.Identity, skip, limit int) ([]model.Post, error)
	GetByID(ctx context.Context, actor *auth.Identity, id string) (*model.Post, error)
	ByInstitution(ctx context.Context, actor *auth.Identity, institutionID string, postType model.PostType, skip, limit int) ([]model.Post, error)
	Delete(ctx context.Context, actor *auth.Identity, id string) error
}

type postService struct {
	posts       repository.PostRepository
	channels    repository.ChannelRepository
	communities repository.CommunityRepository
	users       UserService
	cache       *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(
	posts repository.PostRepository,
	channels repository.ChannelRepository,
	communities repository.CommunityRepository,
	users UserService,
	cacheClient *cache.Client,
) PostService {
	return &postService{
		posts:       posts,
		channels:    channels,
		communities: communities,
		users:       users,
		cache:       cacheClient,
	}
}

// Create stores a new post. A school-scoped post resolves the author's
// institution; authors without one are rejected. Channel and community posts
// require membership.
func (s *postService) Create(ctx context.Context, actor *auth.Identity, input CreatePostInput) (*model.Post, error) {
	postType := input.PostType
	if postType == "" {
		postType = model.PostTypePost
	}
	privacy := input.Privacy
	if privacy == "" {
		privacy = model.PrivacyPublic
	}

	var schoolScope string
	if input.IsSchoolScope {
		aff, err := s.users.Affiliation(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if aff.InstitutionID == "" {
			return nil, apperrors.ErrNoInstitution
		}
		schoolScope = aff.InstitutionID
	}

	if input.ChannelID != "" {
		if _, err := s.channels.FindMember(ctx, actor.ID, input.ChannelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotMember
			}
			return nil, fmt.Errorf("lookup channel membership: %w", err)
		}
	}
	if input.CommunityID != "" {
		if _, err := s.communities.FindMember(ctx, actor.ID, input.CommunityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotMember
			}
			return nil, fmt.Errorf("lookup community membership: %w", err)
		}
	}

	post := &model.Post{
		ID:          uuid.New().String(),
		AuthorID:    actor.ID,
		Content:     input.Content,
		PostType:    postType,
		Privacy:     privacy,
		SchoolScope: schoolScope,
		ChannelID:   input.ChannelID,
		CommunityID: input.CommunityID,
	}
	for _, m := range input.Media {
		post.Media = append(post.Media, model.Media{
			ID:        uuid.New().String(),
			PostID:    post.ID,
			MediaType: m.MediaType,
			URL:       m.URL,
			Metadata:  m.Metadata,
		})
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	// new content makes the cached public page stale
	s.cache.Delete(ctx, publicFeedCacheKey)

	return post, nil
}

// Feed lists regular posts the actor may view, newest first. The anonymous
// first page is served from redis when possible.
func (s *postService) Feed(ctx context.Context, actor *auth.Identity, skip, limit int, schoolScope string) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}

	cacheable := actor == nil && schoolScope == "" && skip == 0 && limit == defaultFeedLimit
	if cacheable {
		if data, _ := s.cache.Get(ctx, publicFeedCacheKey); data != nil {
			var posts []model.Post
			if err := json.Unmarshal(data, &posts); err == nil {
				return posts, nil
			}
		}
	}

	candidates, err := s.posts.List(ctx, repository.PostFilter{
		PostType:    model.PostTypePost,
		SchoolScope: schoolScope,
		Skip:        skip,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts, err := s.filterVisible(ctx, actor, candidates)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(posts); err == nil {
			s.cache.Set(ctx, publicFeedCacheKey, data, publicFeedCacheTTL)
		}
	}
	return posts, nil
}

// Reels lists reel posts the actor may view.
func (s *postService) Reels(ctx context.Context, actor *auth.Identity, skip, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	candidates, err := s.posts.List(ctx, repository.PostFilter{
		PostType: model.PostTypeReel,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list reels: %w", err)
	}
	return s.filterVisible(ctx, actor, candidates)
}

// GetByID fetches one post. A post the actor may not view is reported as
// missing so its existence does not leak.
func (s *postService) GetByID(ctx context.Context, actor *auth.Identity, id string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("lookup post: %w", err)
	}

	aff, err := s.affiliationOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(actor, aff, contentOf(post)) {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

// ByInstitution lists an institution's posts the actor may view.
func (s *postService) ByInstitution(ctx context.Context, actor *auth.Identity, institutionID string, postType model.PostType, skip, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	candidates, err := s.posts.List(ctx, repository.PostFilter{
		PostType:    postType,
		SchoolScope: institutionID,
		Skip:        skip,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list institution posts: %w", err)
	}
	return s.filterVisible(ctx, actor, candidates)
}

// Delete removes a post when the actor owns it, is an admin, or administers
// the institution the post is scoped to.
func (s *postService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("lookup post: %w", err)
	}

	aff, err := s.affiliationOf(ctx, actor)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actor, aff, contentOf(post)) {
		return apperrors.ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.cache.Delete(ctx, publicFeedCacheKey)
	return nil
}

func (s *postService) filterVisible(ctx context.Context, actor *auth.Identity, candidates []model.Post) ([]model.Post, error) {
	aff, err := s.affiliationOf(ctx, actor)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(candidates))
	for _, post := range candidates {
		if policy.CanView(actor, aff, contentOf(&post)) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *postService) affiliationOf(ctx context.Context, actor *auth.Identity) (policy.Affiliation, error) {
	if actor == nil {
		return policy.Affiliation{}, nil
	}
	return s.users.Affiliation(ctx, actor.ID)
}

func contentOf(post *model.Post) policy.Content {
	return policy.Content{
		OwnerID:     post.AuthorID,
		Privacy:     post.Privacy,
		SchoolScope: post.SchoolScope,
	}
}
