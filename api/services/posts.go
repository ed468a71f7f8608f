package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/EO-DataHub/eodhp-posts-filter/models"
)

// APIGetter is the subset of the REST client the posts service needs.
type APIGetter interface {
	Get(ctx context.Context, path string, params url.Values, out any) error
}

// PostsService fetches users and posts from the remote API.
type PostsService struct {
	API APIGetter
}

// NewPostsService creates a PostsService backed by api.
func NewPostsService(api APIGetter) *PostsService {
	return &PostsService{API: api}
}

// GetAllUsers retrieves the full user list.
func (s *PostsService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return GetJSON[[]models.User](ctx, s.API, "users", nil)
}

// GetAllPosts retrieves every post.
func (s *PostsService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	return GetJSON[[]models.Post](ctx, s.API, "posts", nil)
}

// GetPostsByAuthor retrieves the posts written by a single user.
func (s *PostsService) GetPostsByAuthor(ctx context.Context, userID int) ([]models.Post, error) {
	return GetJSON[[]models.Post](ctx, s.API, fmt.Sprintf("/users/%d/posts", userID), nil)
}
