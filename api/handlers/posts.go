package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/EO-DataHub/eodhp-posts-filter/api/router"
	"github.com/EO-DataHub/eodhp-posts-filter/api/services"
	"github.com/EO-DataHub/eodhp-posts-filter/internal/filter"
	"github.com/EO-DataHub/eodhp-posts-filter/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var postsTemplate = template.Must(template.ParseFS(templateFS, "templates/posts.html"))

// PostsFetcher is implemented by services.PostsService.
type PostsFetcher interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostsByAuthor(ctx context.Context, userID int) ([]models.Post, error)
}

// PostsView renders the users and posts, optionally narrowed to the author in
// the {id} path variable and to posts matching the q query parameter.
func PostsView(svc PostsFetcher, basePath string) http.HandlerFunc {
	basePath = strings.TrimRight(basePath, "/")

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := models.PostsPage{
			Route:    router.RouteName(r),
			Query:    r.URL.Query().Get("q"),
			BasePath: basePath,
		}

		logger := zerolog.Ctx(ctx).With().Str("route", page.Route).Logger()

		if rawID, ok := mux.Vars(r)["id"]; ok {
			if id, err := strconv.Atoi(rawID); err == nil {
				page.AuthorID = &id
			} else {
				logger.Debug().Str("id", rawID).Msg("ignoring non-numeric author id")
			}
		}

		users, err := svc.GetAllUsers(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to fetch users")
			writeUpstreamError(w, r, err)
			return
		}

		var posts []models.Post
		if page.AuthorID != nil {
			posts, err = svc.GetPostsByAuthor(ctx, *page.AuthorID)
		} else {
			posts, err = svc.GetAllPosts(ctx)
		}
		if err != nil {
			logger.Error().Err(err).Msg("Failed to fetch posts")
			writeUpstreamError(w, r, err)
			return
		}

		if users == nil {
			users = []models.User{}
		}
		if posts == nil {
			posts = []models.Post{}
		}

		page.Users = users
		page.Posts = filter.Posts(posts, page.Query)
		page.Authors = filter.Authors(users)

		logger.Info().Int("user_count", len(page.Users)).Int("post_count", len(page.Posts)).Msg("Successfully retrieved posts")

		if wantsJSON(r) {
			WriteResponse(w, http.StatusOK, models.Success(page))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := postsTemplate.Execute(w, page); err != nil {
			logger.Error().Err(err).Msg("Failed to render posts view")
		}
	}
}

func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	message := http.StatusText(status)

	var httpErr *services.HTTPError
	if errors.As(err, &httpErr) {
		message = httpErr.Message
	}

	if wantsJSON(r) {
		WriteResponse(w, status, models.Failure("upstream_error", errors.New(message)))
		return
	}
	http.Error(w, message, status)
}
