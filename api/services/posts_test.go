package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EO-DataHub/eodhp-posts-filter/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUsers = []models.User{
	{
		ID:       1,
		Name:     "Leanne Graham",
		Username: "Bret",
		Email:    "Sincere@april.biz",
		Address: models.Address{
			Street:  "Kulas Light",
			Suite:   "Apt. 556",
			City:    "Gwenborough",
			Zipcode: "92998-3874",
			Geo:     models.Geo{Lat: "-37.3159", Lng: "81.1496"},
		},
		Phone:   "1-770-736-8031 x56442",
		Website: "hildegard.org",
		Company: models.Company{
			Name:        "Romaguera-Crona",
			CatchPhrase: "Multi-layered client-server neural-net",
			BS:          "harness real-time e-markets",
		},
	},
}

func TestGetAllUsers_ReturnsUnmodified(t *testing.T) {
	api := new(MockAPI)
	api.On("Get", mock.Anything, "users", mock.Anything).Return(testUsers, nil)

	svc := NewPostsService(api)
	users, err := svc.GetAllUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testUsers, users)
	api.AssertExpectations(t)
}

func TestGetAllPosts(t *testing.T) {
	posts := []models.Post{{UserID: 1, ID: 1, Title: "a", Body: "b"}, {UserID: 2, ID: 2, Title: "c", Body: "d"}}

	api := new(MockAPI)
	api.On("Get", mock.Anything, "posts", mock.Anything).Return(posts, nil)

	svc := NewPostsService(api)
	got, err := svc.GetAllPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, posts, got)
	api.AssertExpectations(t)
}

func TestGetPostsByAuthor_Path(t *testing.T) {
	api := new(MockAPI)
	api.On("Get", mock.Anything, "/users/42/posts", mock.Anything).Return([]models.Post{}, nil)

	svc := NewPostsService(api)
	_, err := svc.GetPostsByAuthor(context.Background(), 42)

	assert.NoError(t, err)
	api.AssertCalled(t, "Get", mock.Anything, "/users/42/posts", mock.Anything)
}

func TestGetPostsByAuthor_PropagatesError(t *testing.T) {
	upstream := &HTTPError{Message: "boom", Status: http.StatusServiceUnavailable}

	api := new(MockAPI)
	api.On("Get", mock.Anything, "/users/1/posts", mock.Anything).Return(nil, upstream)

	svc := NewPostsService(api)
	_, err := svc.GetPostsByAuthor(context.Background(), 1)

	assert.True(t, errors.Is(err, upstream))
}

func TestGetAllUsers_OverHTTP(t *testing.T) {
	mockResponse := `[{"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz",
		"address": {"street": "Kulas Light", "suite": "Apt. 556", "city": "Gwenborough", "zipcode": "92998-3874",
			"geo": {"lat": "-37.3159", "lng": "81.1496"}},
		"phone": "1-770-736-8031 x56442", "website": "hildegard.org",
		"company": {"name": "Romaguera-Crona", "catchPhrase": "Multi-layered client-server neural-net", "bs": "harness real-time e-markets"}}]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		_, _ = w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	svc := NewPostsService(NewRestAPIService(server.URL, 0))
	users, err := svc.GetAllUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testUsers, users)
}

func TestGetPostsByAuthor_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42/posts", r.URL.Path)
		_, _ = w.Write([]byte(`[{"userId": 42, "id": 9, "title": "t", "body": "b"}]`))
	}))
	defer server.Close()

	svc := NewPostsService(NewRestAPIService(server.URL+"/", 0))
	posts, err := svc.GetPostsByAuthor(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 42, posts[0].UserID)
}
