package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// recordingView writes the route name and the id var so tests can tell which
// route rendered it.
func recordingView() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-View", "posts")
		w.Header().Set("X-Route", RouteName(r))
		_, _ = w.Write([]byte(mux.Vars(r)["id"]))
	})
}

func serve(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoutes_UnmappedPathRendersSameView(t *testing.T) {
	r := New(Routes(), "", recordingView(), BeforeEach)

	root := serve(r, "/")
	unmapped := serve(r, "/foo/bar")

	assert.Equal(t, http.StatusOK, root.Code)
	assert.Equal(t, http.StatusOK, unmapped.Code)
	assert.Equal(t, root.Header().Get("X-View"), unmapped.Header().Get("X-View"))
	assert.Equal(t, NotFoundRoute, unmapped.Header().Get("X-Route"))
}

func TestRoutes_IDVar(t *testing.T) {
	r := New(Routes(), "", recordingView())

	w := serve(r, "/42")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())
}

func TestRoutes_Resolve(t *testing.T) {
	r := New(Routes(), "", recordingView())

	name, ok := Resolve(r, "/")
	assert.True(t, ok)
	assert.Equal(t, "", name)

	name, ok = Resolve(r, "/7")
	assert.True(t, ok)
	assert.Equal(t, "", name)

	name, ok = Resolve(r, "/foo/bar")
	assert.True(t, ok)
	assert.Equal(t, NotFoundRoute, name)
}

func TestBasePathRoutes_RootAndIDAreHome(t *testing.T) {
	r := New(BasePathRoutes(), DefaultBasePath, recordingView())

	name, ok := Resolve(r, "/vue-filter-table/")
	assert.True(t, ok)
	assert.Equal(t, HomeRoute, name)

	name, ok = Resolve(r, "/vue-filter-table/42")
	assert.True(t, ok)
	assert.Equal(t, HomeRoute, name)
}

func TestBasePathRoutes_OutsideBasePathIsNotFound(t *testing.T) {
	r := New(BasePathRoutes(), DefaultBasePath, recordingView(), BeforeEach)

	for _, path := range []string{"/", "/other", "/vue-filter-table/a/b"} {
		name, ok := Resolve(r, path)
		assert.True(t, ok, path)
		assert.Equal(t, NotFoundRoute, name, path)

		w := serve(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "posts", w.Header().Get("X-View"), path)
	}
}

func TestBasePathRoutes_TrailingSlashInBasePath(t *testing.T) {
	r := New(BasePathRoutes(), DefaultBasePath+"/", recordingView())

	name, ok := Resolve(r, "/vue-filter-table/")
	assert.True(t, ok)
	assert.Equal(t, HomeRoute, name)
}

func TestBeforeEach_AlwaysProceeds(t *testing.T) {
	calls := 0
	view := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	r := New(BasePathRoutes(), DefaultBasePath, view, BeforeEach)

	serve(r, "/vue-filter-table/")
	serve(r, "/vue-filter-table/3")
	serve(r, "/nowhere/at/all")

	assert.Equal(t, 3, calls)
}

func TestRoutes_RejectsNonGet(t *testing.T) {
	r := New(Routes(), "", recordingView())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
