// Package router holds the declarative route table of the posts application
// and builds a gorilla/mux router from it.
package router

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const (
	// HomeRoute names the root and author routes of the base path table.
	HomeRoute = "home"
	// NotFoundRoute names the catch-all route.
	NotFoundRoute = "not-found"
	// DefaultBasePath is where the base path table is mounted.
	DefaultBasePath = "/vue-filter-table"
)

// Route maps a path pattern to the view. A CatchAll route matches every path
// not matched by an earlier route.
type Route struct {
	Name     string
	Path     string
	CatchAll bool
}

// Table is an ordered list of routes.
type Table []Route

// Routes is the table served without a base path.
func Routes() Table {
	return Table{
		{Path: "/"},
		{Path: "/{id}"},
		{Name: NotFoundRoute, Path: "/", CatchAll: true},
	}
}

// BasePathRoutes is the table mounted under a base path, where both the root
// and the author route are named home.
func BasePathRoutes() Table {
	return Table{
		{Name: HomeRoute, Path: "/"},
		{Name: HomeRoute, Path: "/{id}"},
		{Name: NotFoundRoute, Path: "/", CatchAll: true},
	}
}

// New builds a router serving view for every route of table under basePath.
// The middlewares run, in order, before the view on every matched route.
func New(table Table, basePath string, view http.Handler, mws ...mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()

	base := r
	basePath = strings.TrimRight(basePath, "/")
	if basePath != "" {
		base = r.PathPrefix(basePath).Subrouter()
	}

	r.Use(mws...)

	for _, rt := range table {
		var route *mux.Route
		if rt.CatchAll {
			// The catch-all lives on the root router so it also catches
			// paths outside the base path.
			route = r.PathPrefix(rt.Path).Handler(view)
		} else {
			route = base.Handle(rt.Path, view)
		}
		route.Methods(http.MethodGet, http.MethodHead)
		if rt.Name != "" {
			route.Name(rt.Name)
		}
	}

	return r
}

// BeforeEach is the navigation guard. It lets every navigation through,
// including those matched by the catch-all.
func BeforeEach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		name := RouteName(r)
		if name == NotFoundRoute {
			logger.Debug().Str("route", name).Msg("navigating to unmatched path")
			next.ServeHTTP(w, r)
		} else {
			logger.Debug().Str("route", name).Msg("navigating")
			next.ServeHTTP(w, r)
		}
	})
}

// RouteName returns the name of the route that matched r, or an empty string.
func RouteName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	return route.GetName()
}

// Resolve reports the name of the route path matches and whether any route
// matched at all.
func Resolve(r *mux.Router, path string) (string, bool) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return "", false
	}

	var match mux.RouteMatch
	if !r.Match(req, &match) || match.Route == nil {
		return "", false
	}

	return match.Route.GetName(), true
}
