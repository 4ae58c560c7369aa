package api

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// Route is one endpoint with its authorization requirement.
type Route struct {
	Method      string
	Pattern     string
	RequireAuth bool
	Handler     http.HandlerFunc
}

// RouteTable holds the API routes and answers whether a request targets a
// route that requires authorization. It is built once and read-only after.
type RouteTable struct {
	basePath  string
	routes    []Route
	protected *chi.Mux
}

// NewRouteTable builds a table for routes mounted under basePath.
func NewRouteTable(basePath string, routes []Route) *RouteTable {
	protected := chi.NewRouter()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, rt := range routes {
		if rt.RequireAuth {
			protected.Method(rt.Method, joinPath(basePath, rt.Pattern), noop)
		}
	}
	return &RouteTable{
		basePath:  basePath,
		routes:    routes,
		protected: protected,
	}
}

// Routes returns the table's routes.
func (t *RouteTable) Routes() []Route {
	return t.routes
}

// Mount registers every route on r under the table's base path.
func (t *RouteTable) Mount(r chi.Router) {
	r.Route(t.basePath, func(r chi.Router) {
		for _, rt := range t.routes {
			r.Method(rt.Method, rt.Pattern, rt.Handler)
		}
	})
}

// RequiresAuth reports whether the request's method and path match a route
// marked RequireAuth. Unknown paths are not protected and fall through to the
// router's 404.
func (t *RouteTable) RequiresAuth(r *http.Request) bool {
	return t.protected.Match(chi.NewRouteContext(), r.Method, routingPath(r))
}

// routingPath returns the path chi dispatches on: the escaped form when the
// URL carries one, so %2F inside a segment stays inside that segment.
func routingPath(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}

func joinPath(base, pattern string) string {
	if pattern == "/" {
		return base
	}
	return path.Join(base, pattern)
}

// NewRoutes returns the API's routes. Handlers are wired here; the auth
// requirement of each route is read by the authentication gate.
func NewRoutes(authH *AuthHandler, userH *UserHandler, healthH *HealthHandler) []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/health", Handler: healthH.Check},

		{Method: http.MethodPost, Pattern: "/auth/login", Handler: authH.Login},
		{Method: http.MethodGet, Pattern: "/auth/me", RequireAuth: true, Handler: authH.Me},

		{Method: http.MethodPost, Pattern: "/users", Handler: userH.Register},
		{Method: http.MethodGet, Pattern: "/users", Handler: userH.List},
		{Method: http.MethodGet, Pattern: "/users/{id}", RequireAuth: true, Handler: userH.Get},
		{Method: http.MethodPut, Pattern: "/users/{id}", RequireAuth: true, Handler: userH.UpdateProfile},
		{Method: http.MethodPut, Pattern: "/users/{id}/password", RequireAuth: true, Handler: userH.ChangePassword},
		{Method: http.MethodDelete, Pattern: "/users/{id}", RequireAuth: true, Handler: userH.Delete},
	}
}
