// Package controller exposes every registered entity type as a generic CRUD
// surface, plus the navigation menu and schema description endpoints the
// rendering front-end consumes.
package controller

import (
	"net/http"

	"github.com/ThomasMo54/teaching-shop-example/registry"
	"github.com/ThomasMo54/teaching-shop-example/response"
	"github.com/ThomasMo54/teaching-shop-example/route"
	"github.com/ThomasMo54/teaching-shop-example/utils"

	"github.com/go-chi/chi"
	"gorm.io/gorm"
)

// AdminController serves the management API for a populated registry. The
// registry and database handle are injected at construction; routes are
// computed when the handler is mounted, so the registry is expected to be
// fully populated by then.
type AdminController struct {
	db       *gorm.DB
	registry *registry.Registry
}

func New(db *gorm.DB, reg *registry.Registry) *AdminController {
	return &AdminController{db: db, registry: reg}
}

// Endpoint is the URL segment of an entity, e.g. "/carrier" for Carrier.
func Endpoint(entry *registry.Entry) string {
	return "/" + utils.FirstLower(entry.Name)
}

type MenuItem struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Endpoint    string   `json:"endpoint"`
	ListDisplay []string `json:"listDisplay"`
}

// Menu lists the registered entities in registration order, with the
// columns their list screens should show.
func (a *AdminController) Menu(w http.ResponseWriter, r *http.Request) {
	items := []MenuItem{}
	for entry := range a.registry.All() {
		items = append(items, MenuItem{
			Name:        entry.Name,
			Label:       entry.Label(),
			Endpoint:    Endpoint(entry),
			ListDisplay: entry.Columns(),
		})
	}
	response.JSON(w, r, items)
}

func (a *AdminController) Routes() []route.Route {
	routes := []route.Route{route.Get("/", a.Menu)}
	for entry := range a.registry.All() {
		base := Endpoint(entry)
		routes = append(routes,
			route.Get(base, a.list(entry)),
			route.Get(base+"/structure", a.structure(entry)),
			route.Post(base, a.create(entry)),
		)
		if params := PrimaryFieldsToURL(entry.Schema); params != "" {
			routes = append(routes,
				route.Get(base+params, a.getOne(entry)),
				route.Patch(base+params, a.patchOne(entry)),
				route.Delete(base+params, a.delete(entry)),
			)
		}
	}
	return routes
}

// Handler mounts the admin routes on a chi router, with panic recovery in
// front of every handler.
func (a *AdminController) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer Recover(w, r)
			next.ServeHTTP(w, r)
		})
	})
	for _, rt := range a.Routes() {
		mux.MethodFunc(rt.Method, rt.Pattern, rt.Handler)
	}
	return mux
}
