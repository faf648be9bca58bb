package router

import (
	"net/http"

	"fanation-admin/app/controller"
	"fanation-admin/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth        *controller.AuthController
	Piece       *controller.PieceController
	User        *controller.UserController
	Composition *controller.CompositionController
	Export      *controller.ExportController
}

// New builds the dashboard router. Everything under /admin sits behind the
// auth guard, except the catalog render page, which headless Chrome visits
// during export and carries no session.
func New(controllers *Controllers, sessions service.SessionServiceInterface, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	// Public routes
	r.Get("/ping", pingHandler)
	r.Post("/login", controllers.Auth.Login)
	r.Get("/me", controllers.Auth.Me)
	r.Get("/admin/catalog/render", controllers.Export.Render)

	// Guarded routes
	r.Group(func(r chi.Router) {
		r.Use(AuthGuard(sessions))

		r.Post("/logout", controllers.Auth.Logout)

		r.Route("/admin/pieces", func(r chi.Router) {
			r.Get("/", controllers.Piece.List)
			r.Get("/counts", controllers.Piece.Counts)
			r.Get("/options", controllers.Piece.Options)
			r.Get("/sku/{sku}", controllers.Piece.GetBySKU)
			r.Post("/", controllers.Piece.Create)
			r.Post("/upload", controllers.Piece.Upload)
			r.Get("/{id}", controllers.Piece.Get)
			r.Put("/{id}", controllers.Piece.Update)
			r.Put("/{id}/image", controllers.Piece.UpdateImage)
			r.Delete("/{id}", controllers.Piece.Delete)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", controllers.User.List)
			r.Post("/", controllers.User.Create)
			r.Put("/{id}", controllers.User.Update)
			r.Delete("/{id}", controllers.User.Delete)
		})

		r.Route("/admin/composite", func(r chi.Router) {
			r.Get("/", controllers.Composition.Snapshot)
			r.Post("/", controllers.Composition.Enter)
			r.Post("/move", controllers.Composition.Move)
			r.Delete("/layers/{id}", controllers.Composition.Remove)
			r.Get("/download", controllers.Composition.Download)
		})

		r.Get("/admin/catalog/export", controllers.Export.Export)
		r.Get("/admin/catalog/export.pdf", controllers.Export.ExportPDF)
	})

	return r
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
