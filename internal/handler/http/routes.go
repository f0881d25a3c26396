package http

import (
	"net/http"

	"github.com/avelkin/courses-api/internal/utils"
	"github.com/avelkin/courses-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.greeting)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Post("/users", h.createUser)
		r.Get("/courses", h.listCourses)
		r.Get("/courses/{id}", h.getCourse)

		// routes behind the Basic auth gate
		r.Group(func(r chi.Router) {
			r.Use(h.basicAuth)

			r.Get("/users", h.getCurrentUser)
			r.Post("/courses", h.createCourse)
			r.Put("/courses/{id}", h.updateCourse)
			r.Delete("/courses/{id}", h.deleteCourse)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// greeting serves the root route.
func (h *Handler) greeting(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome to the REST API project!"}, http.StatusOK)
}

// routeNotFound is the fallback for every unmatched path.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Route Not Found"}, http.StatusNotFound)
}
