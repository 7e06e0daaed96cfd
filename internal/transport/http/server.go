// package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service methods,
// and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/YusovID/defect-tracker/internal/apperrors"
	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/service"
	"github.com/YusovID/defect-tracker/internal/validation"
	"github.com/YusovID/defect-tracker/pkg/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error codes returned in the "code" field of error responses.
const (
	codeValidationFailed  = "VALIDATION_FAILED"
	codeInvalidRequest    = "INVALID_REQUEST"
	codeNotFound          = "NOT_FOUND"
	codeAlreadyExists     = "ALREADY_EXISTS"
	codeReferenceNotFound = "REFERENCE_NOT_FOUND"
	codeInternal          = "INTERNAL_ERROR"
)

// Server holds the dependencies for the HTTP server, including the logger and service interfaces.
type Server struct {
	log               *slog.Logger
	defectService     service.DefectService
	userService       service.UserService
	commentService    service.CommentService
	attachmentService service.AttachmentService
}

// NewServer creates a new instance of the HTTP server.
func NewServer(
	log *slog.Logger,
	ds service.DefectService,
	us service.UserService,
	cs service.CommentService,
	as service.AttachmentService,
) *Server {
	return &Server{
		log:               log,
		defectService:     ds,
		userService:       us,
		commentService:    cs,
		attachmentService: as,
	}
}

// Routes sets up the router with all middleware and API endpoints.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)

	mux.Get("/health", s.health)
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/defects", func(r chi.Router) {
		r.Post("/", s.createDefect)
		r.Get("/", s.listDefects)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getDefect)
			r.Put("/", s.updateDefect)
			r.Delete("/", s.deleteDefect)

			r.Post("/comments", s.createComment)
			r.Get("/comments", s.listComments)

			r.Post("/attachments", s.createAttachment)
			r.Get("/attachments", s.listAttachments)

			r.Get("/history", s.listStatusHistory)
		})
	})

	mux.Delete("/comments/{id}", s.deleteComment)
	mux.Delete("/attachments/{id}", s.deleteAttachment)

	mux.Route("/users", func(r chi.Router) {
		r.Post("/", s.createUser)
		r.Get("/", s.listUsers)
		r.Get("/{id}", s.getUser)
	})

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		s.respondError(w, http.StatusNotFound, codeNotFound, "route not found", nil)
	})

	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	const op = "internal.transport.http.health"

	total, err := s.defectService.Count(r.Context())
	if err != nil {
		s.log.Error("health check failed", slog.String("op", op), sl.Err(err))
		s.respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})

		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"total_defects": total,
	})
}

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respond is a helper function to encode data to JSON and write it to the response.
// It centralizes setting the Content-Type header and writing the status code.
func (s *Server) respond(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string, details []string) {
	s.respond(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// handleServiceError provides centralized error handling for all HTTP handlers.
// It logs the internal error and maps it to a user-friendly HTTP response.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var (
		failure       *domain.ValidationFailure
		validationErr *validation.ValidationError
		notFoundErr   *apperrors.NotFoundError
	)

	switch {
	case errors.As(err, &failure):
		log.Info("record rejected", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, codeValidationFailed, apperrors.ErrValidation.Error(), failure.Errors)
	case errors.As(err, &validationErr):
		log.Info("request parameters rejected", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, codeValidationFailed, apperrors.ErrValidation.Error(), validationErr.Errors)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Info("invalid request", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, codeInvalidRequest, err.Error(), nil)
	case errors.As(err, &notFoundErr):
		s.respondError(w, http.StatusNotFound, codeNotFound, notFoundErr.Error(), nil)
	case errors.Is(err, apperrors.ErrNotFound):
		s.respondError(w, http.StatusNotFound, codeNotFound, apperrors.ErrNotFound.Error(), nil)
	case errors.Is(err, apperrors.ErrAlreadyExists):
		var userExists *apperrors.UserAlreadyExistsError
		if errors.As(err, &userExists) {
			s.respondError(w, http.StatusConflict, codeAlreadyExists, userExists.Error(), nil)
			return
		}

		s.respondError(w, http.StatusConflict, codeAlreadyExists, apperrors.ErrAlreadyExists.Error(), nil)
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		s.respondError(w, http.StatusUnprocessableEntity, codeReferenceNotFound, apperrors.ErrReferenceNotFound.Error(), nil)
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondError(w, http.StatusInternalServerError, codeInternal, "internal server error", nil)
	}
}
