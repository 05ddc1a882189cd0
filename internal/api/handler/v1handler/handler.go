// Package v1handler serves the package definition admin API: routing, bearer
// authentication, precondition (ETag) checks and the JSON representation of
// packages. Domain decisions are delegated to packages.Service.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"pkgadmin/internal/packages"
	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// MediaType is the content type of every response body.
	MediaType = "application/vnd.go.cd.v1+json; charset=utf-8"
	// DefaultBasePath is the path the router is mounted on.
	DefaultBasePath = "/api/admin"
)

type Deps struct {
	Packages     packages.Service
	Repositories packages.RepositoryFinder
	// BasePath is the path prefix used in hypermedia links. Defaults to DefaultBasePath.
	BasePath string
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.BasePath == "" {
		deps.BasePath = DefaultBasePath
	}

	return &Handler{deps: deps}
}

// Routes returns the router serving the package endpoints. Every route
// requires a valid bearer token checked by sec.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Get("/packages", h.Index)
	r.Post("/packages", h.Create)
	r.Get("/packages/{package_id}", h.Show)
	r.Put("/packages/{package_id}", h.Update)
	r.Delete("/packages/{package_id}", h.Destroy)
	r.Get("/packages/{package_id}/history", h.History)

	return r
}

// ErrorResponse is the status and body rendered for a failed request.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
	Fields     serrors.FieldErrors
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

// errorMappings are matched in order; the message is used when the error
// does not carry one.
var errorMappings = []errorMapping{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, "payload too large"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrPreconditionFailed, http.StatusPreconditionFailed, "precondition failed"},
	{serrors.ErrUnprocessable, http.StatusUnprocessableEntity, "unprocessable entity"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "timeout"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "rate limited"},
}

// NewError maps err to the response rendered to the client. Errors without a
// semantic kind, and ErrInternal, become a 500 whose details are only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		res := &ErrorResponse{
			StatusCode: m.status,
			Code:       m.kind.Error(),
			Message:    m.message,
		}
		var se *serrors.Error
		if errors.As(err, &se) {
			if se.Message() != "" {
				res.Message = se.Message()
			}
			res.Fields = se.Fields()
		}
		logger.Debug(ctx, "request failed", zap.String("code", res.Code), zap.Error(err))

		return res
	}

	logger.Error(ctx, err.Error())

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}
