package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"pkgadmin/internal/api/handler/v1handler"
	"testing"

	"pkgadmin/pkg/logger"
	"pkgadmin/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Code)
	require.Equal(t, "resource not found", res.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Code)
	require.Equal(t, "limit must be a positive integer", res.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Code)
	require.Equal(t, "internal error", res.Message)
}

func TestNewError_WrappedServiceError_KeepsFields(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	fields := serrors.FieldErrors{}
	fields.Add("name", "Invalid package name")
	err := fmt.Errorf("could not create package: %w",
		serrors.WithFields(serrors.ErrUnprocessable, fields, "Validations failed for package 'x'."))

	res := h.NewError(ctx, err)
	require.Equal(t, 422, res.StatusCode)
	require.Equal(t, serrors.ErrUnprocessable.Error(), res.Code)
	require.Equal(t, "Validations failed for package 'x'.", res.Message)
	require.Equal(t, []string{"Invalid package name"}, res.Fields["name"])
}

func TestNewError_PreconditionFailed(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrPreconditionFailed, "stale"))
	require.Equal(t, 412, res.StatusCode)
	require.Equal(t, "stale", res.Message)
}
