package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewAlreadyClaimed(map[string]any{"enquiry_id": int64(1)})

	mapped := ToDomainError(original)
	assert.Equal(t, "ALREADY_CLAIMED", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
}

func TestToDomainErrorWrapsNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorMapsFiberErrors(t *testing.T) {
	mapped := ToDomainError(fiber.NewError(http.StatusBadRequest, "bad input"))
	assert.Equal(t, "REQUEST_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "bad input", mapped.Message)
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	cause := errors.New("connection refused")

	mapped := ToDomainError(cause)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, "internal server error", mapped.Message)
	assert.ErrorIs(t, mapped, cause)
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	wrapped := NewInternalError(cause)

	var domainErr *DomainError
	require.ErrorAs(t, wrapped, &domainErr)
	assert.Equal(t, cause, domainErr.Unwrap())
}

func TestInvalidCredentialsStableShape(t *testing.T) {
	first := ToDomainError(NewInvalidCredentials())
	second := ToDomainError(NewInvalidCredentials())

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, http.StatusUnauthorized, first.HTTPStatus)
}
