package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/tasklist/internal/model"
	"github.com/templui/tasklist/internal/repository"
	"github.com/templui/tasklist/internal/service"
	"github.com/templui/tasklist/internal/validation"
)

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"invalid id", fmt.Errorf("%w: %q", service.ErrInvalidID, "abc"), http.StatusBadRequest, `{"details":"Invalid id 12"}`},
		{"task not found", repository.ErrTaskNotFound, http.StatusNotFound, `{"details":"Task 12 not found"}`},
		{"goal not found", repository.ErrGoalNotFound, http.StatusNotFound, `{"details":"Goal 12 not found"}`},
		{"missing field", fmt.Errorf("wrapped: %w", model.ErrMissingField), http.StatusBadRequest, `{"details":"Invalid data"}`},
		{"validation", validation.ErrInvalid, http.StatusBadRequest, `{"details":"Invalid data"}`},
		{"body", errInvalidBody, http.StatusBadRequest, `{"details":"Invalid data"}`},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, `{"details":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tasks/12", nil)
			req.SetPathValue("id", "12")
			rec := httptest.NewRecorder()

			writeError(rec, req, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	decode := func(body string) (model.GoalFields, error) {
		var fields model.GoalFields
		req := httptest.NewRequest(http.MethodPost, "/goals", strings.NewReader(body))
		err := decodeJSON(httptest.NewRecorder(), req, &fields)
		return fields, err
	}

	fields, err := decode(`{"title":"Learn Go","extra":1}`)
	require.NoError(t, err)
	require.NotNil(t, fields.Title)
	assert.Equal(t, "Learn Go", *fields.Title)

	_, err = decode(`{"title":"a"}{"title":"b"}`)
	assert.ErrorIs(t, err, errInvalidBody)

	_, err = decode(`[1,2]`)
	assert.ErrorIs(t, err, errInvalidBody)

	_, err = decode(`{"title":"` + strings.Repeat("x", maxBodyBytes) + `"}`)
	assert.ErrorIs(t, err, errInvalidBody)
}

type pinger struct{ err error }

func (p pinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(pinger{}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHealthHandler(pinger{err: errors.New("db gone")}).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
