package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	domainagg "github.com/yungbote/agroregistry-backend/internal/domain/aggregates"
)

func TestFromRegistryErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domainagg.NotFound(domainagg.KindHarvest, 9), http.StatusNotFound, "not_found"},
		{domainagg.DuplicateName(domainagg.KindCity, "name", "Campinas"), http.StatusConflict, "duplicate_name"},
		{domainagg.AreaInvariantViolation(5, 4, 8), http.StatusUnprocessableEntity, "invariant_violation"},
		{domainagg.InvalidReference(domainagg.KindState, "abc"), http.StatusBadRequest, "invalid_reference"},
		{domainagg.Invalid(domainagg.KindUser, "email", "bad"), http.StatusBadRequest, "validation"},
		{domainagg.StillReferenced(domainagg.KindState, 1, nil), http.StatusConflict, "conflict"},
		{domainagg.NewError(domainagg.CodeRetryable, "x", "locked", nil), http.StatusServiceUnavailable, "retryable"},
	}
	for _, tc := range cases {
		got := From(fmt.Errorf("wrapped: %w", tc.err))
		if got.Status != tc.status || got.Code != tc.code {
			t.Fatalf("From(%v): got status=%d code=%s", tc.err, got.Status, got.Code)
		}
		if tc.code != "retryable" && got.Details["suggestion"] == nil {
			t.Fatalf("From(%v): expected details with suggestion, got %+v", tc.err, got.Details)
		}
	}
}

func TestFromHidesInternalErrors(t *testing.T) {
	got := From(errors.New("pq: password authentication failed"))
	if got.Status != http.StatusInternalServerError || got.Code != "internal" || got.Error() != "internal error" {
		t.Fatalf("From: unexpected %+v (%q)", got, got.Error())
	}
	got = From(domainagg.NewError(domainagg.CodeInternal, "op", "secret detail", nil))
	if got.Error() != "internal error" {
		t.Fatalf("From: internal message leaked: %q", got.Error())
	}
	if From(nil) != nil {
		t.Fatalf("From(nil): expected nil")
	}
}

func TestFromKeepsAPIErrors(t *testing.T) {
	in := New(http.StatusUnauthorized, "unauthorized", errors.New("missing token"))
	if got := From(in); got != in {
		t.Fatalf("From: expected the same api error, got %+v", got)
	}
}
