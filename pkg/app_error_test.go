package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Merchant not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Merchant not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
		if e.ToHTTPError().Code != "NOT_FOUND" || e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("unexpected http error: %+v", e.ToHTTPError())
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("cause must not leak into the body: %+v", e.ToHTTPError())
		}
	})
}
