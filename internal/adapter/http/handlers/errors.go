package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"happydeals/internal/usecase"
	"happydeals/pkg"
)

var kindStatus = map[usecase.Kind]struct {
	code   string
	status int
}{
	usecase.KindUnauthenticated:    {"UNAUTHENTICATED", http.StatusUnauthorized},
	usecase.KindInvalidArgument:    {"INVALID_ARGUMENT", http.StatusBadRequest},
	usecase.KindPermissionDenied:   {"PERMISSION_DENIED", http.StatusForbidden},
	usecase.KindNotFound:           {"NOT_FOUND", http.StatusNotFound},
	usecase.KindFailedPrecondition: {"FAILED_PRECONDITION", http.StatusPreconditionFailed},
}

// mapError renders use case errors. Client-facing kinds keep the error text;
// anything unclassified becomes an opaque internal error.
func mapError(err error) *pkg.AppError {
	if m, ok := kindStatus[usecase.ErrorKind(err)]; ok {
		return pkg.NewDomainError(m.code, err.Error(), err, m.status)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func invalidRequest() *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
