package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BookShelfServices01/books-management-api/internal/httpresp"
)

// Kind classifies a request failure. "Not found" and "not authorized"
// share one kind so responses never reveal whether a resource exists.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFoundOrForbidden
	KindAuthentication
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func NotFoundOrForbidden(message string) error {
	return &Error{Kind: KindNotFoundOrForbidden, Message: message}
}

func Authentication(message string) error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Internal(message string) error {
	return &Error{Kind: KindInternal, Message: message}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict, KindNotFoundOrForbidden:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Write maps err to an HTTP status and emits the failure envelope.
// Errors that are not an *Error are reported as internal failures with
// the underlying message exposed.
func Write(c *gin.Context, err error) {
	if e, ok := err.(*Error); ok {
		httpresp.Fail(c, statusFor(e.Kind), e.Message)
		return
	}
	httpresp.Fail(c, http.StatusInternalServerError, err.Error())
}
