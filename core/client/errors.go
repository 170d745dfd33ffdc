package client

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/fabric"
)

type (
	// APIError is returned for non-2xx responses. Fabric is nil when the
	// response body is not a fabric error document.
	APIError struct {
		Method     string
		Path       string
		StatusCode int
		Fabric     *fabric.FabricError
	}
)

var (
	// ErrUnsupportedAPIVersion is returned by the operations requiring an
	// api version more recent than the declared cluster api version.
	ErrUnsupportedAPIVersion = errors.New("unsupported api version")
)

func (t *APIError) Error() string {
	s := fmt.Sprintf("%s %s: %d", t.Method, t.Path, t.StatusCode)
	if t.Fabric != nil {
		s += ": " + t.Fabric.Error()
	}
	return s
}

// Code returns the fabric error code, or an empty string.
func (t *APIError) Code() string {
	if t.Fabric == nil {
		return ""
	}
	return t.Fabric.Detail.Code
}

// IsNotFound returns true if err is an *APIError with a 404 status.
func IsNotFound(err error) bool {
	var e *APIError
	if !errors.As(err, &e) {
		return false
	}
	return e.StatusCode == 404
}
