package azdo

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
)

// ErrNoToken is returned by an Authenticator when no personal access token is
// known for a collection.
var ErrNoToken = errors.New("no personal access token found")

// Authenticator resolves the personal access token used for a collection.
// The collection is identified by its key (see CollectionKey).
type Authenticator interface {
	GetPAT(collection string) (string, error)
}

// AuthError reports that a collection rejected or could not be given credentials.
type AuthError struct {
	Collection string
	Err        error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication against %s failed: %s", e.Collection, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a REST error with status 401 or 403.
func IsUnauthorized(err error) bool {
	var statusCode *int
	var wrapped azuredevops.WrappedError
	var wrappedPtr *azuredevops.WrappedError
	switch {
	case errors.As(err, &wrapped):
		statusCode = wrapped.StatusCode
	case errors.As(err, &wrappedPtr) && wrappedPtr != nil:
		statusCode = wrappedPtr.StatusCode
	}
	if statusCode == nil {
		return false
	}
	return *statusCode == http.StatusUnauthorized || *statusCode == http.StatusForbidden
}
