package remote

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/hopebridge/contentsync/internal/httpclient"
)

// ErrorKind classifies a remote failure
type ErrorKind string

// Error kinds
const (
	KindUnreachable      ErrorKind = "unreachable"
	KindTimeout          ErrorKind = "timeout"
	KindTransportFailure ErrorKind = "transport_failure"
	KindDecodeFailure    ErrorKind = "decode_failure"
)

// Sentinel errors matched with errors.Is against a *FetchError
var (
	ErrUnreachable = errors.New("remote unreachable")
	ErrTimeout     = errors.New("remote request timed out")
	ErrTransport   = errors.New("remote transport failure")
	ErrDecode      = errors.New("remote payload could not be decoded")
)

// FetchError is returned by Source implementations
type FetchError struct {
	Kind       ErrorKind
	Collection string
	Err        error
}

// Error implements error
func (e *FetchError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s fetching %s: %v", e.Kind, e.Collection, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrUnreachable:
		return e.Kind == KindUnreachable
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrTransport:
		return e.Kind == KindTransportFailure
	case ErrDecode:
		return e.Kind == KindDecodeFailure
	}
	return false
}

// NewFetchError wraps err for collection, classifying it
func NewFetchError(collection string, err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{Kind: Classify(err), Collection: collection, Err: err}
}

// Classify maps an error onto the remote error taxonomy
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return KindTransportFailure
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return KindTimeout
		}
		return KindUnreachable
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return KindTimeout
		}
		return KindUnreachable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindUnreachable
	}

	return KindTransportFailure
}

// IsNetworkError reports whether err means the server could not be reached at all,
// in which case the local store may answer instead.
func IsNetworkError(err error) bool {
	switch Classify(err) {
	case KindUnreachable, KindTimeout:
		return true
	case KindTransportFailure:
		var httpErr *httpclient.HTTPError
		// 5xx means the server is up but unhealthy; the local copy is still better than nothing
		return errors.As(err, &httpErr) && httpErr.StatusCode >= 500
	default:
		return false
	}
}
