package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hopebridge/contentsync/internal/httpclient"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantKind    ErrorKind
		wantNetwork bool
	}{
		{
			name: "nil",
			err:  nil,
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("failed to execute request: %w", context.DeadlineExceeded),
			wantKind:    KindTimeout,
			wantNetwork: true,
		},
		{
			name:        "connection refused",
			err:         &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			wantKind:    KindUnreachable,
			wantNetwork: true,
		},
		{
			name:        "dns failure",
			err:         &net.DNSError{Err: "no such host", Name: "content.example.org", IsNotFound: true},
			wantKind:    KindUnreachable,
			wantNetwork: true,
		},
		{
			name:        "dns timeout",
			err:         &net.DNSError{Err: "i/o timeout", Name: "content.example.org", IsTimeout: true},
			wantKind:    KindTimeout,
			wantNetwork: true,
		},
		{
			name:        "server error",
			err:         httpclient.NewHTTPError(503, "https://content.example.org", "503 Service Unavailable"),
			wantKind:    KindTransportFailure,
			wantNetwork: true,
		},
		{
			name:     "client error",
			err:      httpclient.NewHTTPError(404, "https://content.example.org", "404 Not Found"),
			wantKind: KindTransportFailure,
		},
		{
			name:     "already classified",
			err:      fmt.Errorf("wrapped: %w", &FetchError{Kind: KindDecodeFailure, Err: errors.New("bad")}),
			wantKind: KindDecodeFailure,
		},
		{
			name:     "unknown",
			err:      errors.New("something else"),
			wantKind: KindTransportFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantKind, Classify(tt.err))
			assert.Equal(t, tt.wantNetwork, IsNetworkError(tt.err))
		})
	}
}

func TestFetchError_Is(t *testing.T) {
	t.Parallel()

	err := NewFetchError("articles", &net.OpError{Op: "dial", Err: errors.New("connection refused")})

	assert.ErrorIs(t, err, ErrUnreachable)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "articles")

	wrapped := fmt.Errorf("attempt failed: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnreachable)

	var fe *FetchError
	assert.ErrorAs(t, wrapped, &fe)
	assert.Equal(t, "articles", fe.Collection)
}

func TestNewFetchError_KeepsExisting(t *testing.T) {
	t.Parallel()

	original := &FetchError{Kind: KindTimeout, Collection: "organization", Err: context.DeadlineExceeded}
	assert.Same(t, original, NewFetchError("articles", fmt.Errorf("wrap: %w", original)))
}
