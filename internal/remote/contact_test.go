package remote

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/httpclient"
	httpmocks "github.com/hopebridge/contentsync/internal/httpclient/mocks"
)

func TestValidateContact(t *testing.T) {
	t.Parallel()

	valid := content.ContactSubmission{Name: "Ada", Email: "ada@example.org", Message: "Hello"}

	tests := []struct {
		name    string
		mutate  func(*content.ContactSubmission)
		wantErr string
	}{
		{name: "valid", mutate: func(*content.ContactSubmission) {}},
		{name: "missing name", mutate: func(s *content.ContactSubmission) { s.Name = " " }, wantErr: "name"},
		{name: "missing email and message", mutate: func(s *content.ContactSubmission) {
			s.Email = ""
			s.Message = ""
		}, wantErr: "email, message"},
		{name: "bad email", mutate: func(s *content.ContactSubmission) { s.Email = "ada" }, wantErr: "invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			submission := valid
			tt.mutate(&submission)

			err := ValidateContact(submission)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSubmission)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHTTPSource_SubmitContact(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	var posted contactDocument
	client := httpmocks.NewMockClient(ctrl)
	client.EXPECT().
		PostJSON(gomock.Any(), testEndpoint+"/v1/collections/contact_submissions/documents", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body any) ([]byte, error) {
			posted = body.(contactDocument)
			return []byte(`{}`), nil
		})

	source, err := NewHTTPSource(client, testEndpoint)
	require.NoError(t, err)

	id, err := source.SubmitContact(context.Background(), content.ContactSubmission{
		Name: "Ada", Email: "ada@example.org", Message: "Hello",
	})
	require.NoError(t, err)

	_, err = ulid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, posted.ID)
	assert.False(t, posted.Data.SubmittedAt.IsZero())
}

func TestHTTPSource_SubmitContactErrors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	client := httpmocks.NewMockClient(ctrl)
	source, err := NewHTTPSource(client, testEndpoint)
	require.NoError(t, err)

	_, err = source.SubmitContact(context.Background(), content.ContactSubmission{})
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	client.EXPECT().PostJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, httpclient.NewHTTPError(500, testEndpoint, "500 Internal Server Error"))
	_, err = source.SubmitContact(context.Background(), content.ContactSubmission{
		Name: "Ada", Email: "ada@example.org", Message: "Hello",
	})
	assert.ErrorIs(t, err, ErrTransport)
}
