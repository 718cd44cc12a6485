package remote

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hopebridge/contentsync/internal/content"
)

// ErrInvalidSubmission is returned when a contact submission is missing required fields
var ErrInvalidSubmission = errors.New("invalid contact submission")

type contactDocument struct {
	ID   string                    `json:"id"`
	Data content.ContactSubmission `json:"data"`
}

// SubmitContact validates the submission and posts it to the contact collection
func (s *HTTPSource) SubmitContact(ctx context.Context, submission content.ContactSubmission) (string, error) {
	if err := ValidateContact(submission); err != nil {
		return "", err
	}
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now().UTC()
	}

	id := ulid.Make().String()
	doc := contactDocument{ID: id, Data: submission}
	if _, err := s.client.PostJSON(ctx, s.collectionURL(content.CollectionContact), doc); err != nil {
		return "", NewFetchError(content.CollectionContact, err)
	}

	s.logger.Infow("Contact submission sent", "id", id)
	return id, nil
}

// ValidateContact checks the required fields of a contact submission
func ValidateContact(submission content.ContactSubmission) error {
	var missing []string
	if strings.TrimSpace(submission.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(submission.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(submission.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidSubmission, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(submission.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrInvalidSubmission)
	}
	return nil
}
