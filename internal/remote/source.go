// Package remote provides access to the content backend. Every primary fetch is tagged with
// whether it reached the live server or was answered from the local document store.
package remote

import (
	"context"

	"github.com/hopebridge/contentsync/internal/content"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=source.go Source

// Source is the remote content source used by the sync controller
type Source interface {
	// FetchPrimary fetches the four primary collections. With preferLive the live server is
	// tried first; otherwise only the local store answers.
	FetchPrimary(ctx context.Context, preferLive bool) (*content.PrimaryFetch, error)

	FetchPrograms(ctx context.Context) ([]content.Program, error)
	FetchTeams(ctx context.Context) ([]content.Team, error)
	FetchTeamMembers(ctx context.Context) ([]content.TeamMember, error)
	FetchExternalLinks(ctx context.Context) ([]content.ExternalLink, error)
	FetchSupportContent(ctx context.Context) (*content.SupportContent, error)

	// SubmitContact stores a contact form submission and returns its id
	SubmitContact(ctx context.Context, submission content.ContactSubmission) (string, error)
}
