package observer

import (
	"context"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/sync"
)

//go:generate mockgen -destination=mocks/mock_controller.go -package=mocks -source=controller.go Controller,ContactSink

// Controller is the part of the sync controller the observer API drives
type Controller interface {
	Snapshot() sync.Snapshot
	RetryConnection(ctx context.Context)
	ForceRefreshAllData(ctx context.Context)
	EnterForeground(ctx context.Context)
}

// ContactSink accepts contact form submissions
type ContactSink interface {
	SubmitContact(ctx context.Context, submission content.ContactSubmission) (string, error)
}
