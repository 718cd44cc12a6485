// Package content defines the documents the app displays and the datasets the sync controller
// publishes to the UI layer.
package content

import (
	"encoding/json"
	"time"
)

// Collection names used by the document store and the remote API.
const (
	CollectionOrganization   = "organization"
	CollectionArticles       = "articles"
	CollectionCoreWork       = "core_work"
	CollectionImpactStats    = "impact_stats"
	CollectionPrograms       = "programs"
	CollectionTeams          = "teams"
	CollectionTeamMembers    = "team_members"
	CollectionExternalLinks  = "external_links"
	CollectionSupportContent = "support_content"
	CollectionContact        = "contact_submissions"
)

// PrimaryCollections are the collections that gate whether the app has anything to show.
var PrimaryCollections = []string{
	CollectionOrganization,
	CollectionArticles,
	CollectionCoreWork,
	CollectionImpactStats,
}

// SecondaryCollections are loaded only after a successful primary connection.
var SecondaryCollections = []string{
	CollectionPrograms,
	CollectionTeams,
	CollectionTeamMembers,
	CollectionExternalLinks,
	CollectionSupportContent,
}

// Document is a raw document as stored in a collection
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// Organization holds the organization's profile
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Mission     string `json:"mission"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Website     string `json:"website,omitempty"`
	Email       string `json:"email,omitempty"`
	DonateURL   string `json:"donateUrl,omitempty"`
}

// Article is a news or blog article
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// CoreWork is one of the organization's core work areas
type CoreWork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

// ImpactStat is a headline impact number
type ImpactStat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Order int    `json:"order"`
}

// Program is a program run by the organization
type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Order       int    `json:"order"`
}

// Team groups team members
type Team struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// TeamMember is a person on a team
type TeamMember struct {
	ID       string `json:"id"`
	TeamID   string `json:"teamId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Order    int    `json:"order"`
}

// ExternalLink is a link shown in the app (social, donation platforms, etc.)
type ExternalLink struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

// SupportContent is the content of the "support our mission" section
type SupportContent struct {
	ID       string   `json:"id"`
	Headline string   `json:"headline"`
	Body     string   `json:"body"`
	Ways     []string `json:"ways,omitempty"`
}

// ContactSubmission is a message sent through the contact form
type ContactSubmission struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
