package content

// PrimaryDataset is the aggregate of the four primary entities
type PrimaryDataset struct {
	Organization *Organization `json:"organization,omitempty"`
	Articles     []Article     `json:"articles"`
	CoreWork     []CoreWork    `json:"coreWork"`
	ImpactStats  []ImpactStat  `json:"impactStats"`
}

// HasData reports whether there is enough primary content to render the app.
// Impact stats are not gating.
func (d PrimaryDataset) HasData() bool {
	return d.Organization != nil && len(d.Articles) > 0 && len(d.CoreWork) > 0
}

// SecondaryDataset holds content loaded after a primary connection succeeds
type SecondaryDataset struct {
	Programs       []Program       `json:"programs"`
	Teams          []Team          `json:"teams"`
	TeamMembers    []TeamMember    `json:"teamMembers"`
	ExternalLinks  []ExternalLink  `json:"externalLinks"`
	SupportContent *SupportContent `json:"supportContent,omitempty"`
}

// ImageURLs returns the image URLs referenced by the secondary content
func (d SecondaryDataset) ImageURLs() []string {
	var urls []string
	for _, p := range d.Programs {
		if p.ImageURL != "" {
			urls = append(urls, p.ImageURL)
		}
	}
	for _, m := range d.TeamMembers {
		if m.PhotoURL != "" {
			urls = append(urls, m.PhotoURL)
		}
	}
	return urls
}

// ServerFetch wraps a fetched value with whether it came from a live server round-trip.
// FromServer is false when the remote client answered from its own local fallback.
type ServerFetch[T any] struct {
	Value      T
	FromServer bool
}

// PrimaryFetch is the result of fetching the primary dataset from the remote source,
// with each entity tagged individually.
type PrimaryFetch struct {
	Organization ServerFetch[*Organization]
	Articles     ServerFetch[[]Article]
	CoreWork     ServerFetch[[]CoreWork]
	ImpactStats  ServerFetch[[]ImpactStat]
}

// HitServer reports whether any of the four fetches reached the live server
func (f *PrimaryFetch) HitServer() bool {
	if f == nil {
		return false
	}
	return f.Organization.FromServer ||
		f.Articles.FromServer ||
		f.CoreWork.FromServer ||
		f.ImpactStats.FromServer
}

// Dataset returns the fetched values as a PrimaryDataset
func (f *PrimaryFetch) Dataset() PrimaryDataset {
	if f == nil {
		return PrimaryDataset{}
	}
	return PrimaryDataset{
		Organization: f.Organization.Value,
		Articles:     f.Articles.Value,
		CoreWork:     f.CoreWork.Value,
		ImpactStats:  f.ImpactStats.Value,
	}
}
