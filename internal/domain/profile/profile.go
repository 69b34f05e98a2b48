package profile

import (
	"context"
	"time"
)

// FreshnessWindow is how long a cached scrape result counts as present.
// Older entries are ignored at read time, never purged.
const FreshnessWindow = 7 * 24 * time.Hour

// Document is the raw profile payload from the scraping provider. The
// provider does not guarantee a schema, so every read goes through the
// tolerant accessors below instead of direct key access.
type Document map[string]any

type CachedProfile struct {
	NormalizedURL string    `json:"normalized_url"`
	Data          Document  `json:"profile_data"`
	CachedAt      time.Time `json:"cached_at"`
}

func (c *CachedProfile) Fresh(now time.Time) bool {
	return now.Sub(c.CachedAt) < FreshnessWindow
}

// Cache maps a normalized profile URL to the last successful scrape.
// Lookup returns (nil, nil) when no entry exists.
type Cache interface {
	Lookup(ctx context.Context, normalizedURL string) (*CachedProfile, error)
	Store(ctx context.Context, normalizedURL string, data Document, now time.Time) error
}

const (
	PlaceholderName      = "No name"
	PlaceholderHeadline  = "No headline"
	PlaceholderSummary   = "No summary"
	PlaceholderCompanies = "No companies listed"
	PlaceholderSchools   = "No education listed"
	PlaceholderJobTitle  = "No job title"
)

// text returns the first key that holds a non-empty string.
func (d Document) text(keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := d[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// list returns the first key that actually holds a list. Anything else,
// including null and scalar values, counts as an empty list.
func (d Document) list(keys ...string) []any {
	for _, key := range keys {
		if v, ok := d[key].([]any); ok {
			return v
		}
	}
	return nil
}

func (d Document) FullName() string {
	if v, ok := d.text("full_name", "fullName"); ok {
		return v
	}
	return PlaceholderName
}

func (d Document) Headline() string {
	if v, ok := d.text("headline"); ok {
		return v
	}
	return PlaceholderHeadline
}

func (d Document) About() string {
	if v, ok := d.text("about", "summary"); ok {
		return v
	}
	return PlaceholderSummary
}

func (d Document) Experiences() []any {
	return d.list("experiences", "experience")
}

func (d Document) Educations() []any {
	return d.list("educations", "education")
}

// Companies returns up to max company names from the experience entries,
// in encounter order, skipping entries without a usable name.
func (d Document) Companies(max int) []string {
	var companies []string
	for _, e := range d.Experiences() {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := entry["company"].(string); ok && name != "" {
			companies = append(companies, name)
		}
		if len(companies) >= max {
			break
		}
	}
	return companies
}

// Schools returns up to max school names from the education entries.
func (d Document) Schools(max int) []string {
	var schools []string
	for _, e := range d.Educations() {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if name, ok := entry["school"].(string); ok && name != "" {
			schools = append(schools, name)
		}
		if len(schools) >= max {
			break
		}
	}
	return schools
}

// CurrentTitle is the job title of the first experience entry only.
func (d Document) CurrentTitle() string {
	exps := d.Experiences()
	if len(exps) == 0 {
		return PlaceholderJobTitle
	}
	entry, ok := exps[0].(map[string]any)
	if !ok {
		return PlaceholderJobTitle
	}
	if title, ok := entry["title"].(string); ok && title != "" {
		return title
	}
	return PlaceholderJobTitle
}

// Empty reports whether the document lacks all of name, headline and
// summary text, which is treated as a private or deleted profile.
func (d Document) Empty() bool {
	_, hasName := d.text("full_name", "fullName")
	_, hasHeadline := d.text("headline")
	_, hasAbout := d.text("about", "summary")
	return !hasName && !hasHeadline && !hasAbout
}
