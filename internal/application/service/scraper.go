package service

import (
	"context"

	"github.com/vuhoang/roastline/internal/domain/profile"
)

// ProfileScraper fetches a profile document from the scraping provider.
// Implementations translate provider failures into the apperror taxonomy:
// quota exhaustion, upstream failure, or empty profile.
type ProfileScraper interface {
	Scrape(ctx context.Context, profileURL string) (profile.Document, error)
}
