package profilefetch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

// NormalizeURL produces the cache key: https scheme, no www. host prefix,
// no trailing slash. URLs differing only in those never scrape twice.
func NormalizeURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", apperror.NewInvalidInput("profile URL is not parseable", err)
	}
	if parsed.Host == "" {
		return "", apperror.NewInvalidInput("profile URL has no host", nil)
	}

	parsed.Scheme = "https"
	parsed.Host = strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	return parsed.String(), nil
}

type FetchProfileUseCase struct {
	cache   profile.Cache
	scraper service.ProfileScraper
	logger  logger.Logger
}

func NewFetchProfileUseCase(cache profile.Cache, scraper service.ProfileScraper, log logger.Logger) *FetchProfileUseCase {
	return &FetchProfileUseCase{cache: cache, scraper: scraper, logger: log}
}

// Execute returns the profile document for rawURL, consulting the cache
// first. The scraper is always called with the original URL; only the
// cache key is normalized. Failed scrapes are never cached.
func (uc *FetchProfileUseCase) Execute(ctx context.Context, rawURL string) (profile.Document, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	l := uc.logger.With(zap.String("normalized_url", normalized))

	now := time.Now().UTC()

	cached, err := uc.cache.Lookup(ctx, normalized)
	if err != nil {
		// A broken cache degrades to a scrape, it does not fail the request.
		l.Warn("Profile cache lookup failed, treating as miss", zap.Error(err))
	} else if cached != nil && cached.Fresh(now) {
		l.Info("Using cached profile data",
			zap.Duration("age", now.Sub(cached.CachedAt)))
		return cached.Data, nil
	}

	l.Info("Cache miss, fetching from scraping provider")

	doc, err := uc.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Store(ctx, normalized, doc, now); err != nil {
		l.Warn("Failed to cache scraped profile", zap.Error(err))
	} else {
		l.Info("Cached profile data")
	}

	return doc, nil
}
