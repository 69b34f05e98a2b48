package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/config"
	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

const scrapeTimeout = 30 * time.Second

// Optional sections are all disabled to keep the payload small; the
// composer only reads name, headline, about, experiences and educations.
var disabledSections = []string{
	"include_skills", "include_certifications", "include_publications",
	"include_honors", "include_volunteers", "include_projects",
	"include_patents", "include_courses", "include_organizations",
	"include_profile_status", "include_company_public_url",
}

type rapidAPIAdapter struct {
	client  *http.Client
	baseURL string
	host    string
	apiKey  string
	log     logger.Logger
}

func NewRapidAPIAdapter(cfg config.Config, log logger.Logger) (service.ProfileScraper, error) {
	if cfg.Scraper.APIKey == "" {
		return nil, fmt.Errorf("scraper api_key is not configured")
	}

	log.Info("RapidAPI Scraper Adapter initialized", zap.String("host", cfg.Scraper.Host))
	return &rapidAPIAdapter{
		client:  &http.Client{Timeout: scrapeTimeout},
		baseURL: "https://" + cfg.Scraper.Host,
		host:    cfg.Scraper.Host,
		apiKey:  cfg.Scraper.APIKey,
		log:     log,
	}, nil
}

type enrichLeadResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Scrape calls the provider with the original, non-normalized URL. Cache
// keying by the normalized form happens upstream.
func (a *rapidAPIAdapter) Scrape(ctx context.Context, profileURL string) (profile.Document, error) {
	endpoint := a.endpoint(profileURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build scrape request", err)
	}
	req.Header.Set("x-rapidapi-host", a.host)
	req.Header.Set("x-rapidapi-key", a.apiKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstream("scrape request failed", err)
	}
	defer resp.Body.Close()

	a.log.Info("Scraper response received", zap.Int("status", resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden:
		return nil, apperror.NewQuotaExceeded("LinkedIn scraping")
	case resp.StatusCode != http.StatusOK:
		return nil, apperror.NewUpstream(
			fmt.Sprintf("scraping failed with status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstream("failed to read scrape response", err)
	}

	var envelope enrichLeadResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperror.NewUpstream("scrape response is not valid JSON", err)
	}
	if envelope.Message != "ok" || len(envelope.Data) == 0 {
		a.log.Warn("Scraper returned unexpected envelope", zap.String("message", envelope.Message))
		return nil, apperror.NewUpstream("scrape API returned an unexpected response", nil)
	}

	var doc profile.Document
	if err := json.Unmarshal(envelope.Data, &doc); err != nil {
		return nil, apperror.NewUpstream("scrape data field is not an object", err)
	}

	if doc.Empty() {
		a.log.Warn("Profile data is empty or invalid", zap.String("profile_url", profileURL))
		return nil, apperror.NewEmptyProfile(profileURL)
	}

	a.log.Info("Successfully scraped profile", zap.String("full_name", doc.FullName()))
	return doc, nil
}

func (a *rapidAPIAdapter) endpoint(profileURL string) string {
	params := url.Values{}
	params.Set("linkedin_url", profileURL)
	for _, section := range disabledSections {
		params.Set(section, "false")
	}
	return fmt.Sprintf("%s/enrich-lead?%s", a.baseURL, params.Encode())
}
