package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

func newTestAdapter(serverURL string) *rapidAPIAdapter {
	return &rapidAPIAdapter{
		client:  http.DefaultClient,
		baseURL: serverURL,
		host:    "fresh-linkedin-profile-data.p.rapidapi.com",
		apiKey:  "test-key",
		log:     logger.NewNop(),
	}
}

func TestScrape_Success(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok","data":{"full_name":"J Doe","headline":"Engineer","about":"Builds things"}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	doc, err := adapter.Scrape(context.Background(), "https://www.linkedin.com/in/jdoe")
	require.NoError(t, err)

	assert.Equal(t, "J Doe", doc.FullName())
	assert.Equal(t, "Engineer", doc.Headline())

	require.NotNil(t, gotRequest)
	assert.Equal(t, "test-key", gotRequest.Header.Get("x-rapidapi-key"))
	assert.Equal(t, "fresh-linkedin-profile-data.p.rapidapi.com", gotRequest.Header.Get("x-rapidapi-host"))

	query := gotRequest.URL.Query()
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", query.Get("linkedin_url"))
	for _, section := range disabledSections {
		assert.Equal(t, "false", query.Get(section), section)
	}
}

func TestScrape_QuotaStatuses(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))

		adapter := newTestAdapter(server.URL)
		_, err := adapter.Scrape(context.Background(), "https://linkedin.com/in/jdoe")
		assert.ErrorIs(t, err, apperror.ErrQuotaExceeded, "status %d", status)
		server.Close()
	}
}

func TestScrape_NonSuccessStatusIsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.Scrape(context.Background(), "https://linkedin.com/in/jdoe")
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}

func TestScrape_BadEnvelopeIsUpstreamFailure(t *testing.T) {
	for name, body := range map[string]string{
		"wrong message": `{"message":"error","data":{"full_name":"J"}}`,
		"missing data":  `{"message":"ok"}`,
		"not json":      `<html>gateway error</html>`,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(body))
		}))

		adapter := newTestAdapter(server.URL)
		_, err := adapter.Scrape(context.Background(), "https://linkedin.com/in/jdoe")
		assert.ErrorIs(t, err, apperror.ErrUpstream, name)
		server.Close()
	}
}

func TestScrape_EmptyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"message":"ok","data":{"experiences":[]}}`))
	}))
	defer server.Close()

	adapter := newTestAdapter(server.URL)
	_, err := adapter.Scrape(context.Background(), "https://linkedin.com/in/ghost")
	assert.ErrorIs(t, err, apperror.ErrEmptyProfile)
}
