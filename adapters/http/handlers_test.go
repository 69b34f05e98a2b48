package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuhoang/roastline/adapters/audio_storage"
	"github.com/vuhoang/roastline/internal/application/service"
	feedbackUC "github.com/vuhoang/roastline/internal/application/usecase/feedback"
	"github.com/vuhoang/roastline/internal/application/usecase/profilefetch"
	roastUC "github.com/vuhoang/roastline/internal/application/usecase/roast"
	domainFeedback "github.com/vuhoang/roastline/internal/domain/feedback"
	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopCache struct{}

func (nopCache) Lookup(context.Context, string) (*profile.CachedProfile, error) { return nil, nil }

func (nopCache) Store(context.Context, string, profile.Document, time.Time) error { return nil }

type fakeScraper struct {
	doc   profile.Document
	err   error
	calls int
}

func (s *fakeScraper) Scrape(context.Context, string) (profile.Document, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

type fakeLLM struct {
	output string
	calls  int
}

func (l *fakeLLM) GenerateCompletion(context.Context, string) (string, error) {
	l.calls++
	return l.output, nil
}

type fakeSynthesizer struct {
	err   error
	calls int
}

func (s *fakeSynthesizer) Synthesize(context.Context, string) (*service.SpeechResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &service.SpeechResult{Data: []byte("mp3"), Format: "mp3"}, nil
}

type fakeFeedbackRepo struct {
	err       error
	feedbacks int
	ratings   int
}

func (r *fakeFeedbackRepo) SaveFeedback(context.Context, *domainFeedback.Feedback) error {
	if r.err != nil {
		return r.err
	}
	r.feedbacks++
	return nil
}

func (r *fakeFeedbackRepo) SaveRating(context.Context, *domainFeedback.Rating) error {
	if r.err != nil {
		return r.err
	}
	r.ratings++
	return nil
}

type testHarness struct {
	router   *gin.Engine
	scraper  *fakeScraper
	llm      *fakeLLM
	synth    *fakeSynthesizer
	feedback *fakeFeedbackRepo
	store    service.ArtifactStore
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	log := logger.NewNop()

	h := &testHarness{
		scraper: &fakeScraper{doc: profile.Document{
			"full_name": "J Doe",
			"headline":  "Engineer",
		}},
		llm:      &fakeLLM{output: "You build things. Nobody cares."},
		synth:    &fakeSynthesizer{},
		feedback: &fakeFeedbackRepo{},
	}

	store, err := audio_storage.NewLocalArtifactStore(t.TempDir(), log)
	require.NoError(t, err)
	h.store = store

	fetcher := profilefetch.NewFetchProfileUseCase(nopCache{}, h.scraper, log)
	composer := roastUC.NewComposer(h.llm, log)
	generateUC := roastUC.NewGenerateRoastUseCase(fetcher, composer, h.synth, store, nil, nil, log)

	submitFeedbackUC := feedbackUC.NewSubmitFeedbackUseCase(h.feedback, nil, log)
	submitRatingUC := feedbackUC.NewSubmitRatingUseCase(h.feedback, nil, log)

	h.router = NewRouter(
		NewRoastHandler(generateUC, log),
		NewAudioHandler(store, log),
		NewFeedbackHandler(submitFeedbackUC, submitRatingUC, log),
		nil,
		log,
	)
	return h
}

func (h *testHarness) post(path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *testHarness) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	h := newHarness(t)

	w := h.get("/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP"}`, w.Body.String())

	w = h.get("/api/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"LinkedIn Roaster API"}`, w.Body.String())
}

func TestGenerateRoast_HappyPath(t *testing.T) {
	h := newHarness(t)

	w := h.post("/api/generate-roast", `{"linkedin_url":"https://www.linkedin.com/in/jdoe","roast_style":"savage"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RoastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You build things. Nobody cares. Okay Bye!!", resp.RoastText)
	assert.Equal(t, []string{"You build things", "Nobody cares", "Okay Bye!!"}, resp.RoastLines)
	assert.Regexp(t, `^/api/audio/roast_\d{8}_\d{6}_[0-9a-f]{8}\.mp3$`, resp.AudioURL)
	assert.NotEmpty(t, resp.RequestID)

	// the generated audio must be retrievable through the audio endpoint
	audio := h.get(resp.AudioURL)
	assert.Equal(t, http.StatusOK, audio.Code)
	assert.Equal(t, "audio/mpeg", audio.Header().Get("Content-Type"))
	assert.Equal(t, []byte("mp3"), audio.Body.Bytes())
}

func TestGenerateRoast_MissingURLIsRejectedWithoutProviderCalls(t *testing.T) {
	h := newHarness(t)

	for name, body := range map[string]string{
		"empty body":    `{}`,
		"blank url":     `{"linkedin_url":""}`,
		"non-http url":  `{"linkedin_url":"ftp://linkedin.com/in/jdoe"}`,
		"malformed doc": `not json`,
	} {
		w := h.post("/api/generate-roast", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
	assert.Zero(t, h.scraper.calls)
	assert.Zero(t, h.llm.calls)
	assert.Zero(t, h.synth.calls)
}

func TestGenerateRoast_InvalidStyle(t *testing.T) {
	h := newHarness(t)

	w := h.post("/api/generate-roast", `{"linkedin_url":"https://linkedin.com/in/jdoe","roast_style":"poetic"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, h.scraper.calls)
}

func TestGenerateRoast_QuotaSurfacesAs429(t *testing.T) {
	h := newHarness(t)
	h.synth.err = apperror.NewQuotaExceeded("audio generation")

	w := h.post("/api/generate-roast", `{"linkedin_url":"https://linkedin.com/in/jdoe"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["message"], "Credit limit crossed")
}

func TestGenerateRoast_EmptyProfileIs404(t *testing.T) {
	h := newHarness(t)
	h.scraper.err = apperror.NewEmptyProfile("https://linkedin.com/in/ghost")

	w := h.post("/api/generate-roast", `{"linkedin_url":"https://linkedin.com/in/ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, h.synth.calls)
}

func TestGetAudio_UnknownFileIs404(t *testing.T) {
	h := newHarness(t)

	w := h.get("/api/audio/roast_20250101_000000_deadbeef.mp3")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFeedback_AlwaysAcknowledges(t *testing.T) {
	h := newHarness(t)

	w := h.post("/api/feedback", `{"rating":5,"comment":"great","timestamp":"2026-08-30T10:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"Thank you for your feedback!"}`, w.Body.String())
	assert.Equal(t, 1, h.feedback.feedbacks)

	// malformed payload still gets a thank-you
	w = h.post("/api/feedback", `{"comment":"no rating"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, h.feedback.feedbacks)
}

func TestSubmitFeedback_StorageFailureStillAcknowledges(t *testing.T) {
	h := newHarness(t)
	h.feedback.err = assert.AnError

	w := h.post("/api/feedback", `{"rating":1,"timestamp":"2026-08-30T10:00:00Z"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"Thank you for your feedback!"}`, w.Body.String())
}

func TestSubmitRating_Acknowledges(t *testing.T) {
	h := newHarness(t)

	w := h.post("/api/submit-rating", `{"rating":4,"feedback_text":"solid"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, h.feedback.ratings)
}
