package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/config"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

const (
	synthesisTimeout = 60 * time.Second
	modelID          = "eleven_turbo_v2_5"
	outputFormat     = "mp3_44100_128"
)

// voiceSettings are tuned for a fast, aggressive spoken-word delivery:
// low stability for dynamics, high style variation, 10% speed-up.
type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
	Speed           float64 `json:"speed"`
}

var defaultVoiceSettings = voiceSettings{
	Stability:       0.3,
	SimilarityBoost: 0.8,
	Style:           0.8,
	UseSpeakerBoost: true,
	Speed:           1.1,
}

// quotaMarkers are substrings ElevenLabs puts in error bodies when the
// account is out of credits.
var quotaMarkers = []string{"quota_exceeded", "unusual_activity", "Free Tier"}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
	OutputFormat  string        `json:"output_format"`
}

type elevenLabsAdapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	voiceID string
	log     logger.Logger
}

func NewElevenLabsAdapter(cfg config.Config, log logger.Logger) (service.SpeechSynthesizer, error) {
	if cfg.TTS.APIKey == "" {
		return nil, fmt.Errorf("tts api_key is not configured")
	}

	log.Info("ElevenLabs TTS Adapter initialized", zap.String("voice_id", cfg.TTS.VoiceID))
	return &elevenLabsAdapter{
		client:  &http.Client{Timeout: synthesisTimeout},
		baseURL: strings.TrimRight(cfg.TTS.BaseURL, "/"),
		apiKey:  cfg.TTS.APIKey,
		voiceID: cfg.TTS.VoiceID,
		log:     log,
	}, nil
}

func (a *elevenLabsAdapter) Synthesize(ctx context.Context, text string) (*service.SpeechResult, error) {
	payload, err := json.Marshal(synthesisRequest{
		Text:          text,
		ModelID:       modelID,
		VoiceSettings: defaultVoiceSettings,
		OutputFormat:  outputFormat,
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal synthesis request", err)
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", a.baseURL, a.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.NewInternal("failed to build synthesis request", err)
	}
	req.Header.Set("xi-api-key", a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, apperror.NewSynthesis("synthesis request failed", err)
	}
	defer resp.Body.Close()

	a.log.Info("TTS response received", zap.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if isQuotaError(resp.StatusCode, string(body)) {
			return nil, apperror.NewQuotaExceeded("audio generation")
		}
		return nil, apperror.NewSynthesis(
			fmt.Sprintf("tts API returned %d: %s", resp.StatusCode, string(body)), nil)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewSynthesis("failed to read audio payload", err)
	}

	a.log.Info("Received audio data", zap.Int("bytes", len(audio)))
	return &service.SpeechResult{Data: audio, Format: "mp3"}, nil
}

func isQuotaError(status int, body string) bool {
	if status == http.StatusUnauthorized || status == http.StatusPaymentRequired {
		return true
	}
	for _, marker := range quotaMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
