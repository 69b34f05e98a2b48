package service

import (
	"context"
)

// SpeechResult is the raw synthesized voice.
type SpeechResult struct {
	Data   []byte
	Format string // e.g. "mp3"
}

// SpeechSynthesizer converts text to speech with the provider's fixed
// voice configuration.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) (*SpeechResult, error)
}
