package roast

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel is the exact phrase every roast must end with.
const Sentinel = "Okay Bye!!"

type Style string

const (
	StyleSavage Style = "savage"
	StyleFunny  Style = "funny"
	StyleWitty  Style = "witty"
	StyleMix    Style = "mix"
)

func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleSavage, StyleFunny, StyleWitty, StyleMix:
		return Style(s), true
	}
	return "", false
}

var styleInstructions = map[Style]string{
	StyleSavage: "absolutely BRUTAL and RUTHLESS. Short, punchy, devastating lines. Destroy them completely with maximum impact per sentence.",
	StyleFunny:  "hilariously SAVAGE with rapid-fire jokes. Short, sharp, comedic destruction. Make every line count.",
	StyleWitty:  "intellectually DEVASTATING with clever one-liners. Short, sharp, intelligent burns. Surgical precision.",
	StyleMix:    "EXTREME mix of brutal one-liners, savage jokes, and devastating observations. Rapid-fire destruction.",
}

// Instruction maps the style to its tone instruction. Unknown values fall
// back to the mix instruction; the HTTP boundary already rejects them, this
// keeps the composer total.
func (s Style) Instruction() string {
	if instr, ok := styleInstructions[s]; ok {
		return instr
	}
	return styleInstructions[StyleMix]
}

// EnsureSentinel trims the text and appends the sentinel unless the model
// already complied.
func EnsureSentinel(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, Sentinel) {
		return text
	}
	return text + " " + Sentinel
}

// SplitLines breaks the roast into display lines on '.' only. '!' and '?'
// are kept inside their line so the sentinel survives intact.
func SplitLines(text string) []string {
	var lines []string
	for _, fragment := range strings.Split(text, ".") {
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			lines = append(lines, fragment)
		}
	}
	return lines
}

// Result is assembled per request and never persisted.
type Result struct {
	Text      string
	Lines     []string
	AudioFile string
	RequestID uuid.UUID
	CreatedAt time.Time
}

// Record is the archived form of a successful roast. The CDN URL is filled
// in later by the offload worker.
type Record struct {
	ID            uuid.UUID
	ProfileURL    string
	Style         Style
	Text          string
	AudioFilename string
	CDNUrl        *string
	CreatedAt     time.Time
}

type Repository interface {
	Save(ctx context.Context, rec *Record) error
	SetCDNUrl(ctx context.Context, id uuid.UUID, url string) error
}
