package roast

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/application/service"
	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/logger"
)

const (
	maxCompanies  = 3
	maxSchools    = 2
	maxAboutChars = 200
)

// Composer turns a profile document plus a style into roast text. One
// outbound LLM call, no caching, no retry.
type Composer struct {
	llm    service.LLMService
	logger logger.Logger
}

func NewComposer(llm service.LLMService, log logger.Logger) *Composer {
	return &Composer{llm: llm, logger: log}
}

// Compose builds the prompt, invokes the LLM and enforces the sentinel
// post-condition, so the returned text always ends with roast.Sentinel
// regardless of model compliance.
func (c *Composer) Compose(ctx context.Context, doc profile.Document, style roast.Style) (string, error) {
	prompt := buildPrompt(doc, style)
	c.logger.Debug("Roast prompt built", zap.Int("length", len(prompt)))

	text, err := c.llm.GenerateCompletion(ctx, prompt)
	if err != nil {
		return "", err
	}

	return roast.EnsureSentinel(text), nil
}

func profileSummary(doc profile.Document) string {
	about := doc.About()
	if about != profile.PlaceholderSummary {
		if runes := []rune(about); len(runes) > maxAboutChars {
			about = string(runes[:maxAboutChars])
		}
	}

	companyText := profile.PlaceholderCompanies
	if companies := doc.Companies(maxCompanies); len(companies) > 0 {
		companyText = strings.Join(companies, ", ")
	}

	schoolText := profile.PlaceholderSchools
	if schools := doc.Schools(maxSchools); len(schools) > 0 {
		schoolText = strings.Join(schools, ", ")
	}

	return fmt.Sprintf(`
Name: %s
Current Job: %s
Headline: %s
About: %s
Companies: %s
Education: %s
Total Experience: %d positions
Total Education: %d institutions
`,
		doc.FullName(), doc.CurrentTitle(), doc.Headline(), about,
		companyText, schoolText, len(doc.Experiences()), len(doc.Educations()))
}

func buildPrompt(doc profile.Document, style roast.Style) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a RUTHLESS roaster. Your roasts should be %s\n\n", style.Instruction()))
	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("- Write ONLY in English. NO other languages.\n")
	b.WriteString("- Length: 120-150 words total (for ~30 second audio).\n")
	b.WriteString("- Use short, punchy sentences (5-15 words each). Rapid-fire delivery.\n")
	b.WriteString("- Each line should hit HARD. Build momentum as you go.\n")
	b.WriteString("- Be conversational and direct. Talk TO them, not about them.\n")
	b.WriteString("- Use questions, exclamations, dramatic pauses for impact.\n")
	b.WriteString("- Make it sound like spoken word, not an essay.\n")
	b.WriteString("- Start strong, build up, end with a devastating punchline.\n")
	b.WriteString(fmt.Sprintf("- ALWAYS end with exactly: %q\n\n", roast.Sentinel))
	b.WriteString("Profile:\n")
	b.WriteString(profileSummary(doc))
	b.WriteString(fmt.Sprintf("\nDESTROY them in 120-150 words. Keep it punchy, keep it brutal. End with %q. GO.", roast.Sentinel))

	return b.String()
}
