package roast

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/internal/domain/roast"
	"github.com/vuhoang/roastline/pkg/logger"
)

type fakeLLM struct {
	output     string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeLLM) GenerateCompletion(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestCompose_AlwaysEndsWithSentinel(t *testing.T) {
	doc := profile.Document{"full_name": "J Doe"}

	for _, style := range []roast.Style{roast.StyleSavage, roast.StyleFunny, roast.StyleWitty, roast.StyleMix} {
		for _, output := range []string{
			"Model ignored the rules entirely",
			"Compliant output. Okay Bye!!",
			"  Whitespace galore. Okay Bye!!  ",
			"",
		} {
			llm := &fakeLLM{output: output}
			composer := NewComposer(llm, logger.NewNop())

			text, err := composer.Compose(context.Background(), doc, style)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(text, roast.Sentinel),
				"style %s output %q", style, output)
		}
	}
}

func TestCompose_PromptCarriesExtractedFields(t *testing.T) {
	doc := profile.Document{
		"full_name": "J Doe",
		"headline":  "Chief Synergy Officer",
		"about":     "Visionary thought leader",
		"experiences": []any{
			map[string]any{"company": "Acme", "title": "Consultant"},
			map[string]any{"company": "Globex"},
		},
		"educations": []any{
			map[string]any{"school": "MIT"},
		},
	}

	llm := &fakeLLM{output: "x"}
	composer := NewComposer(llm, logger.NewNop())

	_, err := composer.Compose(context.Background(), doc, roast.StyleSavage)
	require.NoError(t, err)

	prompt := llm.lastPrompt
	assert.Contains(t, prompt, "Name: J Doe")
	assert.Contains(t, prompt, "Current Job: Consultant")
	assert.Contains(t, prompt, "Headline: Chief Synergy Officer")
	assert.Contains(t, prompt, "Companies: Acme, Globex")
	assert.Contains(t, prompt, "Education: MIT")
	assert.Contains(t, prompt, "Total Experience: 2 positions")
	assert.Contains(t, prompt, roast.StyleSavage.Instruction())
	assert.Contains(t, prompt, roast.Sentinel)
}

func TestCompose_AboutTruncatedTo200Chars(t *testing.T) {
	longAbout := strings.Repeat("a", 300)
	doc := profile.Document{"about": longAbout}

	llm := &fakeLLM{output: "x"}
	composer := NewComposer(llm, logger.NewNop())

	_, err := composer.Compose(context.Background(), doc, roast.StyleMix)
	require.NoError(t, err)

	assert.Contains(t, llm.lastPrompt, "About: "+strings.Repeat("a", 200)+"\n")
	assert.NotContains(t, llm.lastPrompt, strings.Repeat("a", 201))
}

func TestCompose_PlaceholdersForEmptyProfileSections(t *testing.T) {
	llm := &fakeLLM{output: "x"}
	composer := NewComposer(llm, logger.NewNop())

	_, err := composer.Compose(context.Background(), profile.Document{"full_name": "J"}, roast.StyleMix)
	require.NoError(t, err)

	assert.Contains(t, llm.lastPrompt, "Companies: "+profile.PlaceholderCompanies)
	assert.Contains(t, llm.lastPrompt, "Education: "+profile.PlaceholderSchools)
	assert.Contains(t, llm.lastPrompt, "About: "+profile.PlaceholderSummary)
}

func TestCompose_LLMErrorPropagates(t *testing.T) {
	llm := &fakeLLM{err: assert.AnError}
	composer := NewComposer(llm, logger.NewNop())

	_, err := composer.Compose(context.Background(), profile.Document{}, roast.StyleMix)
	assert.Error(t, err)
}
