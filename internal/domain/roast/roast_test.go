package roast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStyle(t *testing.T) {
	for _, valid := range []string{"savage", "funny", "witty", "mix"} {
		style, ok := ParseStyle(valid)
		assert.True(t, ok)
		assert.Equal(t, Style(valid), style)
	}

	_, ok := ParseStyle("polite")
	assert.False(t, ok)
}

func TestStyleInstruction_UnknownFallsBackToMix(t *testing.T) {
	assert.Equal(t, StyleMix.Instruction(), Style("polite").Instruction())
	assert.NotEqual(t, StyleSavage.Instruction(), StyleWitty.Instruction())
}

func TestEnsureSentinel(t *testing.T) {
	assert.Equal(t, "Nice try. Okay Bye!!", EnsureSentinel("Nice try."))
	assert.Equal(t, "Already done. Okay Bye!!", EnsureSentinel("Already done. Okay Bye!!"))
	assert.Equal(t, "Trimmed. Okay Bye!!", EnsureSentinel("  Trimmed. Okay Bye!!  \n"))
	assert.Equal(t, " "+Sentinel, EnsureSentinel(""))
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("You build things. Nobody cares. Okay Bye!!")
	assert.Equal(t, []string{"You build things", "Nobody cares", "Okay Bye!!"}, lines)
}

func TestSplitLines_DropsEmptyFragments(t *testing.T) {
	lines := SplitLines("One.. Two...  . Okay Bye!!")
	assert.Equal(t, []string{"One", "Two", "Okay Bye!!"}, lines)
}
