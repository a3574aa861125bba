package snlchat_test

import (
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/stretchr/testify/assert"
)

func TestTemplates_Instruction(t *testing.T) {
	t.Parallel()

	t.Run("returns configured template", func(t *testing.T) {
		t.Parallel()

		tmpl := snlchat.Templates{snlchat.IntentThesis: "thesis instruction"}

		assert.Equal(t, "thesis instruction", tmpl.Instruction(snlchat.IntentThesis))
	})

	t.Run("falls back when intent is missing", func(t *testing.T) {
		t.Parallel()

		tmpl := snlchat.Templates{snlchat.IntentThesis: "thesis instruction"}

		assert.Equal(t, snlchat.FallbackInstruction, tmpl.Instruction(snlchat.IntentPosters))
	})

	t.Run("falls back on empty template", func(t *testing.T) {
		t.Parallel()

		tmpl := snlchat.Templates{snlchat.IntentBooks: ""}

		assert.Equal(t, snlchat.FallbackInstruction, tmpl.Instruction(snlchat.IntentBooks))
	})

	t.Run("nil templates fall back", func(t *testing.T) {
		t.Parallel()

		var tmpl snlchat.Templates

		assert.Contains(t, tmpl.Instruction(snlchat.IntentWebsite), "helpful")
	})
}
