package snlchat_test

import (
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token  string
		want   snlchat.Intent
		wantOK bool
	}{
		{"website", snlchat.IntentWebsite, true},
		{"thesis", snlchat.IntentThesis, true},
		{"Books", snlchat.IntentBooks, true},
		{" POSTERS ", snlchat.IntentPosters, true},
		{"**thesis**", snlchat.IntentThesis, true},
		{"\"books\".", snlchat.IntentBooks, true},
		{"music", snlchat.IntentUnknown, false},
		{"", snlchat.IntentUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			t.Parallel()

			got, ok := snlchat.ParseIntent(tt.token)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestIntent_OrDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, snlchat.IntentWebsite, snlchat.IntentUnknown.OrDefault())
	assert.Equal(t, snlchat.IntentWebsite, snlchat.Intent("maps").OrDefault())
	assert.Equal(t, snlchat.IntentPosters, snlchat.IntentPosters.OrDefault())
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "what are the opening hours?", snlchat.NormalizeKey("  What are the Opening Hours?\n"))
	assert.Empty(t, snlchat.NormalizeKey("   "))
}
