// Package tiktoken implements snlchat.TokenCounter with the BPE encodings
// used by OpenAI-compatible models.
package tiktoken

import (
	"context"

	"github.com/fwojciec/snlchat"
	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used for models tiktoken does not know by name.
const DefaultEncoding = "cl100k_base"

var _ snlchat.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens with a tiktoken encoding.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTokenCounter creates a TokenCounter for model, falling back to
// DefaultEncoding when the model name is not recognised. The encoding may be
// downloaded on first use.
func NewTokenCounter(model string) (*TokenCounter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(DefaultEncoding)
		if err != nil {
			return nil, snlchat.Errorf(snlchat.EUNAVAILABLE, "load tiktoken encoding: %v", err)
		}
	}
	return &TokenCounter{enc: enc}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(_ context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	return len(tc.enc.Encode(text, nil, nil)), nil
}
