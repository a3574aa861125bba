package mock

import (
	"context"

	"github.com/fwojciec/snlchat"
)

var _ snlchat.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of snlchat.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, message, history string) string
}

func (a *Answerer) Answer(ctx context.Context, message, history string) string {
	return a.AnswerFn(ctx, message, history)
}

var _ snlchat.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of snlchat.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, text string) (snlchat.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, text string) (snlchat.Classification, error) {
	return c.ClassifyFn(ctx, text)
}

var _ snlchat.Retriever = (*Retriever)(nil)

// Retriever is a mock implementation of snlchat.Retriever.
type Retriever struct {
	RetrieveFn func(ctx context.Context, query string) (*snlchat.RetrievalContext, error)
}

func (r *Retriever) Retrieve(ctx context.Context, query string) (*snlchat.RetrievalContext, error) {
	return r.RetrieveFn(ctx, query)
}
