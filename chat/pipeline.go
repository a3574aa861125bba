package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/cache"
	"golang.org/x/sync/singleflight"
)

// Ensure Pipeline implements snlchat.Answerer at compile time.
var _ snlchat.Answerer = (*Pipeline)(nil)

// Pipeline answers questions by running classification, retrieval, prompt
// assembly and generation in sequence. It owns the classification and
// retrieval caches for its lifetime and is safe for concurrent use.
type Pipeline struct {
	Classifier snlchat.Classifier
	Retriever  snlchat.Retriever
	Assembler  *Assembler
	Generator  *Generator

	// Caches default to unbounded maps when nil.
	Classifications snlchat.Cache[snlchat.Classification]
	Contexts        snlchat.Cache[*snlchat.RetrievalContext]

	// CacheFailedClassifications also caches degraded classifications, so a
	// failed question is not re-classified for the rest of the session.
	CacheFailedClassifications bool

	// Logger defaults to discarding all output.
	Logger *slog.Logger

	once       sync.Once
	classifies singleflight.Group
	retrieves  singleflight.Group
}

func (p *Pipeline) init() {
	p.once.Do(func() {
		if p.Classifications == nil {
			p.Classifications = cache.NewMap[snlchat.Classification]()
		}
		if p.Contexts == nil {
			p.Contexts = cache.NewMap[*snlchat.RetrievalContext]()
		}
		if p.Logger == nil {
			p.Logger = slog.New(slog.DiscardHandler)
		}
	})
}

// Answer runs the full pipeline for message. It never fails: an empty message
// yields snlchat.InvalidQuestionMessage and any error that cannot be degraded
// yields a message starting with snlchat.ErrorMessagePrefix.
func (p *Pipeline) Answer(ctx context.Context, message, history string) (answer string) {
	if strings.TrimSpace(message) == "" {
		return snlchat.InvalidQuestionMessage
	}
	p.init()

	stage := StageIdle
	defer func() {
		if r := recover(); r != nil {
			answer = p.fail(stage, fmt.Errorf("%v", r))
		}
	}()

	stage = p.enter(StageClassifying)
	classification := p.Classify(ctx, message)

	stage = p.enter(StageRetrieving)
	rc, err := p.Retrieve(ctx, classification.Query)
	if err != nil {
		rc = &snlchat.RetrievalContext{Body: snlchat.NoInformation}
	}

	stage = p.enter(StageAssembling)
	prompt := p.Assembler.Assemble(classification, message, history, rc)

	stage = p.enter(StageGenerating)
	text, err := p.Generator.Generate(ctx, prompt.System, prompt.User)
	if err != nil {
		return p.fail(stage, err)
	}

	p.enter(StageDone)
	return text
}

// Classify returns the cached classification of text, classifying it on a
// miss. Degraded results are returned but only cached when
// CacheFailedClassifications is set.
func (p *Pipeline) Classify(ctx context.Context, text string) snlchat.Classification {
	if strings.TrimSpace(text) == "" {
		return degraded(text)
	}
	p.init()

	key := snlchat.NormalizeKey(text)
	if c, ok := p.Classifications.Get(key); ok {
		p.Logger.Debug("classification cache hit", "key", key)
		return c
	}

	// The shared call outlives any one caller; each caller waits on its own
	// context.
	shared := context.WithoutCancel(ctx)
	ch := p.classifies.DoChan(key, catchPanic(func() (any, error) {
		if c, ok := p.Classifications.Get(key); ok {
			return c, nil
		}
		c, err := p.Classifier.Classify(shared, text)
		if err != nil {
			p.Logger.Warn("classification degraded", "key", key, "err", err)
			if !p.CacheFailedClassifications {
				return c, nil
			}
		}
		p.Classifications.Put(key, c)
		return c, nil
	}))

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		p.Logger.Warn("classification degraded", "key", key, "err", ctx.Err())
		return degraded(text)
	}
	rethrow(res.Err)

	c := res.Val.(snlchat.Classification)
	c.Intent = c.Intent.OrDefault()
	return c
}

// Retrieve returns the cached context for query, retrieving it on a miss.
// Errors are never cached.
func (p *Pipeline) Retrieve(ctx context.Context, query string) (*snlchat.RetrievalContext, error) {
	p.init()

	key := snlchat.NormalizeKey(query)
	if rc, ok := p.Contexts.Get(key); ok {
		p.Logger.Debug("retrieval cache hit", "key", key)
		return rc, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := p.retrieves.DoChan(key, catchPanic(func() (any, error) {
		if rc, ok := p.Contexts.Get(key); ok {
			return rc, nil
		}
		rc, err := p.Retriever.Retrieve(shared, query)
		if err != nil {
			return nil, err
		}
		p.Contexts.Put(key, rc)
		return rc, nil
	}))

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res.Err = ctx.Err()
	}
	rethrow(res.Err)
	if res.Err != nil {
		p.Logger.Warn("retrieval failed", "key", key, "err", res.Err)
		return nil, res.Err
	}
	return res.Val.(*snlchat.RetrievalContext), nil
}

// panicked carries a panic out of a shared call so it is raised again on
// the caller's goroutine, where Answer recovers it.
type panicked struct{ value any }

func (p *panicked) Error() string { return fmt.Sprintf("panic: %v", p.value) }

func catchPanic(fn func() (any, error)) func() (any, error) {
	return func() (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &panicked{value: r}
			}
		}()
		return fn()
	}
}

func rethrow(err error) {
	var p *panicked
	if errors.As(err, &p) {
		panic(p.value)
	}
}

// Reset purges both caches.
func (p *Pipeline) Reset() {
	p.init()
	p.Classifications.Purge()
	p.Contexts.Purge()
}

func (p *Pipeline) enter(stage Stage) Stage {
	p.Logger.Debug("pipeline stage", "stage", stage.String())
	return stage
}

func (p *Pipeline) fail(stage Stage, err error) string {
	p.Logger.Error("pipeline failed", "stage", stage.String(), "err", err)
	return snlchat.ErrorMessagePrefix + errorText(err)
}

// errorText prefers the message of an application error over its debug form.
func errorText(err error) string {
	var e *snlchat.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
