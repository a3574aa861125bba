package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/cache"
	"github.com/fwojciec/snlchat/chat"
	"github.com/fwojciec/snlchat/gemini"
	snlhttp "github.com/fwojciec/snlchat/http"
	"github.com/fwojciec/snlchat/openai"
	snlslog "github.com/fwojciec/snlchat/slog"
	"github.com/fwojciec/snlchat/sqlite"
	"github.com/fwojciec/snlchat/tiktoken"
	"github.com/fwojciec/snlchat/yaml"
	"google.golang.org/genai"
)

// Version is reported to MCP clients. Set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin feeds the interactive chat loop.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("snlchat"),
		kong.Description("Multilingual question answering over the Swiss National Library collections"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'snlchat --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd := strings.Fields(kongCtx.Command())[0]
	deps.Logger = newLogger(stderr, cli.Verbose, cmd == "serve")

	deps.Templates, err = yaml.LoadTemplates(cli.PromptsFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", snlchat.ErrorMessage(err))
		return err
	}

	needsDB := cmd == "chat" || cmd == "serve" || cmd == "history" || (cmd == "ask" && cli.Ask.Session != "")
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SNLCHAT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Conversations = snlslog.NewLoggingConversationService(sqlite.NewConversationService(m.DB), deps.Logger)
	}

	switch cmd {
	case "ask", "chat", "serve", "mcp":
		pipeline, err := buildPipeline(ctx, &cli.Globals, deps.Templates, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Answerer = snlslog.NewLoggingAnswerer(pipeline, deps.Logger)
		deps.Cache = pipeline
	}

	return kongCtx.Run(deps)
}

// newLogger logs warnings by default, requests when serving, and everything
// when verbose.
func newLogger(w io.Writer, verbose, serving bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case serving:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildPipeline wires the retrieval and generation services into a pipeline.
func buildPipeline(ctx context.Context, g *Globals, templates snlchat.Templates, logger *slog.Logger, stderr io.Writer) (*chat.Pipeline, error) {
	if g.GroundXAPIKey == "" || g.BucketID == "" {
		fmt.Fprintln(stderr, "Hint: Set GROUNDX_API_KEY and GROUNDX_BUCKET_ID")
		return nil, snlchat.Errorf(snlchat.EINVALID, "retrieval service not configured")
	}

	var searchOpts []snlhttp.Option
	if g.GroundXBaseURL != "" {
		searchOpts = append(searchOpts, snlhttp.WithBaseURL(g.GroundXBaseURL))
	}
	var search snlchat.SearchService = snlslog.NewLoggingSearchService(snlhttp.NewSearchService(g.GroundXAPIKey, searchOpts...), logger)
	if g.SearchRetries > 0 {
		search = chat.NewRetryingSearchService(search, chat.RetryDelays(g.SearchRetries, 500*time.Millisecond), logger)
	}

	generation, classification, err := newChatServices(ctx, g, logger, stderr)
	if err != nil {
		return nil, err
	}

	p := &chat.Pipeline{
		Classifier:                 chat.NewClassifier(classification),
		Retriever:                  chat.NewRetriever(search, g.BucketID, g.MaxChunks),
		Assembler:                  chat.NewAssembler(templates),
		Generator:                  chat.NewGenerator(generation),
		CacheFailedClassifications: g.StickyFailures,
		Logger:                     logger,
	}

	if g.CacheSize > 0 {
		if p.Classifications, err = cache.NewLRU[snlchat.Classification](g.CacheSize); err != nil {
			return nil, err
		}
		if p.Contexts, err = cache.NewLRU[*snlchat.RetrievalContext](g.CacheSize); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// newChatServices returns the generation and classification services for the
// configured backend, each wrapped with logging.
func newChatServices(ctx context.Context, g *Globals, logger *slog.Logger, stderr io.Writer) (generation, classification snlchat.ChatService, err error) {
	translationModel := g.TranslationModel
	if translationModel == "" {
		translationModel = g.Model
	}

	var newService func(model string) (snlchat.ChatService, error)
	var newCounter func(model string) (snlchat.TokenCounter, error)

	switch g.Backend {
	case "gemini":
		if g.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		newService = func(model string) (snlchat.ChatService, error) {
			return gemini.NewChatService(client, model), nil
		}
		newCounter = func(model string) (snlchat.TokenCounter, error) {
			if model == "" {
				model = gemini.DefaultModel
			}
			return gemini.NewTokenCounter(model)
		}
	default:
		if g.Model == "" {
			fmt.Fprintln(stderr, "Hint: Set OPENAI_MODEL_NAME (and OPENAI_API_BASE for self-hosted models)")
			return nil, nil, snlchat.Errorf(snlchat.EINVALID, "model name required")
		}
		newService = func(model string) (snlchat.ChatService, error) {
			return openai.NewChatService(openai.Config{
				APIKey:  g.OpenAIAPIKey,
				BaseURL: g.OpenAIBaseURL,
				Model:   model,
			})
		}
		newCounter = func(model string) (snlchat.TokenCounter, error) {
			return tiktoken.NewTokenCounter(model)
		}
	}

	wrap := func(name, model string) (snlchat.ChatService, error) {
		svc, err := newService(model)
		if err != nil {
			return nil, err
		}
		// Token counts are only logged at debug level.
		var counter snlchat.TokenCounter
		if g.Verbose {
			if counter, err = newCounter(model); err != nil {
				logger.Warn("token counting disabled", "model", model, "err", err)
				counter = nil
			}
		}
		return snlslog.NewLoggingChatService(svc, name, counter, logger), nil
	}

	if generation, err = wrap("generate", g.Model); err != nil {
		return nil, nil, err
	}
	if classification, err = wrap("classify", translationModel); err != nil {
		return nil, nil, err
	}
	return generation, classification, nil
}

func defaultDBPath() string {
	if path := os.Getenv("SNLCHAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "snlchat.db"
	}
	dir := filepath.Join(home, ".snlchat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "snlchat.db")
}
