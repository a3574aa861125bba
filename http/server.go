package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/snlchat"
	"github.com/google/uuid"
)

// Server defaults.
const (
	DefaultRequestTimeout = 60 * time.Second
	DefaultHistoryLimit   = 10
	maxRequestBytes       = 1 << 20
)

// Server serves the chat API over HTTP.
//
//	POST /chat    {"message","history","session_id"} -> {"response","session_id"}
//	GET  /health  -> {"status":"ok"}
type Server struct {
	Answerer snlchat.Answerer

	// Conversations stores session history. Sessions are ignored when nil,
	// otherwise requests without a session ID start a new session.
	Conversations snlchat.ConversationService

	// Limiter rejects clients over their request rate. Disabled when nil.
	Limiter *ClientLimiter

	// RequestTimeout bounds each call to Answerer.
	RequestTimeout time.Duration

	// HistoryLimit is the number of stored exchanges prepended to history.
	HistoryLimit int

	// CORSOrigin is sent as Access-Control-Allow-Origin when set.
	CORSOrigin string

	Logger *slog.Logger

	server *http.Server
	ln     net.Listener
}

// NewServer creates a Server answering with a.
func NewServer(a snlchat.Answerer) *Server {
	return &Server{
		Answerer:       a,
		RequestTimeout: DefaultRequestTimeout,
		HistoryLimit:   DefaultHistoryLimit,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// Handler returns the routed handler including CORS and rate limiting.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	return s.cors(s.limit(mux))
}

// Open starts listening on addr and serves in the background.
func (s *Server) Open(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.ln = ln
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// Addr returns the listening address, or "" before Open.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

type chatRequest struct {
	Message   string `json:"message"`
	History   string `json:"history"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	if req.SessionID == "" && s.Conversations != nil {
		req.SessionID = uuid.NewString()
	}

	history := s.sessionHistory(ctx, req.SessionID, req.History)
	answer := s.Answerer.Answer(ctx, req.Message, history)
	s.record(ctx, req, answer)

	writeJSON(w, http.StatusOK, chatResponse{Response: answer, SessionID: req.SessionID})
}

// sessionHistory prepends stored exchanges of the session to the history
// sent by the client.
func (s *Server) sessionHistory(ctx context.Context, sessionID, history string) string {
	if sessionID == "" || s.Conversations == nil {
		return history
	}

	exchanges, err := s.Conversations.FindExchanges(ctx, snlchat.ExchangeFilter{
		SessionID: &sessionID,
		Last:      s.HistoryLimit,
	})
	if err != nil {
		s.Logger.Warn("load session history", "session", sessionID, "err", err)
		return history
	}

	stored := snlchat.FormatHistory(exchanges)
	switch {
	case stored == "":
		return history
	case strings.TrimSpace(history) == "":
		return stored
	default:
		return stored + "\n" + history
	}
}

func (s *Server) record(ctx context.Context, req chatRequest, answer string) {
	if req.SessionID == "" || s.Conversations == nil || strings.TrimSpace(req.Message) == "" {
		return
	}
	err := s.Conversations.CreateExchange(ctx, &snlchat.Exchange{
		SessionID: req.SessionID,
		Question:  req.Message,
		Answer:    answer,
	})
	if err != nil {
		s.Logger.Warn("record exchange", "session", req.SessionID, "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) limit(next http.Handler) http.Handler {
	if s.Limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Limiter.Allow(clientKey(r)) {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	if s.CORSOrigin == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", s.CORSOrigin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies the caller by remote host.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
