// Package slog provides logging decorators for the snlchat service
// interfaces using log/slog.
package slog
