package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/snlchat"
	"github.com/fwojciec/snlchat/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkWALMode compares write performance between WAL and rollback journal modes
// for a chat workload: one exchange recorded per answered question.
func BenchmarkWALMode(b *testing.B) {
	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkExchangeInserts(b, false)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkExchangeInserts(b, true)
	})
}

func benchmarkExchangeInserts(b *testing.B, useWAL bool) {
	b.Helper()

	dbPath := filepath.Join(b.TempDir(), "bench.db")

	db := sqlite.NewDB(dbPath)
	require.NoError(b, db.Open())

	ctx := context.Background()
	mode := "DELETE"
	if useWAL {
		mode = "WAL"
	}
	_, err := db.ExecContext(ctx, "PRAGMA journal_mode = "+mode)
	require.NoError(b, err)

	defer func() {
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}()

	svc := sqlite.NewConversationService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		exchange := &snlchat.Exchange{
			SessionID: fmt.Sprintf("session-%d", i%10),
			Question:  fmt.Sprintf("Question %d about the poster collection?", i),
			Answer:    fmt.Sprintf("Answer %d. The poster was designed in 1973. [PRIMARY_SOURCE: https://example.org/%d]", i, i),
		}
		if err := svc.CreateExchange(ctx, exchange); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindExchanges measures loading the recent history of one session.
func BenchmarkFindExchanges(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	svc := sqlite.NewConversationService(db)
	for i := 0; i < 1000; i++ {
		require.NoError(b, svc.CreateExchange(ctx, &snlchat.Exchange{
			SessionID: fmt.Sprintf("session-%d", i%20),
			Question:  "q",
			Answer:    "a",
		}))
	}
	session := "session-7"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.FindExchanges(ctx, snlchat.ExchangeFilter{SessionID: &session, Last: 10}); err != nil {
			b.Fatal(err)
		}
	}
}
