package cli

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/tasklane/internal/app"
	"github.com/thenoetrevino/tasklane/internal/config"
	"github.com/thenoetrevino/tasklane/internal/storage"
	"github.com/thenoetrevino/tasklane/internal/store"
	"github.com/thenoetrevino/tasklane/internal/testutil"
)

// Epoch is the first timestamp handed out by SetupCLITest's clock
var Epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// SetupCLITest returns an App over an in-memory backend with sequential ids
// ("id-1", "id-2", ...) and a clock that advances a minute per task
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	return SetupCLITestWithKV(t, storage.NewMemory())
}

// SetupCLITestWithKV is SetupCLITest over a caller-supplied backend
func SetupCLITestWithKV(t *testing.T, kv storage.KV) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = storage.BackendMemory

	a, err := app.New(context.Background(), cfg,
		app.WithKV(kv),
		app.WithStoreOptions(
			store.WithClock(testutil.Clock(Epoch, time.Minute)),
			store.WithIDGenerator(testutil.SequentialIDs("id")),
		),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	return a
}
