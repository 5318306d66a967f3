package test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"deedflow/internal/jwtauth"
	"deedflow/internal/tracking/events"
	"deedflow/internal/tracking/handler"
	"deedflow/internal/tracking/service"
	"deedflow/internal/tracking/store/documents"
	"deedflow/internal/tracking/store/status"
	"deedflow/pkg/platform/debounce"
	"deedflow/pkg/testutil"
)

// Smoke test over the assembled router: the full middleware chain is wired
// and unauthenticated requests never reach the tracking engine.
func TestRouterScaffold(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scheduler := debounce.NewScheduler()
	t.Cleanup(scheduler.Stop)

	svc := service.NewService(
		documents.NewInMemory(),
		status.NewInMemory(),
		nil,
		events.Noop{},
		nil,
		scheduler,
		time.Second,
		nil,
		logger,
	)
	jwt := jwtauth.NewService("scaffold-key", "deedflow-test", "deedflow")

	router := chi.NewRouter()
	handler.New(svc, logger, nil, jwt).Register(router)

	testutil.Given(t, "the assembled router", func(t *testing.T) {
		testutil.When(t, "calling a tracking route without a token", func(t *testing.T) {
			req := testutil.NewRequest(t, http.MethodGet,
				"/transactions/550e8400-e29b-41d4-a716-446655440000/stages")
			rec := testutil.DoRequest(router, req)

			testutil.Then(t, "it should respond unauthorized", func(t *testing.T) {
				if rec.Code != http.StatusUnauthorized {
					t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
				}
			})
		})

		testutil.When(t, "calling an unknown route with a valid token", func(t *testing.T) {
			token, err := jwt.GenerateAccessToken(uuid.New(), "scaffold-client", time.Hour)
			if err != nil {
				t.Fatalf("generate token: %v", err)
			}
			req := testutil.NewRequest(t, http.MethodGet, "/no/such/route")
			req.Header.Set("Authorization", "Bearer "+token)
			rec := testutil.DoRequest(router, req)

			testutil.Then(t, "it should respond not found", func(t *testing.T) {
				if rec.Code != http.StatusNotFound {
					t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
				}
			})
		})
	})
}
