package integration

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"athletic-store/internal/config"
	"athletic-store/internal/handler"
	"athletic-store/internal/repository"
	"athletic-store/internal/router"
	"athletic-store/internal/seed"
	"athletic-store/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestStore holds a document store backed by a PostgreSQL container.
type TestStore struct {
	Repo   repository.DocumentRepository
	Config config.DatabaseConfig
}

// SetupTestStore starts a PostgreSQL container and opens it through the
// same path the API server uses.
func SetupTestStore(t *testing.T) *TestStore {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("athletic_store"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := config.DatabaseConfig{
		URL:            connStr,
		Name:           "athletic_store",
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: 10,
	}

	repo, err := repository.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close(context.Background())
	})

	return &TestStore{Repo: repo, Config: cfg}
}

// NewServer wires services, handlers and the router over the store.
func (s *TestStore) NewServer() http.Handler {
	logger := zerolog.Nop()

	catalogService := service.NewCatalogService(s.Repo, logger)
	newsletterService := service.NewNewsletterService(s.Repo, logger)
	diagnosticsService := service.NewDiagnosticsService(s.Repo, s.Config, logger)

	return router.New(
		handler.NewProductHandler(catalogService, logger),
		handler.NewCatalogHandler(catalogService, logger),
		handler.NewNewsletterHandler(newsletterService, logger),
		handler.NewStatusHandler(diagnosticsService, logger),
		logger,
	)
}

// SeedSamples writes the sample seed files into a temp dir and inserts
// each of them into its collection.
func (s *TestStore) SeedSamples(t *testing.T) map[string]*seed.Result {
	t.Helper()

	paths, err := seed.WriteSamples(t.TempDir())
	require.NoError(t, err)

	seeder := seed.NewSeeder(seed.NewFileLoader(zerolog.Nop()), s.Repo, zerolog.Nop())
	results := make(map[string]*seed.Result, len(paths))
	for _, path := range paths {
		collection := seed.SampleFiles[filepath.Base(path)]
		result, err := seeder.Seed(context.Background(), collection, path)
		require.NoError(t, err)
		results[collection] = result
	}
	return results
}
