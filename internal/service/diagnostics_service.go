package service

import (
	"context"

	"athletic-store/internal/config"
	"athletic-store/internal/model"
	"athletic-store/internal/repository"

	"github.com/rs/zerolog"
)

// Status strings reported by Diagnostics.
const (
	StatusRunning        = "✅ Running"
	StatusNotAvailable   = "❌ Not Available"
	StatusAvailable      = "✅ Available"
	StatusWorking        = "✅ Connected & Working"
	StatusNotInitialised = "⚠️  Available but not initialized"
	StatusErrorPrefix    = "⚠️  Connected but Error: "
	StatusSet            = "✅ Set"
	StatusNotSet         = "❌ Not Set"
	StatusConnected      = "Connected"
	StatusNotConnected   = "Not Connected"

	maxReportedCollections = 10
	maxReportedErrorLength = 50
)

// diagnosticsService implements DiagnosticsService.
type diagnosticsService struct {
	repo            repository.DocumentRepository
	databaseURLSet  bool
	databaseNameSet bool
	logger          zerolog.Logger
}

// NewDiagnosticsService creates a diagnostics service. cfg only supplies
// whether DATABASE_URL and DATABASE_NAME were provided.
func NewDiagnosticsService(repo repository.DocumentRepository, cfg config.DatabaseConfig, logger zerolog.Logger) DiagnosticsService {
	return &diagnosticsService{
		repo:            repo,
		databaseURLSet:  cfg.URLSet(),
		databaseNameSet: cfg.NameSet(),
		logger:          logger.With().Str("service", "diagnostics").Logger(),
	}
}

// Diagnostics reports the backend state. It never fails; store errors are
// folded into the report.
func (s *diagnosticsService) Diagnostics(ctx context.Context) *model.Diagnostics {
	report := &model.Diagnostics{
		Backend:          StatusRunning,
		Database:         StatusNotAvailable,
		ConnectionStatus: StatusNotConnected,
		Collections:      []string{},
	}

	if s.repo != nil {
		report.Database = StatusAvailable
		report.ConnectionStatus = StatusConnected

		names, err := s.repo.ListCollectionNames(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to list collections")
			report.Database = StatusErrorPrefix + truncate(err.Error(), maxReportedErrorLength)
		} else {
			if len(names) > maxReportedCollections {
				names = names[:maxReportedCollections]
			}
			if names != nil {
				report.Collections = names
			}
			report.Database = StatusWorking
		}
	} else {
		report.Database = StatusNotInitialised
	}

	report.DatabaseURL = setStatus(s.databaseURLSet)
	report.DatabaseName = setStatus(s.databaseNameSet)

	return report
}

func setStatus(set bool) string {
	if set {
		return StatusSet
	}
	return StatusNotSet
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
