// Package migration handles schema migrations with environment-specific
// strategies: gorm AutoMigrate in development, versioned SQL scripts
// elsewhere.
package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"vigia/internal/shared/logger"
)

const (
	envDevelopment = "development"
	envTest        = "test"
	envProduction  = "production"
)

// Manager orchestrates database migrations
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager creates a migration manager with the appropriate strategy for
// the given environment.
func NewManager(environment string) (*Manager, error) {
	log := logger.NewLogger().With("component", "migration.manager")

	var strategy Strategy
	switch environment {
	case envDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	case envTest, envProduction:
		scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
		if err != nil {
			return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
		}
		strategy = NewGolangMigrateStrategy(scriptsPath)
	default:
		return nil, fmt.Errorf("unknown environment: %s", environment)
	}

	log.Infow("migration manager initialized",
		"environment", environment,
		"strategy", strategy.GetName())

	return &Manager{
		strategy: strategy,
		logger:   log,
	}, nil
}

// Migrate runs migrations using the configured strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())
	return m.strategy.Migrate(db, AutoMigrateModels()...)
}

// GetStrategyName returns the name of the active strategy
func (m *Manager) GetStrategyName() string {
	return m.strategy.GetName()
}
