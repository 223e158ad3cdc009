package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // timezone names without relying on the host zoneinfo

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/internal/domain"
)

// Supported values of database.driver.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMongo:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverMongo, c.Database.Driver)
	}

	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if !c.Auth.Enabled() && !c.Auth.AllowAnonymous {
		return fmt.Errorf("auth.allow_anonymous=false requires auth.jwt_secret")
	}

	if err := c.Planner.validate(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	return nil
}

func (p *PlannerConfig) validate() error {
	owner, err := uuid.Parse(p.DefaultOwnerID)
	if err != nil || owner == uuid.Nil {
		return fmt.Errorf("default_owner_id must be a non-nil UUID (got %q)", p.DefaultOwnerID)
	}
	p.DefaultOwner = owner

	if !domain.DeleteMode(p.DeleteMode).IsValid() {
		return fmt.Errorf("delete_mode must be cascade or stub (got %q)", p.DeleteMode)
	}
	if !domain.ListScope(p.ListScope).IsValid() {
		return fmt.Errorf("list_scope must be owner or all (got %q)", p.ListScope)
	}
	if !domain.SyncMode(p.SyncMode).IsValid() {
		return fmt.Errorf("sync_mode must be create or existing (got %q)", p.SyncMode)
	}
	if p.DefaultTimerMinutes <= 0 {
		return fmt.Errorf("default_timer_minutes must be > 0 (got %d)", p.DefaultTimerMinutes)
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	p.Location = loc

	if _, err := time.Parse("15:04", p.DailySeedAt); err != nil {
		return fmt.Errorf("daily_seed_at must be HH:MM (got %q)", p.DailySeedAt)
	}

	return nil
}
