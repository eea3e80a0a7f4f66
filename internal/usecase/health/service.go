package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the database is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckEmpty indicates a reachable but unloaded catalog.
	CheckEmpty CheckResult = "empty"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db       DBPinger
	catalogs map[string]CatalogChecker
}

// New creates a Service. catalogs can be nil.
func New(db DBPinger, catalogs map[string]CatalogChecker) *Service {
	return &Service{db: db, catalogs: catalogs}
}

// Check runs health checks against all components.
// Catalog checks are skipped when the database is down.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks["database"] = CheckOK

	names := make([]string, 0, len(s.catalogs))
	for name := range s.catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	status := Healthy
	for _, name := range names {
		loaded, err := s.catalogs[name].Loaded(ctx)
		switch {
		case err != nil:
			checks["catalog:"+name] = CheckError
			status = Degraded
		case !loaded:
			checks["catalog:"+name] = CheckEmpty
			status = Degraded
		default:
			checks["catalog:"+name] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
