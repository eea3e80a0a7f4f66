package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/campushub/internal/config"
	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/db/embedded"
	dbRedis "github.com/kailas-cloud/campushub/internal/db/redis"
	"github.com/kailas-cloud/campushub/internal/domain/funding"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	"github.com/kailas-cloud/campushub/internal/domain/member"
	"github.com/kailas-cloud/campushub/internal/domain/mentor"
	"github.com/kailas-cloud/campushub/internal/domain/project"
	logpkg "github.com/kailas-cloud/campushub/internal/logger"
	"github.com/kailas-cloud/campushub/internal/repository/catalog"
	"github.com/kailas-cloud/campushub/internal/seed"
	chiTransport "github.com/kailas-cloud/campushub/internal/transport/chi"
	healthuc "github.com/kailas-cloud/campushub/internal/usecase/health"
	listinguc "github.com/kailas-cloud/campushub/internal/usecase/listing"
)

// app is the composition root shared by all commands.
type app struct {
	cfg    config.Config
	env    string
	logger *zap.Logger
	store  db.Store

	projects *catalog.Repo[project.Project, catalog.ProjectRow]
	members  *catalog.Repo[member.Member, catalog.MemberRow]
	mentors  *catalog.Repo[mentor.Mentor, catalog.MentorRow]
	funding  *catalog.Repo[funding.Opportunity, catalog.FundingRow]
}

// newApp loads config, builds the logger and connects to the configured store.
func newApp(ctx context.Context, env string) (*app, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := openStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	prefix := cfg.Storage.KeyPrefix
	return &app{
		cfg:      cfg,
		env:      env,
		logger:   logger,
		store:    store,
		projects: catalog.NewProjects(store).WithKeyPrefix(prefix),
		members:  catalog.NewMembers(store).WithKeyPrefix(prefix),
		mentors:  catalog.NewMentors(store).WithKeyPrefix(prefix),
		funding:  catalog.NewFunding(store).WithKeyPrefix(prefix),
	}, nil
}

func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverEmbedded:
		return embedded.NewStore() //nolint:wrapcheck // wrapped by caller
	case config.DriverRedis, config.DriverValkey:
		return dbRedis.NewStore(dbRedis.Config{ //nolint:wrapcheck // wrapped by caller
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func (a *app) Close() {
	a.store.Close()
	_ = a.logger.Sync()
}

// loader seeds every catalog with the reference data.
func (a *app) loader() *seed.Loader {
	return seed.NewLoader(a.store, a.logger,
		seed.For(a.projects, seed.Projects()),
		seed.For(a.members, seed.Members()),
		seed.For(a.mentors, seed.Mentors()),
		seed.For(a.funding, seed.Funding()),
	)
}

// ensureSeeded loads the reference catalogs when configured to. The embedded
// store starts empty on every run, so it is always seeded.
func (a *app) ensureSeeded(ctx context.Context) error {
	if !a.cfg.Catalog.SeedOnStart && a.cfg.Database.Driver != config.DriverEmbedded {
		return nil
	}
	if _, err := a.loader().Load(ctx, a.cfg.Catalog.Force); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}
	return nil
}

// services builds one listing service per catalog.
func (a *app) services(rec listinguc.Recorder) chiTransport.Services {
	s := chiTransport.Services{
		Projects: listinguc.New[project.Project](kind.Projects, a.projects, project.Extractor).
			WithPopular(seed.Popular(kind.Projects)),
		Members: listinguc.New[member.Member](kind.Members, a.members, member.Extractor).
			WithPopular(seed.Popular(kind.Members)),
		Mentors: listinguc.New[mentor.Mentor](kind.Mentors, a.mentors, mentor.Extractor).
			WithPopular(seed.Popular(kind.Mentors)),
		Funding: listinguc.New[funding.Opportunity](kind.Funding, a.funding, funding.Extractor).
			WithPopular(seed.Popular(kind.Funding)),
	}
	if rec != nil {
		s.Projects.WithRecorder(rec)
		s.Members.WithRecorder(rec)
		s.Mentors.WithRecorder(rec)
		s.Funding.WithRecorder(rec)
	}
	return s
}

func (a *app) health() *healthuc.Service {
	return healthuc.New(a.store, map[string]healthuc.CatalogChecker{
		kind.Projects.String(): a.projects,
		kind.Members.String():  a.members,
		kind.Mentors.String():  a.mentors,
		kind.Funding.String():  a.funding,
	})
}
