package campushub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/campushub/internal/db"
	"github.com/kailas-cloud/campushub/internal/db/embedded"
	dbRedis "github.com/kailas-cloud/campushub/internal/db/redis"
	"github.com/kailas-cloud/campushub/internal/domain/kind"
	"github.com/kailas-cloud/campushub/internal/repository/catalog"
	"github.com/kailas-cloud/campushub/internal/seed"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the campushub library entry point.
type Client struct {
	store  db.Store
	loader *seed.Loader
	obs    *observer

	projects *Catalog[Project]
	members  *Catalog[Member]
	mentors  *Catalog[Mentor]
	funding  *Catalog[Funding]
}

// New creates a Client and connects to the store.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: catalog.DefaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("campushub: store required (use WithEmbedded, WithValkey or WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("campushub: database not ready: %w", err)
	}

	c := wireClient(store, cfg, obs)

	if cfg.seed {
		if _, err := c.Seed(ctx, cfg.seedForce); err != nil {
			store.Close()
			return nil, err
		}
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverEmbedded:
		s, err := embedded.NewStore()
		if err != nil {
			return nil, fmt.Errorf("campushub: start embedded store: %w", err)
		}
		return s, nil
	case driverValkey, driverRedis:
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, fmt.Errorf("campushub: %s address required", cfg.driver)
		}
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("campushub: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("campushub: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	projects := catalog.NewProjects(store).WithKeyPrefix(cfg.keyPrefix)
	members := catalog.NewMembers(store).WithKeyPrefix(cfg.keyPrefix)
	mentors := catalog.NewMentors(store).WithKeyPrefix(cfg.keyPrefix)
	funding := catalog.NewFunding(store).WithKeyPrefix(cfg.keyPrefix)

	projectSchema := mustSchema[Project]()
	memberSchema := mustSchema[Member]()
	mentorSchema := mustSchema[Mentor]()
	fundingSchema := mustSchema[Funding]()

	return &Client{
		store: store,
		obs:   obs,
		loader: seed.NewLoader(store, nil,
			seed.For(projects, seed.Projects()),
			seed.For(members, seed.Members()),
			seed.For(mentors, seed.Mentors()),
			seed.For(funding, seed.Funding()),
		),
		projects: newCatalog[Project](kind.Projects,
			converted[projectDomain, Project]{src: projects, conv: fromProject},
			extractorFor[Project](projectSchema), seed.Popular(kind.Projects), obs),
		members: newCatalog[Member](kind.Members,
			converted[memberDomain, Member]{src: members, conv: fromMember},
			extractorFor[Member](memberSchema), seed.Popular(kind.Members), obs),
		mentors: newCatalog[Mentor](kind.Mentors,
			converted[mentorDomain, Mentor]{src: mentors, conv: fromMentor},
			extractorFor[Mentor](mentorSchema), seed.Popular(kind.Mentors), obs),
		funding: newCatalog[Funding](kind.Funding,
			converted[fundingDomain, Funding]{src: funding, conv: fromFunding},
			extractorFor[Funding](fundingSchema), seed.Popular(kind.Funding), obs),
	}
}

// mustSchema parses the schema of a built-in record type.
func mustSchema[T any]() *schemaMeta {
	m, err := parseSchema[T]()
	if err != nil {
		panic(err)
	}
	return m
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Seed writes the reference catalogs. Without force, catalogs that are
// already loaded are kept. Returns the number of records written per catalog.
func (c *Client) Seed(ctx context.Context, force bool) (_ map[string]int, err error) {
	defer func(start time.Time) { c.obs.observe("all", "seed", start, err) }(time.Now())

	report, err := c.loader.Load(ctx, force)
	if err != nil {
		return nil, fmt.Errorf("campushub: seed: %w", err)
	}
	out := make(map[string]int, len(report))
	for k, n := range report {
		out[k.String()] = n
	}
	return out, nil
}

// Projects returns the project catalog.
func (c *Client) Projects() *Catalog[Project] { return c.projects }

// Members returns the teammate catalog.
func (c *Client) Members() *Catalog[Member] { return c.members }

// Mentors returns the mentor catalog.
func (c *Client) Mentors() *Catalog[Mentor] { return c.mentors }

// Funding returns the funding opportunity catalog.
func (c *Client) Funding() *Catalog[Funding] { return c.funding }
