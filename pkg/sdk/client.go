package sommelier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbRedis "github.com/vinoteca-cloud/sommelier/internal/db/redis"
	"github.com/vinoteca-cloud/sommelier/internal/domain"
	"github.com/vinoteca-cloud/sommelier/internal/domain/narrative"
	"github.com/vinoteca-cloud/sommelier/internal/prompt"
	narrativerepo "github.com/vinoteca-cloud/sommelier/internal/repository/narrative"
	winerepo "github.com/vinoteca-cloud/sommelier/internal/repository/wine"
	"github.com/vinoteca-cloud/sommelier/internal/transport/mockai"
	openaiGen "github.com/vinoteca-cloud/sommelier/internal/transport/openai"
	comparisonuc "github.com/vinoteca-cloud/sommelier/internal/usecase/comparison"
	healthuc "github.com/vinoteca-cloud/sommelier/internal/usecase/health"
	profileuc "github.com/vinoteca-cloud/sommelier/internal/usecase/profile"
	wineuc "github.com/vinoteca-cloud/sommelier/internal/usecase/wine"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type wineUseCase interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Wine, error)
	List(ctx context.Context) ([]*domain.Wine, error)
}

type profileUseCase interface {
	GetOrGenerate(ctx context.Context, wineID uuid.UUID, language string) (narrative.Profile, bool, error)
	Regenerate(ctx context.Context, wineID uuid.UUID, language string) (narrative.Profile, error)
	CacheStatus(ctx context.Context, wineID uuid.UUID, language string) (narrative.CacheStatus, error)
}

type comparisonUseCase interface {
	GetOrGenerate(ctx context.Context, wineAID, wineBID uuid.UUID, language string) (narrative.Comparison, bool, error)
	Regenerate(ctx context.Context, wineAID, wineBID uuid.UUID, language string) (narrative.Comparison, error)
	CacheStatus(ctx context.Context, wineAID, wineBID uuid.UUID, language string) (narrative.CacheStatus, error)
}

// Client is the sommelier SDK entry point.
type Client struct {
	store         *dbRedis.Store
	wines         *winerepo.Repo
	wineSvc       wineUseCase
	profileSvc    profileUseCase
	comparisonSvc comparisonUseCase
	healthSvc     healthUseCase
	obs           *observer
}

// New creates a sommelier Client and connects to the database.
// The provided context is used for the initial readiness check and
// optional catalog seeding.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("sommelier: database address required (use WithValkey or WithRedis)")
	}

	if cfg.keyPrefix != "" {
		domain.KeyPrefix = cfg.keyPrefix
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("sommelier: create store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("sommelier: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	c := wireClient(store, cfg, obs)

	if cfg.seedFile != "" {
		if _, err := c.wines.Seed(ctx, cfg.seedFile); err != nil {
			store.Close()
			return nil, fmt.Errorf("sommelier: seed catalog: %w", err)
		}
	}
	return c, nil
}

func wireClient(store *dbRedis.Store, cfg *clientConfig, obs *observer) *Client {
	nop := zap.NewNop()

	wineRepo := winerepo.New(store)
	recordRepo := narrativerepo.New(store)

	gen := buildGenerator(cfg, nop)

	return &Client{
		store:         store,
		wines:         wineRepo,
		wineSvc:       wineuc.New(wineRepo),
		profileSvc:    profileuc.New(wineRepo, recordRepo, gen, nop),
		comparisonSvc: comparisonuc.New(wineRepo, recordRepo, gen, nop),
		healthSvc:     healthuc.New(store, nil),
		obs:           obs,
	}
}

// generator covers both usecase contracts.
type generator interface {
	GenerateProfile(ctx context.Context, wine *domain.Wine, language string) (narrative.Document, error)
	GenerateComparison(ctx context.Context, wineA, wineB *domain.Wine, language string) (narrative.Document, error)
}

func buildGenerator(cfg *clientConfig, logger *zap.Logger) generator {
	if cfg.generator != nil {
		return &generatorAdapter{inner: cfg.generator}
	}
	if cfg.openAI != nil {
		oc := *cfg.openAI
		if oc.Model == "" {
			oc.Model = "gpt-4o-mini"
		}
		if oc.MaxTokens <= 0 {
			oc.MaxTokens = 2000
		}
		if oc.Temperature <= 0 {
			oc.Temperature = 0.7
		}
		if oc.MaxRetries <= 0 {
			oc.MaxRetries = 2
		}
		return openaiGen.NewGenerator(&openaiGen.Config{
			APIKey:         oc.APIKey,
			BaseURL:        oc.BaseURL,
			Model:          oc.Model,
			MaxTokens:      oc.MaxTokens,
			Temperature:    oc.Temperature,
			MaxRetries:     oc.MaxRetries,
			RetryBaseDelay: time.Second,
			Prompts:        prompt.NewBuilder(),
			Logger:         logger,
		})
	}
	return mockai.NewGenerator(logger)
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// generatorAdapter wraps the public Generator to satisfy the usecase contracts.
type generatorAdapter struct {
	inner Generator
}

func (a *generatorAdapter) GenerateProfile(
	ctx context.Context, wine *domain.Wine, language string,
) (narrative.Document, error) {
	m, err := a.inner.GenerateProfile(ctx, wine, language)
	if err != nil {
		return nil, fmt.Errorf("generate profile: %w", err)
	}
	return narrative.Document(m), nil
}

func (a *generatorAdapter) GenerateComparison(
	ctx context.Context, wineA, wineB *domain.Wine, language string,
) (narrative.Document, error) {
	m, err := a.inner.GenerateComparison(ctx, wineA, wineB, language)
	if err != nil {
		return nil, fmt.Errorf("generate comparison: %w", err)
	}
	return narrative.Document(m), nil
}
