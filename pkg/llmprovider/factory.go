package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"task-calendar/config"
	"task-calendar/pkg/deepseek"
	"task-calendar/pkg/gemini"
	"task-calendar/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are sorted by priority (ascending) with disabled ones filtered out.
// Providers that fail to initialize are skipped instead of failing the service.
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			if l != nil {
				l.Warn(context.Background(), "llmprovider.InitializeProviders", "error", errMsg)
			}
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	httpClient := &http.Client{Timeout: parseTimeout(cfg.Timeout)}

	switch cfg.Name {
	case "openai":
		opts := []option.RequestOption{
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(httpClient),
			// The manager owns retries.
			option.WithMaxRetries(0),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		return NewOpenAIAdapter(openai.NewClient(opts...), cfg.Model), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseTimeout(raw string) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// NewManagerFromConfig builds a Manager for the enabled providers in cfg.
func NewManagerFromConfig(cfg *config.LLMConfig, l log.Logger, observer Observer) (*Manager, error) {
	providers, err := InitializeProviders(cfg, l)
	if err != nil {
		return nil, err
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
		Observer:        observer,
	}, l), nil
}
