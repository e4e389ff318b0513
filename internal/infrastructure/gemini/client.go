// Package gemini is the boundary to the generative/search service. Every
// upstream fault is absorbed here: callers only ever see
// ports.ErrGeneratorUnavailable, ports.ErrEmptyReply, or a usable result.
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"google.golang.org/genai"

	"agentcrm/internal/bootstrap/config"
	"agentcrm/internal/bootstrap/logging"
	"agentcrm/internal/errs"
	"agentcrm/internal/ports"
)

// Client wraps the GenAI SDK. A Client built without an API key is valid
// but disabled: every call reports the feature as unavailable instead of
// contacting the service.
type Client struct {
	genai *genai.Client

	mu    sync.RWMutex
	model string
}

func New(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "gemini.client"))

	c := &Client{model: cfg.Model}
	if c.model == "" {
		c.model = "gemini-2.5-flash"
	}

	if cfg.APIKey == "" {
		logging.Warn(logCtx, "no API key configured, gemini features disabled")
		return c, nil
	}

	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "create genai client")
	}

	c.genai = sdk
	logging.Info(logCtx, "gemini client ready", slog.String("model", c.model))
	return c, nil
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool {
	return c != nil && c.genai != nil
}

// SetModel swaps the model name; picked up by the next call. Used by the
// config hot-reload hook.
func (c *Client) SetModel(model string) {
	if model == "" {
		return
	}
	c.mu.Lock()
	c.model = model
	c.mu.Unlock()
}

func (c *Client) currentModel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

var (
	_ ports.LeadGenerator = (*Client)(nil)
	_ ports.ChatAgent     = (*Client)(nil)
)
