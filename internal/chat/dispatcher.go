package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gaugelab/gaugechat/internal/config"
	"github.com/gaugelab/gaugechat/internal/providers"
)

// Adapter translates a normalized request into one upstream wire protocol
// and the upstream response back into the internal Result shape.
type Adapter interface {
	Chat(ctx context.Context, req Request) (*Result, error)
}

// Dispatcher routes a normalized request to the adapter matching its
// provider id, re-checking configuration against the live store first.
type Dispatcher struct {
	store    config.Store
	adapters map[providers.ID]Adapter
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given adapter set. The store
// is consulted at dispatch time, not construction time.
func NewDispatcher(log *slog.Logger, store config.Store, adapters map[providers.ID]Adapter) *Dispatcher {
	return &Dispatcher{
		store:    store,
		adapters: adapters,
		logger:   log.With(slog.String("service", "chat_dispatcher")),
	}
}

// Dispatch selects the provider named by the request settings and delegates
// to its adapter. Availability is recomputed here even if a caller checked
// it earlier: credentials can appear or vanish between the availability
// query and the chat call.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	id := providers.ID(req.Settings.ProviderID)

	desc, ok := providers.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, req.Settings.ProviderID)
	}

	if missing := providers.MissingKeys(desc, d.store); len(missing) > 0 {
		return nil, fmt.Errorf("Provider %s is %w. Missing environment variables: %s", desc.Label, ErrProviderNotConfigured, strings.Join(missing, ", "))
	}

	adapter, ok := d.adapters[desc.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotImplemented, desc.ID)
	}

	d.logger.Debug("dispatching chat completion",
		slog.String("provider", string(desc.ID)),
		slog.String("model", req.Settings.ModelID),
		slog.Int("messages", len(req.Messages)))

	return adapter.Chat(ctx, req)
}
