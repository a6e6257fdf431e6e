package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gaugelab/gaugechat/internal/config"
	"github.com/gaugelab/gaugechat/internal/providers"
)

type stubAdapter struct {
	got    *Request
	result *Result
	err    error
}

func (s *stubAdapter) Chat(_ context.Context, req Request) (*Result, error) {
	s.got = &req
	return s.result, s.err
}

func testDispatcher(store config.Store, adapters map[providers.ID]Adapter) *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)), store, adapters)
}

func TestDispatchUnsupportedProvider(t *testing.T) {
	t.Parallel()

	d := testDispatcher(config.StaticStore{}, nil)
	req := userRequest("hello")
	req.Settings.ProviderID = "unknown-vendor"

	_, err := d.Dispatch(context.Background(), req)
	if !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown-vendor") {
		t.Fatalf("error must name the unrecognized id, got %q", err)
	}
}

func TestDispatchProviderNotConfigured(t *testing.T) {
	t.Parallel()

	d := testDispatcher(config.StaticStore{}, map[providers.ID]Adapter{
		providers.IDOpenAI: &stubAdapter{},
	})

	_, err := d.Dispatch(context.Background(), userRequest("hello"))
	if !errors.Is(err, ErrProviderNotConfigured) {
		t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
	}
	want := "Provider OpenAI is not configured. Missing environment variables: OPENAI_API_KEY"
	if err.Error() != want {
		t.Fatalf("error text mismatch:\n got %q\nwant %q", err, want)
	}
}

func TestDispatchAzureListsExactlyMissingKeys(t *testing.T) {
	t.Parallel()

	store := config.StaticStore{"AZURE_OPENAI_API_KEY": "key"}
	d := testDispatcher(store, map[providers.ID]Adapter{
		providers.IDAzureOpenAI: &stubAdapter{},
	})

	req := userRequest("hello")
	req.Settings.ProviderID = "azure-openai"

	_, err := d.Dispatch(context.Background(), req)
	if !errors.Is(err, ErrProviderNotConfigured) {
		t.Fatalf("expected ErrProviderNotConfigured, got %v", err)
	}
	want := "Provider Azure OpenAI is not configured. Missing environment variables: AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_DEPLOYMENT"
	if err.Error() != want {
		t.Fatalf("error text mismatch:\n got %q\nwant %q", err, want)
	}
}

func TestDispatchProviderNotImplemented(t *testing.T) {
	t.Parallel()

	// ollama is catalogued with no required env vars, so an empty adapter
	// map reaches the implementation check.
	d := testDispatcher(config.StaticStore{}, map[providers.ID]Adapter{})
	req := userRequest("hello")
	req.Settings.ProviderID = "ollama"

	_, err := d.Dispatch(context.Background(), req)
	if !errors.Is(err, ErrProviderNotImplemented) {
		t.Fatalf("expected ErrProviderNotImplemented, got %v", err)
	}
}

func TestDispatchDelegatesVerbatim(t *testing.T) {
	t.Parallel()

	want := &Result{Message: Message{Role: RoleAssistant, Content: "hi there"}}
	stub := &stubAdapter{result: want}
	store := config.StaticStore{"OPENAI_API_KEY": "sk-test"}
	d := testDispatcher(store, map[providers.ID]Adapter{providers.IDOpenAI: stub})

	req := userRequest("hello")
	got, err := d.Dispatch(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatal("dispatcher must propagate the adapter result verbatim")
	}
	if stub.got == nil || stub.got.Messages[0].Content != "hello" {
		t.Fatalf("adapter did not receive the request: %+v", stub.got)
	}
}

func TestDispatchPropagatesAdapterError(t *testing.T) {
	t.Parallel()

	upErr := &UpstreamError{Provider: "OpenAI", Status: 429, Body: "rate limited"}
	stub := &stubAdapter{err: upErr}
	store := config.StaticStore{"OPENAI_API_KEY": "sk-test"}
	d := testDispatcher(store, map[providers.ID]Adapter{providers.IDOpenAI: stub})

	_, err := d.Dispatch(context.Background(), userRequest("hello"))
	var gotUp *UpstreamError
	if !errors.As(err, &gotUp) || gotUp.Status != 429 {
		t.Fatalf("expected upstream error propagated, got %v", err)
	}
}
