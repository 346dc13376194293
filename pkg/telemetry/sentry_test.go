package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"

	"github.com/ghuser/wardrobe/pkg/config"
)

// recordingHub returns a hub whose events are collected instead of sent.
func recordingHub(t *testing.T) (*sentry.Hub, *[]*sentry.Event) {
	t.Helper()
	var events []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			events = append(events, event)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("sentry client: %v", err)
	}
	return sentry.NewHub(client, sentry.NewScope()), &events
}

func TestCaptureError_TagsEventWithoutLeakingScope(t *testing.T) {
	hub, events := recordingHub(t)
	hub.Scope().SetTag("service", "wardrobe")
	ctx := sentry.SetHubOnContext(context.Background(), hub)

	CaptureError(ctx, errors.New("connection reset"), map[string]string{"kind": "DATABASE_ERROR"})
	CaptureError(ctx, errors.New("second"), nil)

	if len(*events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(*events))
	}
	first := (*events)[0]
	if first.Tags["kind"] != "DATABASE_ERROR" || first.Tags["service"] != "wardrobe" {
		t.Fatalf("unexpected tags on first event: %v", first.Tags)
	}
	if _, ok := (*events)[1].Tags["kind"]; ok {
		t.Fatalf("per-event tag leaked into the next event: %v", (*events)[1].Tags)
	}
}

func TestSentryOptions_CarryServiceIdentity(t *testing.T) {
	cfg := &config.Config{
		ServiceName:     "wardrobe",
		ServiceVersion:  "1.4.0",
		Environment:     config.EnvProduction,
		SentryDSN:       "https://key@sentry.example.com/1",
		OtelSampleRatio: 0.2,
	}

	opts := sentryOptions(cfg)
	if opts.Release != "wardrobe@1.4.0" {
		t.Errorf("release: got %q", opts.Release)
	}
	if opts.ServerName != "wardrobe" || opts.Environment != config.EnvProduction {
		t.Errorf("unexpected identity: server=%q env=%q", opts.ServerName, opts.Environment)
	}
	if opts.TracesSampleRate != 0.2 {
		t.Errorf("traces sample rate: got %v", opts.TracesSampleRate)
	}

	tags := serviceTags(cfg)
	if tags["service"] != "wardrobe" || tags["service.version"] != "1.4.0" || tags["environment"] != config.EnvProduction {
		t.Errorf("unexpected service tags: %v", tags)
	}
}

func TestSetupSentry_NoDSNIsNoop(t *testing.T) {
	if err := SetupSentry(&config.Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
