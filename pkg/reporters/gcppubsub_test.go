package reporters

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
)

func TestPubSubReporterPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	defer os.Unsetenv("PUBSUB_EMULATOR_HOST")
	os.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := client.CreateTopic(ctx, "send-reports"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	rep, err := newPubSubReporter(ctx, ReporterConfig{
		ID:   "pubsub-1",
		Type: TypePubSub,
		PubSub: &PubSubReporterConfig{
			ProjectID: "test-project",
			Topic:     "send-reports",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newPubSubReporter: %v", err)
	}

	err = rep.Report(ctx, Report{
		MessageID:  "msg-1",
		Recipients: []string{"+2348012345678"},
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	msgs := server.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(msgs))
	}
	if got := msgs[0].Attributes["message_id"]; got != "msg-1" {
		t.Fatalf("message_id attribute = %q", got)
	}
}
