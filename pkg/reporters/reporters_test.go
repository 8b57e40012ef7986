package reporters

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRegistryEnabledFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reporters.yaml")
	raw := `
reporters:
  - id: hook1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: hook2
    type: http
    enabled: true
    http:
      url: https://example.com/2
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 1 || enabled[0].ID != "hook2" {
		t.Fatalf("expected only hook2 enabled, got %#v", enabled)
	}
}

func TestLoadRegistryRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reporters.yaml")
	raw := `
reporters:
  - id: hook
    type: http
    http:
      url: https://example.com
  - id: hook
    type: http
    http:
      url: https://example.com/2
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := LoadRegistry(path); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestSanitizeAppliesHTTPDefaults(t *testing.T) {
	cfg := sanitizeReporterConfig(ReporterConfig{
		ID:   " hook ",
		Type: " HTTP ",
		HTTP: &HTTPReporterConfig{URL: " https://example.com "},
	})
	if cfg.ID != "hook" || cfg.Type != "http" {
		t.Fatalf("sanitized id/type = %q/%q", cfg.ID, cfg.Type)
	}
	if cfg.HTTP.Method != "POST" {
		t.Fatalf("Method = %s, want POST default", cfg.HTTP.Method)
	}
	if cfg.HTTP.TimeoutSeconds != httpDefaultTimeoutSeconds {
		t.Fatalf("TimeoutSeconds = %d", cfg.HTTP.TimeoutSeconds)
	}
}

func TestValidateRejectsMissingBlocks(t *testing.T) {
	cases := []ReporterConfig{
		{ID: "h1", Type: TypeHTTP},
		{ID: "q1", Type: TypeSQS},
		{ID: "q2", Type: TypeSQS, SQS: &SQSReporterConfig{QueueURL: "https://sqs/queue"}},
		{ID: "t1", Type: TypeSNS},
		{ID: "t2", Type: TypeSNS, SNS: &SNSReporterConfig{TopicARN: "arn:aws:sns:::topic"}},
		{ID: "p1", Type: TypePubSub},
		{ID: "p2", Type: TypePubSub, PubSub: &PubSubReporterConfig{ProjectID: "proj"}},
		{Type: TypeHTTP},
	}
	for _, cfg := range cases {
		if err := validateReporterConfig(cfg); err == nil {
			t.Fatalf("expected validation error for %#v", cfg)
		}
	}
}
