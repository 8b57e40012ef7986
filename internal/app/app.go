package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/textcrest/textcrest-go/internal/config"
	"github.com/textcrest/textcrest-go/internal/logger"
	"github.com/textcrest/textcrest-go/pkg/reporters"
	"github.com/textcrest/textcrest-go/pkg/textcrest"
)

// App wires the TextCrest client and optional report fanout behind the
// smsctl commands.
type App struct {
	cfg    *config.Config
	client *textcrest.Client
	fanout *reporters.Fanout
	log    logger.Logger
}

// New builds the CLI runtime from config.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := textcrest.New(cfg.APIKey,
		textcrest.WithBaseURL(cfg.BaseURL),
		textcrest.WithTimeout(cfg.HTTPTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	fanout, err := buildFanout(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:    cfg,
		client: client,
		fanout: fanout,
		log:    log,
	}, nil
}

// buildFanout loads the reporter registry when one is configured.
func buildFanout(ctx context.Context, cfg *config.Config, log logger.Logger) (*reporters.Fanout, error) {
	if strings.TrimSpace(cfg.ReportersFile) == "" {
		return nil, nil
	}

	reg, err := reporters.LoadRegistry(cfg.ReportersFile)
	if err != nil {
		return nil, fmt.Errorf("load reporters registry: %w", err)
	}

	enabled := reg.Enabled()
	if len(enabled) == 0 {
		log.WarnObj("reporters file has no enabled reporters", "reporters_file", cfg.ReportersFile)
		return nil, nil
	}

	sinks, err := reporters.BuildAll(ctx, reporters.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build reporters: %w", err)
	}

	reporterSummaries := make([]map[string]string, 0, len(enabled))
	for _, repCfg := range enabled {
		reporterSummaries = append(reporterSummaries, map[string]string{
			"id":   repCfg.ID,
			"type": repCfg.Type,
		})
	}
	log.InfoObj("reporters registry loaded", "reporters_meta", map[string]any{
		"count":     len(reporterSummaries),
		"reporters": reporterSummaries,
	})

	return reporters.NewFanout(sinks), nil
}

// Send submits a message and forwards a report to configured sinks.
func (a *App) Send(ctx context.Context, to []string, message, sender string) error {
	if len(to) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if sender == "" {
		sender = a.cfg.SenderID
	}

	req := textcrest.SendRequest{
		Message:  message,
		SenderID: sender,
	}
	if len(to) == 1 {
		req.To = textcrest.To(to[0])
	} else {
		req.To = textcrest.ToAll(to...)
	}

	result, err := a.client.Send(ctx, req)
	if err != nil {
		return err
	}
	a.log.InfoObj("message submitted", "send_result", result)

	a.report(ctx, result, to, sender)

	return printJSON(result)
}

// report fans the send acknowledgement out to configured sinks. Reporting
// failures are logged, not returned: the send itself already succeeded.
func (a *App) report(ctx context.Context, result textcrest.SendResult, to []string, sender string) {
	if a.fanout == nil || a.fanout.Size() == 0 {
		return
	}

	rep := reporters.NewReport(result, to, sender)
	count, err := a.fanout.Report(ctx, rep)
	if err != nil {
		a.log.ErrorObj("report fanout failed", "report_errors", map[string]any{
			"message_id": rep.MessageID,
			"delivered":  count,
			"error":      err.Error(),
		})
		return
	}
	a.log.DebugObj("report fanout delivered", "report_meta", map[string]any{
		"message_id": rep.MessageID,
		"delivered":  count,
	})
}

// History prints one page of message history.
func (a *App) History(ctx context.Context, page, limit int, status string) error {
	opts := textcrest.HistoryOptions{
		Page:   page,
		Limit:  limit,
		Status: textcrest.MessageStatus(status),
	}

	history, err := a.client.History(ctx, opts)
	if err != nil {
		return err
	}
	return printJSON(history)
}

// Balance prints the wallet balance.
func (a *App) Balance(ctx context.Context) error {
	balance, err := a.client.Balance(ctx)
	if err != nil {
		return err
	}
	return printJSON(balance)
}

// Transactions prints one page of the wallet ledger.
func (a *App) Transactions(ctx context.Context, page, limit int) error {
	transactions, err := a.client.Transactions(ctx, page, limit)
	if err != nil {
		return err
	}
	return printJSON(transactions)
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
