package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/textcrest/textcrest-go/internal/app"
	"github.com/textcrest/textcrest-go/internal/config"
	"github.com/textcrest/textcrest-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smsctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	if len(args) == 0 {
		return fmt.Errorf("missing command\n\n%s", usage())
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli, err := app.New(ctx, cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize smsctl", "error", err)
		return err
	}

	switch args[0] {
	case "send":
		return runSend(ctx, cli, args[1:])
	case "history":
		return runHistory(ctx, cli, args[1:])
	case "balance":
		return cli.Balance(ctx)
	case "transactions":
		return runTransactions(ctx, cli, args[1:])
	case "help", "-h", "--help":
		fmt.Println(usage())
		return nil
	default:
		return fmt.Errorf("unknown command %q\n\n%s", args[0], usage())
	}
}

func runSend(ctx context.Context, cli *app.App, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	to := fs.String("to", "", "recipient phone number, or a comma-separated list")
	message := fs.String("message", "", "message text")
	sender := fs.String("sender", "", "sender ID shown on the recipient's phone")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *to == "" {
		return fmt.Errorf("send: -to is required")
	}
	if *message == "" {
		return fmt.Errorf("send: -message is required")
	}

	return cli.Send(ctx, splitRecipients(*to), *message, *sender)
}

func runHistory(ctx context.Context, cli *app.App, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	status := fs.String("status", "", "filter: pending, sent, delivered, or failed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return cli.History(ctx, *page, *limit, *status)
}

func runTransactions(ctx context.Context, cli *app.App, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return cli.Transactions(ctx, *page, *limit)
}

// splitRecipients turns "a,b,c" into a trimmed slice, preserving order.
func splitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func usage() string {
	return strings.TrimSpace(`
Usage: smsctl <command> [flags]

Commands:
  send          send a message (-to, -message, [-sender])
  history       list sent messages ([-page], [-limit], [-status])
  balance       show wallet balance
  transactions  list wallet transactions ([-page], [-limit])

Configuration comes from the environment (API_KEY, BASE_URL, SENDER_ID,
REPORTERS_FILE, LOG_LEVEL) or configs/.env.`)
}
