package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/odyssey-erp/backoffice/cmd/backoffice/cli"
	"github.com/odyssey-erp/backoffice/internal/app"
	"github.com/odyssey-erp/backoffice/internal/console"
	"github.com/odyssey-erp/backoffice/internal/i18n"
	"github.com/odyssey-erp/backoffice/internal/listview"
	"github.com/odyssey-erp/backoffice/internal/masterdata/clients"
	"github.com/odyssey-erp/backoffice/internal/masterdata/suppliers"
	"github.com/odyssey-erp/backoffice/internal/masterdata/supplies"
	"github.com/odyssey-erp/backoffice/internal/notify"
	"github.com/odyssey-erp/backoffice/internal/observability"
	"github.com/odyssey-erp/backoffice/internal/platform/cache"
	"github.com/odyssey-erp/backoffice/internal/procurement/purchases"
	"github.com/odyssey-erp/backoffice/internal/remote"
	"github.com/odyssey-erp/backoffice/internal/validation"
)

const usage = `usage:
  backoffice [-env FILE] [-page clientes|proveedores|insumos|compras]
  backoffice [-env FILE] summary [-json]
  backoffice [-env FILE] toasts [-follow] [-json]
`

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("backoffice", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	envFile := fs.String("env", ".env", "dotenv file to load")
	start := fs.String("page", suppliers.Resource, "page shown first")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, stop := app.SignalContext(context.Background())
	defer stop()

	cfg, err := app.LoadConfig(*envFile)
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		return 1
	}
	// stdout carries the rendered pages
	logger := app.NewLoggerTo(cfg, os.Stderr)

	metrics := observability.NewMetrics()
	client := remote.NewClient(cfg.APIBaseURL, cfg.APITimeout,
		remote.WithLogger(logger),
		remote.WithObserver(metrics))

	clientStore := remote.NewResource[clients.Client](client, clients.Resource)
	supplierStore := remote.NewResource[suppliers.Supplier](client, suppliers.Resource)
	supplyStore := remote.NewResource[supplies.Supply](client, supplies.Resource)
	purchaseStore := remote.NewResource[purchases.Purchase](client, purchases.Resource)

	if fs.Arg(0) == "summary" {
		sub := flag.NewFlagSet("summary", flag.ContinueOnError)
		asJSON := sub.Bool("json", false, "print JSON")
		if err := sub.Parse(fs.Args()[1:]); err != nil {
			return 2
		}
		return cli.SummaryCommand(ctx, cli.Sources{
			Clients:   clientStore,
			Suppliers: supplierStore,
			Supplies:  supplyStore,
			Purchases: purchaseStore,
		}, cli.SummaryOptions{JSONOutput: *asJSON})
	}
	if fs.Arg(0) == "toasts" {
		sub := flag.NewFlagSet("toasts", flag.ContinueOnError)
		follow := sub.Bool("follow", false, "keep printing new toasts")
		asJSON := sub.Bool("json", false, "print JSON lines")
		if err := sub.Parse(fs.Args()[1:]); err != nil {
			return 2
		}
		redisClient, err := cache.New(ctx, cache.Options{Addr: cfg.RedisAddr})
		if err != nil {
			logger.Error("connect redis", slog.Any("error", err))
			return 1
		}
		if redisClient == nil {
			fmt.Fprintln(os.Stderr, "toasts: REDIS_ADDR is not set")
			return 1
		}
		defer func() { _ = redisClient.Close() }()
		feed := notify.NewFeed(redisClient, nil, cfg.ToastChannel, cfg.ToastTTL, logger)
		return cli.ToastsCommand(ctx, feed, cli.ToastsOptions{Follow: *follow, JSONOutput: *asJSON})
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return 2
	}

	if cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("serving metrics", slog.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", slog.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	in := bufio.NewReader(os.Stdin)
	var notifier listview.Notifier = notify.NewConsole(in, os.Stdout)
	var feed *notify.Feed

	redisClient, err := cache.New(ctx, cache.Options{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Warn("toast feed disabled", slog.Any("error", err))
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		feed = notify.NewFeed(redisClient, notifier, cfg.ToastChannel, cfg.ToastTTL, logger)
		notifier = feed
	}

	p := i18n.Printer(cfg.Locale)
	v := validation.New()
	session := console.NewSession(in, os.Stdout, logger,
		console.Clients(clients.NewPage(clientStore, notifier, p, v, logger), p),
		console.Suppliers(suppliers.NewPage(supplierStore, notifier, p, v, logger), p),
		console.Supplies(supplies.NewPage(supplyStore, notifier, p, v, logger), p),
		console.Purchases(purchases.NewPage(purchaseStore, notifier, p, v, logger), p),
	)
	if feed != nil {
		session.WithHistory(feed)
	}
	if err := session.Use(*start); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("console session", slog.Any("error", err))
		return 1
	}
	return 0
}
