// Command omeconvert copies a metadata document from one configured store to
// another, optionally sanitizing free text on the way.
package main

import (
	"context"
	"errors"
	"expvar"
	"flag"
	"fmt"
	"io"
	"net/http"
	"omemeta/internal/config"
	"omemeta/internal/core"
	archivestore "omemeta/internal/infra/persistence/archive"
	"omemeta/pkg/domain"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	exitFunc(code)
}

type options struct {
	configPath string
	filter     bool
	from       string
	to         string
	fromDoc    string
	toDoc      string
	listen     string
	keep       bool
}

func cli(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("omeconvert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.configPath, "config", "", "path to YAML configuration")
	fs.BoolVar(&o.filter, "filter", false, "sanitize free-text values before writing")
	fs.StringVar(&o.from, "from", "", "source driver (overrides configuration)")
	fs.StringVar(&o.to, "to", "", "destination driver (overrides configuration)")
	fs.StringVar(&o.fromDoc, "from-document", "", "source document name")
	fs.StringVar(&o.toDoc, "to-document", "", "destination document name")
	fs.StringVar(&o.listen, "metrics-listen", "", "serve /metrics and /debug/vars on this address until interrupted")
	fs.BoolVar(&o.keep, "keep", false, "merge into the destination instead of replacing it")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := config.Read(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "omeconvert: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "filter":
			cfg.Filter = o.filter
		case "from":
			cfg.Source.Driver = config.Driver(o.from)
		case "to":
			cfg.Destination.Driver = config.Driver(o.to)
		case "from-document":
			cfg.Source.Document = o.fromDoc
		case "to-document":
			cfg.Destination.Document = o.toDoc
		case "metrics-listen":
			cfg.Metrics.Listen = o.listen
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "omeconvert: %v\n", err)
		return 1
	}
	if err := run(ctx, cfg, !o.keep, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "omeconvert: %v\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config, replace bool, stdout, stderr io.Writer) (err error) {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(core.ParseLogLevel(cfg.LogLevel))
	logger := core.NewLogrusLogger(log)

	reg := prometheus.NewRegistry()
	prom, err := core.NewPrometheusMetricsRecorder(reg)
	if err != nil {
		return err
	}
	metrics := core.MultiMetrics(prom, core.NewExpvarMetricsRecorder(""))
	tracer, closeTracer, err := openTracer(cfg.Metrics.TraceFile)
	if err != nil {
		return err
	}
	defer closeTracer()

	storeOpts := []core.StoreOption{core.WithStoreLogger(logger), core.WithLogrus(log)}
	src, err := core.OpenStore(ctx, cfg.Source, storeOpts...)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()
	dst, err := core.OpenStore(ctx, cfg.Destination, storeOpts...)
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	defer func() { err = errors.Join(err, dst.Close()) }()

	if replace {
		dst.CreateRoot()
	}
	if id := src.UUID(); id != "" {
		dst.SetUUID(id)
	}
	var target domain.MetadataStore = dst
	if cfg.Filter {
		target = core.NewFilterMetadata(dst, true)
	}

	conv := core.NewConverter(core.WithLogger(logger), core.WithMetrics(metrics), core.WithTracer(tracer))
	start := time.Now()
	stats, err := conv.Convert(ctx, src, target)
	if err != nil {
		return err
	}
	if err := dst.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	printSummary(stdout, cfg, stats, dst, time.Since(start))

	if cfg.Metrics.Listen != "" {
		return serveMetrics(ctx, cfg.Metrics.Listen, reg, logger)
	}
	return nil
}

func printSummary(w io.Writer, cfg config.Config, stats core.ConvertStats, dst domain.PersistentStore, elapsed time.Duration) {
	fmt.Fprintf(w, "converted %s instances, %s fields, %s references from %s to %s in %s\n",
		humanize.Comma(int64(stats.Instances)),
		humanize.Comma(int64(stats.Fields)),
		humanize.Comma(int64(stats.References)),
		cfg.Source.Driver, cfg.Destination.Driver,
		elapsed.Round(time.Millisecond))
	if stats.Skipped > 0 {
		fmt.Fprintf(w, "skipped %s values the destination does not accept\n", humanize.Comma(int64(stats.Skipped)))
	}
	if a, ok := dst.(*archivestore.Store); ok {
		info := a.LastArchive()
		fmt.Fprintf(w, "archive %s: %s\n", info.Key, humanize.Bytes(uint64(info.Size)))
	}
}

func openTracer(path string) (core.Tracer, func(), error) {
	if path == "" {
		return core.NewOTelTracer(nil), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open trace file: %w", err)
	}
	return core.NewJSONTracer(f), func() { _ = f.Close() }, nil
}

func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, logger core.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.Handle("/debug/vars", expvar.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("serving metrics", "addr", addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
