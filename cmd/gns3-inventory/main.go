// Command gns3-inventory is an Ansible dynamic inventory for a GNS3 controller.
//
// Ansible runs it as an inventory script:
//
//	ansible-inventory -i gns3-inventory --list
//
// The GNS3 settings come from a gns3.yml file (see internal/config for the
// lookup order), given with --config or GNS3_INVENTORY_CONFIG.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gns3-inventory/internal/adapter"
	"gns3-inventory/internal/codec"
	"gns3-inventory/internal/config"
	"gns3-inventory/internal/metrics"
	"gns3-inventory/internal/service"
)

// verbosity counts repeated -v flags
type verbosity int

func (v *verbosity) String() string   { return fmt.Sprint(int(*v)) }
func (v *verbosity) IsBoolFlag() bool { return true }
func (v *verbosity) Set(string) error {
	*v++
	return nil
}

type options struct {
	list        bool
	host        string
	configPath  string
	output      string
	metricsFile string
	verbose     verbosity
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := newLogger(stderr, opts.verbose)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, opts, stdout, logger); err != nil {
		fmt.Fprintf(stderr, "gns3 inventory: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("gns3-inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.list, "list", false, "print the whole inventory (default)")
	fs.StringVar(&opts.host, "host", "", "print the variables of one host")
	fs.StringVar(&opts.configPath, "config", "", "path to a gns3.yml inventory source")
	fs.StringVar(&opts.output, "output", "json", "output format: json or yaml")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	fs.Var(&opts.verbose, "v", "increase log verbosity (repeatable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.configPath == "" && fs.NArg() > 0 {
		opts.configPath = fs.Arg(0)
	}
	if opts.list && opts.host != "" {
		fmt.Fprintln(stderr, "--list and --host are mutually exclusive")
		return nil, fmt.Errorf("conflicting flags")
	}

	return opts, nil
}

func newLogger(w io.Writer, v verbosity) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case v >= 2:
		level = slog.LevelDebug
	case v == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func execute(ctx context.Context, opts *options, stdout io.Writer, logger *slog.Logger) error {
	cfg, path, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	logger.Info("loaded config", "path", path)
	logger.Debug("config", "summary", cfg.Summary())

	exporter, err := codec.ForFormat(opts.output)
	if err != nil {
		return err
	}

	client := adapter.NewGNS3Client(adapter.ClientConfig{
		BaseURL:       cfg.URL,
		ValidateCerts: cfg.ValidateCerts,
		Timeout:       cfg.Timeout.Duration(),
	}, adapter.WithLogger(logger))

	svc := service.NewInventoryService(client,
		adapter.ProjectQuery{ID: cfg.ProjectID, Name: cfg.ProjectName},
		service.OptionsFromConfig(cfg),
		logger)

	var recorder *metrics.Recorder
	if opts.metricsFile != "" {
		recorder = metrics.NewRecorder(projectLabel(cfg))
		svc.SetObserver(recorder)
	}

	inv, buildErr := svc.Build(ctx)

	if recorder != nil {
		if err := recorder.WriteTextfile(opts.metricsFile); err != nil {
			logger.Warn("metrics not written", "path", opts.metricsFile, "error", err)
		}
	}
	if buildErr != nil {
		return buildErr
	}

	// Render fully before writing so a failure never leaves partial output
	var buf bytes.Buffer
	if opts.host != "" {
		err = codec.NewJSONCodec().ExportHost(inv, opts.host, &buf)
	} else {
		err = exporter.Export(inv, &buf)
	}
	if err != nil {
		return err
	}

	_, err = buf.WriteTo(stdout)
	return err
}

func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

func projectLabel(cfg *config.Config) string {
	if cfg.ProjectName != "" {
		return cfg.ProjectName
	}
	return cfg.ProjectID
}
