package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/config"
	"github.com/aleister1102/linkcheck/internal/logger"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/aleister1102/linkcheck/internal/orchestrator"
	"github.com/aleister1102/linkcheck/internal/reporter"
	"github.com/aleister1102/linkcheck/internal/urlhandler"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(os.Stderr, "[WARN] Received %s, cancelling link check\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	signal.Stop(sigChan)
	cancel()
	os.Exit(code)
}

// run executes one link check and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags, err := ParseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return models.ExitCodeClean
		}
		return models.ExitCodeFatal
	}

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, zerolog.Nop())
	if err != nil {
		return fatal(stderr, "Could not load configuration using path '%s': %v", flags.ConfigFile, err)
	}
	overrides := flags.Overrides()
	if flags.PagesFile != "" {
		filePages, err := urlhandler.ReadSeedPagesFromFile(flags.PagesFile, zerolog.Nop())
		if err != nil {
			return fatal(stderr, "Could not read seed pages from '%s': %v", flags.PagesFile, err)
		}
		overrides.SeedPages = flags.MergeSeedPages(filePages)
	}
	gCfg.ApplyOverrides(overrides)

	if err := config.ValidateConfig(gCfg); err != nil {
		return fatal(stderr, "%v", err)
	}

	builder := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithConsoleOutput(stderr).
		WithNoColor(gCfg.ReporterConfig.NoColor || !common.IsTerminal(stderr))
	if level, ok := flags.LogLevel(); ok {
		builder = builder.WithLevel(level)
	}
	zLogger, err := builder.Build()
	if err != nil {
		return fatal(stderr, "Could not initialize logger: %v", err)
	}
	zLogger.Debug().Str("config_path", config.GetConfigPath(flags.ConfigFile)).Msg("Configuration loaded")

	orch, err := orchestrator.NewLinkCheckOrchestrator(gCfg, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to set up link check")
		return models.ExitCodeFatal
	}

	result, err := orch.Run(ctx)
	if err != nil {
		zLogger.Error().Err(err).Msg("Link check did not complete")
		return models.ExitCodeFatal
	}

	rw := reporter.NewReportWriter(gCfg.ReporterConfig, stdout, common.NewFileManager(zLogger), zLogger)
	if err := rw.Write(result); err != nil {
		zLogger.Error().Err(err).Msg("Failed to write report")
		return models.ExitCodeFatal
	}

	if result.Outcome == models.OutcomeServerUnreachable {
		zLogger.Error().Str("base_url", gCfg.Site.BaseURL).Msg("Server is required but was not reachable")
	}
	return result.Outcome.ExitCode()
}

func fatal(stderr io.Writer, format string, args ...interface{}) int {
	fmt.Fprintf(stderr, "[FATAL] "+format+"\n", args...)
	return models.ExitCodeFatal
}
