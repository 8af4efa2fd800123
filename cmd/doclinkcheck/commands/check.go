package commands

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/doclinkcheck/internal/config"
	foundationerrors "git.home.luguber.info/inful/doclinkcheck/internal/foundation/errors"
	"git.home.luguber.info/inful/doclinkcheck/internal/git"
	"git.home.luguber.info/inful/doclinkcheck/internal/linkcheck"
	"git.home.luguber.info/inful/doclinkcheck/internal/logfields"
	"git.home.luguber.info/inful/doclinkcheck/internal/metrics"
)

// ErrBrokenLinks is returned by a check that completed and found broken links.
// It is a finding, not a failure, and maps to its own exit status.
var ErrBrokenLinks = errors.New("broken links found")

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Path        string `arg:"" optional:"" help:"Documentation root. Defaults to the configured docs_dir (docs/) in the repository root" type:"path"`
	Format      string `short:"f" help:"Output format (text, json or html). Overrides the config file"`
	MetricsFile string `help:"Write Prometheus metrics in textfile format to this path after the run" type:"path"`
}

// Run executes the check command.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stdout := g.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	workdir := g.Workdir
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to determine working directory").Fatal().Build()
		}
		workdir = wd
	}

	repoRoot, _, err := git.FindRepositoryRoot(workdir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(resolveConfigPath(root.Config, repoRoot))
	if err != nil {
		return err
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.MetricsFile != "" {
		cfg.MetricsFile = c.MetricsFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	docsRoot := c.Path
	if docsRoot == "" {
		docsRoot = git.ResolveDocsRoot(repoRoot, cfg.DocsDir)
	}
	docsRoot, err = filepath.Abs(docsRoot)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryFileSystem, "failed to resolve docs root").Fatal().Build()
	}

	logger.Debug("Starting link check",
		logfields.RepoRoot(repoRoot),
		logfields.DocsRoot(docsRoot),
		logfields.Format(cfg.Format))

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	checker := linkcheck.NewChecker(linkcheck.WithRecorder(recorder), linkcheck.WithLogger(logger))
	result, runErr := checker.Run(docsRoot)

	// Metrics are written for failed runs too so CI can alert on them.
	if prom != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile, prom.Registry()); err != nil {
			if runErr != nil {
				return runErr
			}
			return err
		}
		logger.Debug("Wrote metrics file", logfields.Path(cfg.MetricsFile))
	}
	if runErr != nil {
		return runErr
	}

	result.RootLabel = rootLabel(repoRoot, docsRoot)

	formatter := linkcheck.NewFormatter(cfg.Format, isColorSupported(stdout))
	if err := formatter.Format(stdout, result); err != nil {
		return foundationerrors.ReportError("failed to write report").
			WithCause(err).
			WithContext("format", cfg.Format).
			Build()
	}

	if result.HasBroken() {
		return ErrBrokenLinks
	}
	return nil
}

// resolveConfigPath returns the explicit path, or the default config file in
// the repository root when it exists, or "" for no file.
func resolveConfigPath(explicit, repoRoot string) string {
	if explicit != "" {
		return explicit
	}
	candidate := filepath.Join(repoRoot, config.DefaultFileName)
	if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
		return candidate
	}
	return ""
}

// rootLabel names the docs root relative to the repository, e.g. "docs/".
// Roots outside the repository keep their absolute path.
func rootLabel(repoRoot, docsRoot string) string {
	rel, err := filepath.Rel(repoRoot, docsRoot)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return docsRoot + string(filepath.Separator)
	}
	if rel == "." {
		return "." + string(filepath.Separator)
	}
	return filepath.ToSlash(rel) + "/"
}
