package commands

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/askit/config"
	"github.com/teranos/askit/errors"
	"github.com/teranos/askit/internal/loader"
	"github.com/teranos/askit/internal/watch"
	"github.com/teranos/askit/rewrite"
)

var (
	rewriteWrite  bool
	rewriteWatch  bool
	rewriteDir    string
	rewriteConfig string
)

// RewriteCmd runs the rewrite pass over the packages matched by the given
// patterns (default ./...).
var RewriteCmd = &cobra.Command{
	Use:   "rewrite [patterns...]",
	Short: "Rewrite marker calls in Go packages",
	Long: `Rewrite Ask/LLM/Define marker calls in the matched packages.

Without -w the transformed units are printed to stdout and nothing on disk
changes except the metadata sidecars. With -w each transformed unit replaces
its source file.

Examples:
  askit rewrite ./...                # Dry run over the whole module
  askit rewrite -w ./internal/bot    # Rewrite one package in place
  askit rewrite --watch -w ./...     # Keep rewriting as sources change`,
	RunE: runRewrite,
}

func init() {
	RewriteCmd.Flags().BoolVarP(&rewriteWrite, "write", "w", false, "Write transformed units back to their source files")
	RewriteCmd.Flags().BoolVar(&rewriteWatch, "watch", false, "Watch for source changes and re-run the pass")
	RewriteCmd.Flags().StringVarP(&rewriteDir, "dir", "C", ".", "Directory to resolve patterns in")
	RewriteCmd.Flags().StringVar(&rewriteConfig, "config", "", "Path to askit.toml (default: ./askit.toml if present)")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The watcher must not re-trigger on files the pass itself writes back;
	// every write is announced to it first.
	var watcher *watch.Watcher
	pass := func() error {
		mark := func() {}
		if watcher != nil {
			mark = watcher.MarkOwnWrite
		}
		return runPass(cfg, args, mark)
	}

	if err := pass(); err != nil {
		if !rewriteWatch {
			return err
		}
		pterm.Warning.Printfln("Initial pass failed: %v", err)
	}

	if !rewriteWatch {
		return nil
	}

	watcher, err = watch.New([]string{rewriteDir}, cfg.Layout.Subdir, pass)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	pterm.Info.Printfln("Watching %s for changes (Ctrl-C to stop)", rewriteDir)
	select {}
}

func loadConfig() (*config.Config, error) {
	if rewriteConfig != "" {
		return config.LoadFromFile(rewriteConfig)
	}
	return config.Load()
}

func runPass(cfg *config.Config, patterns []string, markWrite func()) error {
	units, err := loader.Load(rewriteDir, patterns...)
	if err != nil {
		return err
	}

	engine := rewrite.New(cfg.EngineOptions(), nil)

	var rewritten, transformed, skipped int
	for _, unit := range units {
		res, err := engine.Transform(unit)
		if err != nil {
			return errors.Wrapf(err, "transforming %s", unit.Path)
		}
		if res.Skipped {
			skipped++
			continue
		}
		transformed++
		rewritten += res.Rewritten

		var buf bytes.Buffer
		if err := format.Node(&buf, unit.Fset, res.File); err != nil {
			return errors.Wrapf(err, "formatting %s", unit.Path)
		}
		if rewriteWrite {
			markWrite()
			if err := os.WriteFile(unit.Path, buf.Bytes(), 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", unit.Path)
			}
		} else {
			pterm.DefaultSection.Println(relPath(unit.Path))
			pterm.Println(buf.String())
		}
	}

	pterm.Success.Printfln("Transformed %d units (%d calls rewritten, %d skipped)",
		transformed, rewritten, skipped)
	return nil
}

func relPath(path string) string {
	if rel, err := filepath.Rel(rewriteDir, path); err == nil {
		return rel
	}
	return path
}
