// Package cli implements the canvasballoon command-line interface.
//
// The commands draw balloon scenes and inspect their shading:
//   - render: write a scene as SVG, PNG, PDF, or a JSON draw log
//   - color: show the light and dark shades derived from a base color
//   - serve: serve a scene over HTTP
//   - cache: manage the artifact cache
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context from the root command down to handlers.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/canvasballoon/pkg/buildinfo"
	"github.com/matzehuels/canvasballoon/pkg/cache"
	"github.com/matzehuels/canvasballoon/pkg/pipeline"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

// appName names the cache directory and the binary.
const appName = "canvasballoon"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// status receives transient progress such as the render spinner.
	status io.Writer
}

// New creates a CLI logging to w at level. Progress indicators also go to
// w, and only animate when w is a terminal.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), status: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Draw shaded balloons with bezier curves and radial gradients",
		Long:         `canvasballoon draws balloons as four cubic bezier curves shaded with an offset radial gradient, with a small knot underneath. Scenes are described in TOML and rendered to SVG, PNG, PDF, or a JSON log of draw commands.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// cacheDir returns $XDG_CACHE_HOME/canvasballoon, or ~/.cache/canvasballoon.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Scene Loading
// =============================================================================

// loadScene reads the scene at path, or returns the demo scene when path
// is empty.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Demo(), nil
	}
	return scene.Load(path)
}

// sceneName is the display name of the scene loaded from path.
func sceneName(path string) string {
	if path == "" {
		return "demo scene"
	}
	return path
}
