package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/observability"
	"github.com/matzehuels/canvasballoon/pkg/pipeline"
)

// defaultBase is the output base name when rendering the demo scene.
const defaultBase = "balloons"

// stdoutPath writes a single artifact to standard output.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string  // output file (one format) or base path (several)
	formats string  // comma-separated formats
	scale   float64 // PNG scale factor
	noCache bool    // bypass the artifact cache
	refresh bool    // re-render even on a cache hit

	idPrefix string // SVG/PDF element id prefix
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{formats: pipeline.FormatSVG, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a balloon scene to SVG, PNG, PDF, or JSON",
		Long: `Render a balloon scene. Without a scene file the built-in demo of four
balloons is drawn.

Examples:
  canvasballoon render
  canvasballoon render party.toml -f svg,png --scale 2
  canvasballoon render party.toml -f json -o -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (one format), base path (several), or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output format(s): svg, png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")
	cmd.Flags().StringVar(&opts.idPrefix, "id-prefix", "", "prefix for SVG element ids, for inlining several scenes in one page")

	return cmd
}

// runRender loads the scene, renders every format, and writes the files.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	formats, err := pipeline.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	paths, err := outputPaths(opts.output, input, formats)
	if err != nil {
		return err
	}

	s, err := loadScene(input)
	if err != nil {
		return err
	}
	logger.Infof("Rendering %s", sceneName(input))
	toStdout := paths[0] == stdoutPath
	for _, i := range s.OutOfFrame() {
		if toStdout {
			logger.Warn("balloon extends past the canvas", "balloon", i+1, "width", s.Width, "height", s.Height)
			continue
		}
		printWarning("Balloon %d extends past the %dx%d canvas", i+1, s.Width, s.Height)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinner(c.status, "Drawing balloons...")
	hooks := observability.TeePipeline(
		spinnerHooks{spin: spin},
		renderProgress{logger: logger, balloons: len(s.Balloons)},
	)
	spin.Start(ctx)
	result, err := runner.Execute(ctx, s, pipeline.Options{
		Formats:  formats,
		Scale:    opts.scale,
		Refresh:  opts.refresh,
		Logger:   logger,
		Hooks:    hooks,
		IDPrefix: opts.idPrefix,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	if toStdout {
		_, err := os.Stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	for i, format := range formats {
		if err := writeArtifact(paths[i], result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", paths[i], "bytes", len(result.Artifacts[format]))
	}

	printSuccess("Rendered %s", sceneName(input))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Balloons, result.Stats.Bytes, result.CacheHit)
	if input != "" {
		printNextStep("Preview in a browser", appName+" serve "+input)
	}
	return nil
}

// outputPaths returns one output path per format, in format order.
//
// A single format is written to output as given. Several formats share a
// base path: output with a known format extension stripped, or the input
// name without extension, or "balloons" for the demo scene.
func outputPaths(output, input string, formats []string) ([]string, error) {
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "writing to stdout needs exactly one format, got %d", len(formats))
		}
		return []string{stdoutPath}, nil
	}
	if output != "" {
		if err := errors.ValidatePath(output); err != nil {
			return nil, err
		}
	}
	if len(formats) == 1 && output != "" {
		return []string{output}, nil
	}

	base := basePath(output, input)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + f
	}
	return paths, nil
}

// basePath derives the shared output base from output and input.
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input == "" {
		return defaultBase
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
