// Package pipeline turns a scene into output artifacts.
//
// The same Runner backs the render command and the HTTP server, so caching,
// logging, and observability behave identically for both.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, scene.Demo(), pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	    Scale:   2,
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvasballoon/pkg/cache"
	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/observability"
)

const (
	// DefaultScale is the PNG scale factor when none is given.
	DefaultScale = 1.0

	// MaxScale bounds the PNG scale factor.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // skip cache reads, still write

	// IDPrefix prefixes the element ids of SVG and PDF output. Empty keeps
	// the sink default.
	IDPrefix string `json:"id_prefix,omitempty"`

	Logger *log.Logger `json:"-"`

	// Hooks receive this run's events after the globally registered ones.
	Hooks observability.PipelineHooks `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// SceneID is the content ID of the rendered scene.
	SceneID string

	// Artifacts holds the rendered bytes keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Balloons   int
	Bytes      int
	RenderTime time.Duration
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list like "svg, PNG" into
// normalized, deduplicated formats.
func ParseFormats(list string) ([]string, error) {
	var formats []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(formats, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "no output format given")
	}
	return formats, nil
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once is harmless.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if math.IsNaN(o.Scale) || o.Scale <= 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %v out of range (0, %v]", o.Scale, MaxScale)
	}
	if err := validateIDPrefix(o.IDPrefix); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns the cache key options for format. Only PNG
// output depends on the scale, and only SVG and PDF on the id prefix.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatSVG, FormatPDF:
		opts.IDPrefix = o.IDPrefix
	}
	return opts
}

// validateIDPrefix accepts an XML name made of ASCII letters, digits, '-'
// and '_', starting with a letter.
func validateIDPrefix(p string) error {
	for i, r := range p {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return errors.New(errors.ErrCodeInvalidInput, "invalid id prefix %q: use letters, digits, '-' or '_', starting with a letter", p)
		}
	}
	return nil
}
