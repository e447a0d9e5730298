package pipeline

import (
	"fmt"

	"github.com/matzehuels/canvasballoon/pkg/errors"
	"github.com/matzehuels/canvasballoon/pkg/render/sink"
	"github.com/matzehuels/canvasballoon/pkg/scene"
)

// Render draws s in a single format without caching.
func Render(s *scene.Scene, format string, opts Options) ([]byte, error) {
	var (
		data    []byte
		err     error
		svgOpts []sink.SVGOption
	)
	if opts.IDPrefix != "" {
		svgOpts = append(svgOpts, sink.WithIDPrefix(opts.IDPrefix))
	}
	switch format {
	case FormatSVG:
		data, err = sink.RenderSVG(s, svgOpts...)
	case FormatPNG:
		data, err = sink.RenderPNG(s, sink.WithScale(opts.Scale))
	case FormatPDF:
		data, err = sink.RenderPDF(s, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		data, err = sink.RenderJSON(s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
