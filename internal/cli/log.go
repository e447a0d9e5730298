package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/canvasballoon/pkg/observability"
)

// newLogger returns a timestamped logger ("15:04:05.00") filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// renderProgress logs a pipeline run: each drawn format at debug level and
// the finished scene with its elapsed time.
type renderProgress struct {
	observability.NoopPipelineHooks
	logger   *log.Logger
	balloons int
}

func (p renderProgress) OnFormatRendered(_ context.Context, format string, size int, d time.Duration) {
	p.logger.Debug("drew format", "format", format, "bytes", size, "duration", d.Round(time.Microsecond))
}

// OnRenderComplete logs e.g. "Drew 4 balloons as svg, png (12ms)".
func (p renderProgress) OnRenderComplete(_ context.Context, _ string, formats []string, d time.Duration, err error) {
	if err != nil {
		return
	}
	p.logger.Infof("Drew %d balloons as %s (%s)", p.balloons, strings.Join(formats, ", "), d.Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default() if none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
