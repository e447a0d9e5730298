package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing after SetLogLevel: %q", buf.String())
	}
}

func TestRenderProgress(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	p := renderProgress{logger: newLogger(&buf, log.DebugLevel), balloons: 4}

	p.OnFormatRendered(ctx, "svg", 2048, 3*time.Millisecond)
	p.OnRenderComplete(ctx, "id", []string{"svg", "png"}, 12*time.Millisecond, nil)

	out := buf.String()
	for _, want := range []string{"drew format", "format=svg", "bytes=2048", "Drew 4 balloons as svg, png (12ms)"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	p.OnRenderComplete(ctx, "id", []string{"svg"}, time.Millisecond, errors.New("boom"))
	if buf.Len() != 0 {
		t.Errorf("failed run should not log completion: %q", buf.String())
	}
}

func TestRenderCommandLogs(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	out := t.TempDir() + "/demo.json"

	root := c.RootCommand()
	root.SetArgs([]string{"render", "-f", "json", "-o", out})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	logs := buf.String()
	for _, want := range []string{"Rendering demo scene", "Drew 4 balloons as json"} {
		if !strings.Contains(logs, want) {
			t.Errorf("render logs missing %q:\n%s", want, logs)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("attached logger not returned")
	}
}
