package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bagaking/goulp/wlog"
	"github.com/mattn/go-runewidth"
)

func TestCardRender(t *testing.T) {
	runewidth.DefaultCondition.EastAsianWidth = false
	out := Card{Title: "ChatGPT", Lines: []string{"Freemium", "对话助手"}}.Render(0)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 lines, got %d:\n%s", len(lines), out)
	}
	width := runewidth.StringWidth(lines[0])
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != width {
			t.Fatalf("line %d width %d != %d:\n%s", i, w, width, out)
		}
	}
	if !strings.Contains(lines[4], "2 | 对话助手") {
		t.Fatalf("line number missing: %q", lines[4])
	}
}

func TestCardRender_Wrap(t *testing.T) {
	out := SPrintWithFrameCard("t", strings.Repeat("a", 25), 10)
	// header 3 lines + 3 wrapped lines + footer
	if n := len(strings.Split(out, "\n")); n != 7 {
		t.Fatalf("want 7 lines, got %d:\n%s", n, out)
	}
}

func TestSPrintCards(t *testing.T) {
	out := SPrintCards([]Card{{Title: "a"}, {Title: "b"}}, 0)
	if strings.Count(out, "╔") != 2 || !strings.Contains(out, "╝\n\n╔") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCtxKeys(t *testing.T) {
	ctx := InjectRequestID(InjectSurfaceLogKey(context.Background(), "assistant"), "req-1")
	if k, ok := ExtractSurfaceLogKey(ctx); !ok || k != "assistant" {
		t.Fatalf("surface key= %q, %v", k, ok)
	}
	if id, ok := ExtractRequestID(ctx); !ok || id != "req-1" {
		t.Fatalf("request id= %q, %v", id, ok)
	}
	if _, ok := ExtractRequestID(context.Background()); ok {
		t.Fatalf("empty ctx should have no request id")
	}
}

func TestEnvKey(t *testing.T) {
	t.Setenv(string(EnvConfPath), "")
	if got := EnvConfPath.Read("conf.yml"); got != "conf.yml" {
		t.Fatalf("got %q", got)
	}
	t.Setenv(string(EnvConfPath), "/etc/toolscout.yml")
	if got := EnvConfPath.Read("conf.yml"); got != "/etc/toolscout.yml" {
		t.Fatalf("got %q", got)
	}
}

func TestMustInitLogger_Reinit(t *testing.T) {
	ctx := InjectSurfaceLogKey(context.Background(), "assistant")

	first, second := t.TempDir(), t.TempDir()
	MustInitLogger(first, "info")
	wlog.ByCtx(ctx, "test").Infof("to first dir")

	MustInitLogger(second, "info")
	wlog.ByCtx(ctx, "test").Infof("to second dir")

	data, err := os.ReadFile(filepath.Join(second, "toolscout_assistant.log"))
	if err != nil {
		t.Fatalf("surface log not written to new dir, err= %v", err)
	}
	if !strings.Contains(string(data), "to second dir") {
		t.Fatalf("unexpected log content:\n%s", data)
	}
	old, err := os.ReadFile(filepath.Join(first, "toolscout_assistant.log"))
	if err != nil {
		t.Fatalf("read first log, err= %v", err)
	}
	if strings.Contains(string(old), "to second dir") {
		t.Fatalf("log still goes to the old dir")
	}
}
