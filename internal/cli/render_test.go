package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/pipeline"
)

func newTestCLI() (*CLI, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, log.DebugLevel), &buf
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c, logs := newTestCLI()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	err := root.Execute()
	return logs.String(), err
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "svg", []string{"svg"}},
		{"multiple", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and blanks", " svg , ,png ", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseList(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseList(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func newRenderFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	addDrawFlags(fs)
	addOutputFlags(fs)
	return fs
}

func TestLoadRenderConfigDefaults(t *testing.T) {
	cfg, err := loadRenderConfig(newRenderFlags())
	if err != nil {
		t.Fatal(err)
	}

	opts := cfg.options(4)
	if opts.N != 4 || opts.Predicate != "none" || opts.MaxValue != pipeline.DefaultMaxValue {
		t.Errorf("draw options = %+v", opts)
	}
	if opts.Palette != ordinal.DefaultPalette {
		t.Errorf("Palette = %+v, want %+v", opts.Palette, ordinal.DefaultPalette)
	}
	if !slices.Equal(opts.Formats, []string{"svg"}) || !slices.Equal(opts.VizTypes, []string{"nested"}) {
		t.Errorf("render options = %v %v", opts.Formats, opts.VizTypes)
	}
	if opts.OutputDir != "." || opts.Size != pipeline.DefaultSize {
		t.Errorf("output options = %q %d", opts.OutputDir, opts.Size)
	}
}

func TestLoadRenderConfigPrecedence(t *testing.T) {
	t.Setenv("VONNEUMANN_PREDICATE", "prime")
	t.Setenv("VONNEUMANN_OUTPUT_DIR", "from-env")
	t.Setenv("VONNEUMANN_MAX_VALUE", "20")

	fs := newRenderFlags()
	if err := fs.Parse([]string{"--output-dir", "from-flag", "--dark", "navy"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadRenderConfig(fs)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Predicate != "prime" {
		t.Errorf("Predicate = %q, want env value", cfg.Predicate)
	}
	if cfg.OutputDir != "from-flag" {
		t.Errorf("OutputDir = %q, flag should win over env", cfg.OutputDir)
	}
	if cfg.MaxValue != 20 {
		t.Errorf("MaxValue = %d, want 20", cfg.MaxValue)
	}
	if cfg.Dark != "navy" {
		t.Errorf("Dark = %q, want navy", cfg.Dark)
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	dir := t.TempDir()
	logs, err := runCLI(t, "render", "3", "-p", "even", "-f", "svg,json", "-o", dir)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, name := range []string{"von_neumann_n3.svg", "von_neumann_n3.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(logs, "Rendered von_neumann_n3") {
		t.Errorf("logs should report the render, got:\n%s", logs)
	}
}

func TestRerenderCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := runCLI(t, "render", "2", "-f", "json", "-o", dir); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "again")
	_, err := runCLI(t, "rerender", filepath.Join(dir, "von_neumann_n2.json"), "-f", "svg", "-o", outDir)
	if err != nil {
		t.Fatalf("rerender error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "von_neumann_n2.svg")); err != nil {
		t.Errorf("rerender output missing: %v", err)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want vnerrors.Code
	}{
		{"negative value", []string{"render", "-o", dir, "--", "-3"}, vnerrors.ErrCodeInvalidArgument},
		{"not a number", []string{"render", "three", "-o", dir}, vnerrors.ErrCodeInvalidArgument},
		{"too large", []string{"render", "40", "-o", dir}, vnerrors.ErrCodeResourceExhausted},
		{"unknown predicate", []string{"render", "3", "-p", "fibonacci", "-o", dir}, vnerrors.ErrCodeInvalidPredicate},
		{"bad color", []string{"render", "3", "--dark", "nope", "-o", dir}, vnerrors.ErrCodeInvalidColor},
		{"bad format", []string{"render", "3", "-f", "gif", "-o", dir}, vnerrors.ErrCodeInvalidFormat},
		{"missing scene", []string{"rerender", filepath.Join(dir, "missing.json")}, vnerrors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !vnerrors.Is(err, tt.want) {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestRerenderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := runCLI(t, "rerender", path)
	if !vnerrors.Is(err, vnerrors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	c, _ := newTestCLI()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "vonneumann") {
		t.Error("bash completion should mention the command name")
	}
}
