package cli

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dominauta/padring/pkg/pipeline"
)

func TestNew(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	if c == nil {
		t.Fatal("New() returned nil")
	}
	if c.Logger == nil {
		t.Fatal("New() returned CLI without logger")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug message should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should pass at debug level")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "padring" {
		t.Errorf("root.Use = %q, want %q", root.Use, "padring")
	}

	want := []string{"fanout", "render", "inspect", "pads", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single", "json", []string{"json"}},
		{"multiple", "svg,png,dot", []string{"svg", "png", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetCLIDefaults(t *testing.T) {
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	if opts.Spacing != pipeline.DefaultSpacing {
		t.Errorf("Spacing = %v, want %v", opts.Spacing, pipeline.DefaultSpacing)
	}
	if opts.Theme != pipeline.DefaultTheme {
		t.Errorf("Theme = %q, want %q", opts.Theme, pipeline.DefaultTheme)
	}
	if opts.Rows != pipeline.DefaultRows {
		t.Errorf("Rows = %d, want %d", opts.Rows, pipeline.DefaultRows)
	}
}
