package cli

import (
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "clowd" {
		t.Errorf("Use = %q, want clowd", root.Use)
	}

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"analyze", "paths", "split", "render", "explore", "serve", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("root command missing subcommand %q (have %v)", want, names)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)

	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}
}
