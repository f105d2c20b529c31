package main

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandgen/internal/generate"
	"islandgen/internal/terrain"
)

func TestAllowedTerms(t *testing.T) {
	cases := []struct {
		name    string
		term    string
		allowed bool
	}{
		{"xterm-256color", "xterm-256color", true},
		{"tmux", "tmux", true},
		{"linux", "linux", true},
		{"vt100", "vt100", true},
		{"screen", "screen", true},
		{"rxvt-unicode-256color", "rxvt-unicode-256color", true},
		{"unknown term", "evil-term", false},
		{"path traversal", "../../../etc/passwd", false},
		{"empty string", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := allowedTerms[tc.term]
			if got != tc.allowed {
				t.Errorf("allowedTerms[%q] = %v, want %v", tc.term, got, tc.allowed)
			}
		})
	}
}

func TestSessionTerm(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"unknown falls back", []string{"TERM=../../x"}, "xterm-256color"},
		{"missing", []string{"LANG=C"}, "xterm-256color"},
		{"nil env", nil, "xterm-256color"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sessionTerm(tc.environ))
		})
	}
}

func TestPortFromEnv(t *testing.T) {
	cases := map[string]int{
		"":      defaultPort,
		"2022":  2022,
		"abc":   defaultPort,
		"0":     defaultPort,
		"70000": defaultPort,
	}
	for in, want := range cases {
		assert.Equal(t, want, portFromEnv(in), "portFromEnv(%q)", in)
	}
}

func TestHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	first := loadOrCreateHostKey(path)
	require.FileExists(t, path)
	second := loadOrCreateHostKey(path)
	assert.Equal(t, first.PublicKey().Marshal(), second.PublicKey().Marshal())
}

func TestParseFlagsMapDefaults(t *testing.T) {
	opts, err := parseFlags(nil, "")
	require.NoError(t, err)
	def := generate.DefaultConfig()
	assert.Equal(t, def.Size, opts.cfg.Size)
	assert.Equal(t, def.Islands, opts.cfg.Islands)
	assert.Equal(t, def.Stability, opts.cfg.Stability)
	assert.Equal(t, def.Mountains, opts.cfg.Mountains)
	assert.Equal(t, defaultPort, opts.port)
	assert.Equal(t, "server_host_key", opts.keyFile)
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{"-size", "30", "-islands", "2", "-key", "k.pem"}, "2022")
	require.NoError(t, err)
	assert.Equal(t, 30, opts.cfg.Size)
	assert.Equal(t, 2, opts.cfg.Islands)
	assert.Equal(t, 2022, opts.port, "env port applies when -port is absent")
	assert.Equal(t, "k.pem", opts.keyFile)

	opts, err = parseFlags([]string{"-port", "2300"}, "2022")
	require.NoError(t, err)
	assert.Equal(t, 2300, opts.port)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"-size", "0"}, "")
	assert.ErrorIs(t, err, terrain.ErrInvalidSize)

	_, err = parseFlags([]string{"-h"}, "")
	assert.ErrorIs(t, err, flag.ErrHelp)
}
