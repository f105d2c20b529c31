// islandgen-server serves freshly generated island maps over SSH. Every
// connection gets its own map and its own viewer. Build:
//
//	go build -o islandgen-server ./cmd/server
//
// Usage:
//
//	./islandgen-server [--port 2222] [--key server_host_key] [--size 50] [--islands 5]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"islandgen/internal/generate"
	"islandgen/internal/render"
	"islandgen/internal/rng"
	internalssh "islandgen/internal/ssh"
	"islandgen/internal/view"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// defaultPort is used when neither --port nor ISLANDGEN_PORT is set.
const defaultPort = 2222

// serverOptions holds the parsed command line.
type serverOptions struct {
	port    int
	keyFile string
	cfg     generate.Config
}

// parseFlags reads the command line. envPort is the ISLANDGEN_PORT value.
// Map defaults come from generate.DefaultConfig.
func parseFlags(args []string, envPort string) (serverOptions, error) {
	cfg := generate.DefaultConfig()
	fs := flag.NewFlagSet("islandgen-server", flag.ContinueOnError)
	port := fs.Int("port", portFromEnv(envPort), "SSH server port (env ISLANDGEN_PORT)")
	keyFile := fs.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	size := fs.Int("size", cfg.Size, "map side length")
	islands := fs.Int("islands", cfg.Islands, "islands per map")
	stability := fs.Float64("stability", cfg.Stability, "shore weight in [0,1]")
	if err := fs.Parse(args); err != nil {
		return serverOptions{}, err
	}

	cfg.Size = *size
	cfg.Islands = *islands
	cfg.Stability = *stability
	if err := cfg.Validate(); err != nil {
		return serverOptions{}, fmt.Errorf("invalid map settings: %w", err)
	}
	return serverOptions{port: *port, keyFile: *keyFile, cfg: cfg}, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Getenv("ISLANDGEN_PORT"))
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	port := opts.port

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	signer := loadOrCreateHostKey(opts.keyFile)
	h := &handler{cfg: opts.cfg, logger: logger}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", port),
		Handler:     h.handleSession,
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("islandgen SSH server listening on :%d", port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", port)
	log.Fatal(srv.ListenAndServe())
}

// portFromEnv parses an ISLANDGEN_PORT value, falling back to defaultPort.
func portFromEnv(v string) int {
	if v == "" {
		return defaultPort
	}
	p, err := strconv.Atoi(v)
	if err != nil || p < 1 || p > 65535 {
		return defaultPort
	}
	return p
}

// ─── sessions ───────────────────────────────────────────────────────────────

// allowedTerms lists the TERM values we hand to tcell's terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// sessionTerm picks the client's TERM from the session environment,
// defaulting to xterm-256color for absent or unknown values.
func sessionTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[v] {
			return v
		}
	}
	return "xterm-256color"
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// handler serves one independent map viewer per SSH connection.
type handler struct {
	cfg    generate.Config
	logger *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the viewer exits so the session stays open.
func (h *handler) handleSession(s gossh.Session) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "islandgen needs a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	logger := h.logger.With("remote", s.RemoteAddr().String())

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	seeds := rng.New(time.Now().UnixNano())
	cfg := h.cfg
	cfg.Seed = seeds.Int64()
	cfg.Logger = logger
	v, err := view.New(screen, cfg, render.EmojiTheme, seeds)
	if err != nil {
		logger.Error("viewer setup failed", "error", err)
		return
	}
	if err := v.Run(); err != nil {
		logger.Error("viewer stopped", "error", err)
	}
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key → %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "islandgen server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
