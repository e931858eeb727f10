// blastradius-server serves the area-effect sandbox over SSH. Every
// connection gets its own arena and engine. Build:
//
//	go build -o blastradius-server ./cmd/server
//
// Usage:
//
//	./blastradius-server [-config blastradius.toml] [-port 2222] [-key host_key]
//
// Connect:
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
	"os"
	"path/filepath"
	"unicode"

	"blastradius/internal/config"
	"blastradius/internal/logging"
	"blastradius/internal/sandbox"
	internalssh "blastradius/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds how much of a client-supplied user name is logged.
const maxNameBytes = 16

func main() {
	cfgPath := flag.String("config", "", "TOML configuration file")
	port := flag.Int("port", 0, "SSH server port (overrides config)")
	keyFile := flag.String("key", "", "PEM host key, generated if absent (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *keyFile != "" {
		cfg.Server.HostKey = *keyFile
	}
	// The server has no terminal of its own to protect.
	cfg.Logging.File = ""

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, log)
	if err != nil {
		log.Fatal("host key", zap.Error(err))
	}

	srv := &gossh.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     func(s gossh.Session) { handleSession(s, cfg, log) },
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	log.Info("sandbox server listening", zap.Int("port", cfg.Server.Port))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("ssh server stopped", zap.Error(err))
	}
}

// handleSession runs one sandbox for the lifetime of the connection.
func handleSession(s gossh.Session, cfg *config.Config, log *zap.Logger) {
	log = log.With(zap.String("user", sanitizeName(s.User())), zap.String("remote", s.RemoteAddr().String()))

	screen, err := internalssh.NewScreen(s)
	switch {
	case errors.Is(err, internalssh.ErrNoPTY):
		fmt.Fprintln(s, "The sandbox needs a PTY. Connect with: ssh -t -p <port> <host>")
		return
	case errors.Is(err, internalssh.ErrUnknownTerm):
		fmt.Fprintf(s, "Unsupported terminal; try TERM=%s.\n", internalssh.DefaultTerm)
		log.Warn("rejected terminal", zap.Error(err))
		return
	case err != nil:
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error("screen", zap.Error(err))
		return
	}

	sb, err := sandbox.New(screen, cfg, log)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(s, "Sandbox setup failed: %v\n", err)
		log.Error("sandbox", zap.Error(err))
		return
	}
	log.Info("session started")
	sb.Run()
	log.Info("session ended")
}

// sanitizeName drops control characters and caps the name at
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	size := 0
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		n := len(string(r))
		if size+n > maxNameBytes {
			break
		}
		out = append(out, r)
		size += n
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the key still serves this run.
	block, err := xssh.MarshalPrivateKey(key, "blastradius sandbox")
	if err == nil {
		if dir := filepath.Dir(path); dir != "." {
			err = os.MkdirAll(dir, 0o700)
		}
		if err == nil {
			err = os.WriteFile(path, pem.EncodeToMemory(block), 0o600)
		}
	}
	if err != nil {
		log.Warn("host key not saved", zap.String("path", path), zap.Error(err))
	}
	return signer, nil
}
