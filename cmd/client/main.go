package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/rollbook/internal/client/auth"
	"github.com/iudanet/rollbook/internal/client/cli"
	"github.com/iudanet/rollbook/internal/client/config"
	"github.com/iudanet/rollbook/internal/client/gateway"
	"github.com/iudanet/rollbook/internal/client/iocli"
	"github.com/iudanet/rollbook/internal/client/storage"
	"github.com/iudanet/rollbook/internal/client/storage/boltdb"
	"github.com/iudanet/rollbook/internal/client/syncer"
	"github.com/iudanet/rollbook/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", config.DefaultPath(), "Path to config file")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")
	section := flag.String("section", "", "Default section (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	offline := flag.Bool("offline", false, "Work against the local cache only")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Флаги перекрывают конфигурацию
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}
	if *section != "" {
		cfg.Sync.DefaultSection = *section
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level)

	args := flag.Args()
	command := ""
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	if err := run(context.Background(), cfg, logger, command, args, !*offline); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string, args []string, online bool) error {
	stdio := iocli.NewStdio()

	passphrase, err := readPassphrase(stdio)
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}

	salt, err := loadOrCreateSalt(cfg.Storage.Path + ".salt")
	if err != nil {
		return err
	}
	key, err := crypto.DeriveKey(passphrase, salt)
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}
	cipher, err := crypto.NewCipher(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}
	store, err := boltdb.New(ctx, cfg.Storage.Path, cipher, logger)
	if err != nil {
		return fmt.Errorf("failed to open local database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	gw := gateway.NewClient(cfg.Server.URL)
	conn := syncer.NewFlag(online)
	coordinator := syncer.New(gw, store, store.Queue(), conn, logger)
	authService := auth.NewService(gw, store, logger)

	// Очередь durable и могла пережить перезапуск: при живой сети и
	// живой сессии доигрываем её до выполнения команды
	if online && command != "login" {
		if _, err := authService.Restore(ctx); err == nil {
			if err := coordinator.HandleOnline(ctx); err != nil {
				logger.Warn("startup replay failed, queue kept", "error", err)
			}
		} else if !errors.Is(err, storage.ErrSessionNotFound) && !errors.Is(err, auth.ErrSessionExpired) {
			logger.Warn("failed to restore session", "error", err)
		}
	}

	c := cli.New(authService, coordinator, stdio, cfg.DefaultSection())
	return c.Run(ctx, command, args)
}

// readPassphrase берет парольную фразу локального шифрования из
// окружения или запрашивает интерактивно
func readPassphrase(stdio iocli.IO) (string, error) {
	if env := os.Getenv("ROLLBOOK_PASSPHRASE"); env != "" {
		return env, nil
	}
	passphrase, err := stdio.ReadPassword("Passphrase: ")
	if err != nil {
		return "", err
	}
	if passphrase == "" {
		return "", errors.New("passphrase must not be empty")
	}
	return passphrase, nil
}

// loadOrCreateSalt читает соль деривации ключа или создает новую.
// Соль не секретна и лежит рядом с базой.
func loadOrCreateSalt(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		salt, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode salt file %s: %w", path, decErr)
		}
		return salt, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read salt file: %w", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(salt)
	if err := os.WriteFile(path, []byte(encoded), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write salt file: %w", err)
	}
	return salt, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("Rollbook Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
