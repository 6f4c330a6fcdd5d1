package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/iudanet/bodykeeper/internal/client/cli"
	"github.com/iudanet/bodykeeper/internal/client/imagestorage"
	"github.com/iudanet/bodykeeper/internal/client/iocli"
	"github.com/iudanet/bodykeeper/internal/client/securestorage"
	"github.com/iudanet/bodykeeper/internal/client/storage"
	"github.com/iudanet/bodykeeper/internal/client/storage/boltdb"
	"github.com/iudanet/bodykeeper/internal/client/storage/memory"
	"github.com/iudanet/bodykeeper/internal/client/storage/sqlite"
	"github.com/iudanet/bodykeeper/internal/config"
	"github.com/iudanet/bodykeeper/internal/crypto"
	"github.com/iudanet/bodykeeper/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "", "Path to key-value database (default: $BODYKEEPER_DB)")
	imageDBPath := flag.String("image-db", "", "Path to image database (default: $BODYKEEPER_IMAGE_DB)")
	keyFile := flag.String("key-file", "", "Path to file containing the storage key")
	promptKey := flag.Bool("prompt-key", false, "Read the storage key interactively")
	plain := flag.Bool("plain", false, "Store values without encryption")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	stdio := iocli.NewStdio()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		return 1
	}

	// Флаги перекрывают окружение
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *imageDBPath != "" {
		cfg.ImageDBPath = *imageDBPath
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		return 1
	}
	log := logger.New(logger.WithLevel(level), logger.WithFormat(logger.Format(cfg.LogFormat)))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// В открытом режиме ключ не нужен: не запрашиваем и не деривируем его
	var keys *crypto.KeyProvider
	if !*plain {
		secret, err := cli.ReadStorageSecret(stdio, cli.SecretSources{
			FromEnv:  cfg.SecureStorageKey,
			FromFile: *keyFile,
			Prompt:   *promptKey,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		kdf, err := crypto.ParseKDF(cfg.KDF)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
			return 1
		}
		keys = crypto.NewKeyProvider(secret, cfg.Origin,
			crypto.WithKDF(kdf),
			crypto.WithProviderLogger(log),
		)
	}

	kv, closeKV, err := openKeyValueStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeKV(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	secureOpts := []securestorage.Option{
		securestorage.WithPrefix(cfg.Namespace),
		securestorage.WithQuota(cfg.QuotaBytes),
		securestorage.WithLogger(log),
	}
	if *plain {
		secureOpts = append(secureOpts, securestorage.WithPlainMode())
	}
	secure := securestorage.New(kv, keys, secureOpts...)

	images := imagestorage.New(sqlite.Opener(cfg.ImageDBPath), imagestorage.WithLogger(log))
	defer func() {
		if err := images.Close(); err != nil {
			log.Error("failed to close image database", "error", err)
		}
	}()

	if err := cli.New(stdio, secure, images).Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openKeyValueStore opens the synchronous store; ":memory:" keeps it in process
func openKeyValueStore(ctx context.Context, cfg *config.Config) (storage.KeyValueStore, func() error, error) {
	if cfg.DBPath == ":memory:" {
		return memory.New(cfg.QuotaBytes), func() error { return nil }, nil
	}

	boltStorage, err := boltdb.New(ctx, cfg.DBPath, boltdb.WithQuota(cfg.QuotaBytes))
	if err != nil {
		return nil, nil, err
	}
	return boltStorage, boltStorage.Close, nil
}

func printVersion() {
	fmt.Printf("BodyKeeper Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
