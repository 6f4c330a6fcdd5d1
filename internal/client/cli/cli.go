package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/bodykeeper/internal/client/imagestorage"
	"github.com/iudanet/bodykeeper/internal/client/iocli"
	"github.com/iudanet/bodykeeper/internal/client/securestorage"
)

// SecretSources lists where the storage secret may come from
type SecretSources struct {
	FromEnv  string // SECURE_STORAGE_KEY
	FromFile string
	Prompt   bool
}

type Cli struct {
	io     iocli.IO
	secure *securestorage.Storage
	images *imagestorage.Storage
}

func New(io iocli.IO, secure *securestorage.Storage, images *imagestorage.Storage) *Cli {
	return &Cli{
		io:     io,
		secure: secure,
		images: images,
	}
}

// Run executes one command. args[0] is the command name.
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "set":
		return c.runSet(ctx, rest)
	case "get":
		return c.runGet(ctx, rest)
	case "has":
		return c.runHas(ctx, rest)
	case "remove":
		return c.runRemove(ctx, rest)
	case "keys":
		return c.runKeys(ctx)
	case "clear":
		return c.runClear(ctx)
	case "info":
		return c.runInfo(ctx)
	case "image":
		return c.runImage(ctx, rest)
	case "records":
		return c.runRecords(ctx, rest)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// ReadStorageSecret returns the storage secret with priority:
// 1. SECURE_STORAGE_KEY environment variable
// 2. File given by --key-file
// 3. Interactive prompt if --prompt-key is set
// An empty result selects the fallback key.
func ReadStorageSecret(io iocli.IO, sources SecretSources) (string, error) {
	// Priority 1: Environment variable
	if sources.FromEnv != "" {
		return sources.FromEnv, nil
	}

	// Priority 2: File
	if sources.FromFile != "" {
		content, err := os.ReadFile(sources.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read key file: %w", err)
		}
		// Убираем trailing newline/whitespace
		secret := strings.TrimSpace(string(content))
		if secret == "" {
			return "", fmt.Errorf("key file is empty")
		}
		return secret, nil
	}

	// Priority 3: Interactive prompt
	if sources.Prompt {
		secret, err := io.ReadPassword("Storage key: ")
		if err != nil {
			return "", fmt.Errorf("failed to read storage key: %w", err)
		}
		if secret == "" {
			return "", fmt.Errorf("storage key cannot be empty")
		}
		return secret, nil
	}

	return "", nil
}

func (c *Cli) PrintUsage() {
	PrintUsage(c.io)
}

func PrintUsage(io iocli.IO) {
	io.Println("BodyKeeper Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  bodykeeper [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version          Show version information")
	io.Println("  --db PATH          Path to key-value database (:memory: for in-process)")
	io.Println("  --image-db PATH    Path to image database")
	io.Println("  --key-file PATH    Path to file containing the storage key")
	io.Println("  --prompt-key       Read the storage key interactively")
	io.Println("  --plain            Store values without encryption")
	io.Println()
	io.Println("Storage Key Priority (highest to lowest):")
	io.Println("  1. SECURE_STORAGE_KEY environment variable")
	io.Println("  2. --key-file (file path)")
	io.Println("  3. --prompt-key (interactive)")
	io.Println("  4. Origin-based fallback (APP_ORIGIN), not secret")
	io.Println()
	io.Println("Commands:")
	io.Println("  set <key> <json>        Store a JSON value")
	io.Println("  get <key>               Show a stored value")
	io.Println("  has <key>               Check whether a key exists")
	io.Println("  remove <key>            Delete a value")
	io.Println("  keys                    List stored keys")
	io.Println("  clear                   Delete all stored values")
	io.Println("  info                    Show storage usage")
	io.Println("  image save <file.json>  Save an image record")
	io.Println("  image get <id>          Show an image record")
	io.Println("  image list              List image records")
	io.Println("  image delete <id>       Delete an image record")
	io.Println("  image clear             Delete all image records")
	io.Println("  image info              Show image storage usage")
	io.Println("  records <listKey>       List image records merged with the legacy list")
	io.Println()
	io.Println("Examples:")
	io.Println("  bodykeeper set goals '[{\"id\":\"1\",\"target\":15}]'")
	io.Println("  bodykeeper get goals")
	io.Println("  bodykeeper image save photo.json")
	io.Println("  bodykeeper records measurements")
}
