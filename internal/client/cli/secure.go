package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/bodykeeper/internal/validation"
)

func (c *Cli) runSet(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments. Usage: bodykeeper set <key> <json>")
	}

	key, raw := args[0], args[1]
	if err := validation.ValidateKey(key); err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fmt.Errorf("value is not valid JSON: %w", err)
	}

	if err := c.secure.SetItem(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}

	c.io.Printf("Saved %s (%s)\n", key, c.secure.Mode())
	return nil
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing key. Usage: bodykeeper get <key>")
	}

	key := args[0]
	if err := validation.ValidateKey(key); err != nil {
		return err
	}

	var value json.RawMessage
	if !c.secure.GetItem(ctx, key, &value) {
		return fmt.Errorf("key not found: %s", key)
	}

	return c.printJSON(value)
}

func (c *Cli) runHas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing key. Usage: bodykeeper has <key>")
	}
	if err := validation.ValidateKey(args[0]); err != nil {
		return err
	}

	c.io.Println(c.secure.HasItem(ctx, args[0]))
	return nil
}

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing key. Usage: bodykeeper remove <key>")
	}
	if err := validation.ValidateKey(args[0]); err != nil {
		return err
	}

	if err := c.secure.RemoveItem(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("Removed %s\n", args[0])
	return nil
}

func (c *Cli) runKeys(ctx context.Context) error {
	keys, err := c.secure.Keys(ctx)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		c.io.Println("No keys stored.")
		return nil
	}

	for _, k := range keys {
		c.io.Println(k)
	}
	return nil
}

func (c *Cli) runClear(ctx context.Context) error {
	if err := c.secure.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("Secure storage cleared.")
	return nil
}

func (c *Cli) runInfo(ctx context.Context) error {
	info, err := c.secure.StorageInfo(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Mode:  %s\n", c.secure.Mode())
	c.io.Printf("Used:  %d bytes\n", info.Used)
	c.io.Printf("Total: %d bytes\n", info.Total)
	c.io.Printf("Usage: %.2f%%\n", info.Percentage)
	return nil
}

func (c *Cli) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format value: %w", err)
	}

	data = append(data, '\n')
	if _, err := c.io.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
