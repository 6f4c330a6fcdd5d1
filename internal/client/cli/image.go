package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/iudanet/bodykeeper/internal/client/reconcile"
	"github.com/iudanet/bodykeeper/internal/client/storage"
	"github.com/iudanet/bodykeeper/internal/validation"
)

func (c *Cli) runImage(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing image command. Usage: bodykeeper image <save|get|list|delete|clear|info>")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "save":
		return c.runImageSave(ctx, rest)
	case "get":
		return c.runImageGet(ctx, rest)
	case "list":
		return c.runImageList(ctx)
	case "delete":
		return c.runImageDelete(ctx, rest)
	case "clear":
		return c.runImageClear(ctx)
	case "info":
		return c.runImageInfo(ctx)
	default:
		return fmt.Errorf("unknown image command: %s", sub)
	}
}

func (c *Cli) runImageSave(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file. Usage: bodykeeper image save <file.json>")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}

	var img storage.StoredImage
	if err := json.Unmarshal(content, &img); err != nil {
		return fmt.Errorf("image file is not a valid record: %w", err)
	}

	// Новая запись без id получает UUID
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	if err := validation.ValidateImageID(img.ID); err != nil {
		return err
	}

	if err := c.images.SaveImage(ctx, &img); err != nil {
		return err
	}

	c.io.Printf("Saved image %s\n", img.ID)
	return nil
}

func (c *Cli) runImageGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing image ID. Usage: bodykeeper image get <id>")
	}
	if err := validation.ValidateImageID(args[0]); err != nil {
		return err
	}

	img, found, err := c.images.GetImage(ctx, args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("image not found with ID: %s", args[0])
	}

	return c.printJSON(img)
}

func (c *Cli) runImageList(ctx context.Context) error {
	all, err := c.images.GetAllImages(ctx)
	if err != nil {
		return err
	}

	records := make([]storage.StoredImage, 0, len(all))
	for _, img := range all {
		records = append(records, *img)
	}
	reconcile.SortByDateDesc(records)

	c.printRecords(records, "No images found.")
	return nil
}

func (c *Cli) runImageDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing image ID. Usage: bodykeeper image delete <id>")
	}
	if err := validation.ValidateImageID(args[0]); err != nil {
		return err
	}

	if err := c.images.DeleteImage(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("Deleted image %s\n", args[0])
	return nil
}

func (c *Cli) runImageClear(ctx context.Context) error {
	if err := c.images.ClearAll(ctx); err != nil {
		return err
	}

	c.io.Println("Image storage cleared.")
	return nil
}

func (c *Cli) runImageInfo(ctx context.Context) error {
	info, err := c.images.StorageInfo(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Images: %d\n", info.Count)
	c.io.Printf("Size:   %d bytes\n", info.Size)
	return nil
}

func (c *Cli) runRecords(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing list key. Usage: bodykeeper records <listKey>")
	}
	if err := validation.ValidateKey(args[0]); err != nil {
		return err
	}

	records, err := reconcile.LoadImages(ctx, c.images, c.secure, args[0])
	if err != nil {
		return err
	}
	reconcile.SortByDateDesc(records)

	c.printRecords(records, "No records found.")
	return nil
}

func (c *Cli) printRecords(records []storage.StoredImage, empty string) {
	if len(records) == 0 {
		c.io.Println(empty)
		return
	}

	c.io.Printf("Found %d record(s):\n", len(records))
	c.io.Println()
	for i, img := range records {
		c.io.Printf("%d. %s\n", i+1, img.ID)
		c.io.Printf("   Date:   %s\n", img.Date)
		c.io.Printf("   Length: %g\n", img.Length)
		c.io.Printf("   Girth:  %g\n", img.Girth)
		c.io.Printf("   Image:  %d bytes\n", len(img.Image))
	}
}
