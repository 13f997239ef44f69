package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"manga_ingest/internal/service"
)

var (
	flagBatchSize int
	flagMaxPages  int
)

func init() {
	relocateCmd := &cobra.Command{
		Use:   "relocate",
		Short: "Copy stored page images into the object store and record them as secondary references",
		RunE:  runRelocate,
	}

	relocateCmd.Flags().IntVar(&flagBatchSize, "batch-size", 10, "pages per batch")
	relocateCmd.Flags().IntVar(&flagMaxPages, "max-pages", 0, "stop after this many pages (0 means all)")

	rootCmd.AddCommand(relocateCmd)
}

func runRelocate(cmd *cobra.Command, _ []string) error {
	if flagBatchSize < 1 || flagMaxPages < 0 {
		return fmt.Errorf("batch-size must be positive and max-pages non-negative")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	store, err := a.objectStore(ctx)
	if err != nil {
		return fmt.Errorf("object store: %w", err)
	}
	if store == nil {
		return fmt.Errorf("relocate needs an object store, set s3.bucket")
	}

	proxies, err := a.proxies()
	if err != nil {
		return err
	}

	relocateService := service.NewRelocateService(
		a.pages,
		a.acquirer(store, proxies),
		proxies,
		a.cfg.Images.KeyPrefix,
		store.URL(""),
		a.cfg.Images.MaxRetries,
		a.logger,
		a.cfg.Relocate,
	)

	_, err = relocateService.Relocate(ctx, service.RelocateOptions{
		BatchSize: flagBatchSize,
		MaxPages:  flagMaxPages,
	})
	return err
}
