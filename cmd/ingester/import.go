package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"manga_ingest/internal/reference"
	"manga_ingest/internal/service"
)

var (
	flagExternalDB      string
	flagImportBatchSize int
	flagMaxRecords      int
)

func init() {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Backfill genres, authors and covers of stored manga from a reference dataset",
		RunE:  runImport,
	}

	importCmd.Flags().StringVar(&flagExternalDB, "external-db", "", "path to the reference SQLite dataset")
	importCmd.Flags().IntVar(&flagImportBatchSize, "batch-size", 100, "records per batch")
	importCmd.Flags().IntVar(&flagMaxRecords, "max-records", 0, "stop after this many records (0 means all)")
	_ = importCmd.MarkFlagRequired("external-db")

	rootCmd.AddCommand(importCmd)
}

func openReference(path string) (service.ReferenceReader, error) {
	store, err := reference.Open(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func runImport(cmd *cobra.Command, _ []string) error {
	if flagImportBatchSize < 1 || flagMaxRecords < 0 {
		return fmt.Errorf("batch-size must be positive and max-records non-negative")
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	vocabulary, err := a.genres()
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}

	importService := service.NewImportService(
		openReference,
		a.mangas,
		a.taxonomies,
		a.txManager,
		a.terms,
		vocabulary,
		a.logger,
	)

	_, err = importService.Import(cmd.Context(), service.ImportOptions{
		ExternalDBPath: flagExternalDB,
		BatchSize:      flagImportBatchSize,
		MaxRecords:     flagMaxRecords,
	})
	return err
}
