package main

import (
	"fmt"
	"log"

	"invex/internal/config"
	"invex/internal/handler"
	"invex/internal/parser"
	_ "invex/internal/parser/gemini" // registers the gemini provider
	"invex/internal/port"
	"invex/internal/router"
	"invex/internal/service"
	s3storage "invex/internal/storage/s3"
	"invex/internal/tabular/xlsx"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Document parser: primary provider, with an optional fallback chain.
	docParser, err := parser.NewParser(&cfg.Parser.Primary)
	if err != nil {
		return fmt.Errorf("failed to initialize parser: %w", err)
	}
	if secondaryCfg := cfg.Parser.SecondaryConfig(); secondaryCfg != nil {
		secondary, err := parser.NewParser(secondaryCfg)
		if err != nil {
			return fmt.Errorf("failed to initialize secondary parser: %w", err)
		}
		docParser = parser.NewFallbackParser(
			[]port.DocumentParser{docParser, secondary},
			[]string{cfg.Parser.Primary.Provider, secondaryCfg.Provider},
		)
	}

	// Optional upload archival
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(docParser, xlsx.ReadTable, storage, &cfg.S3)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractionSvc, cfg.Upload.MaxFileSizeMB)
	exportH := handler.NewExportHandler()
	healthH := handler.NewHealthHandler(cfg.Parser.Primary.Provider)

	// Setup router
	r := router.Setup(extractH, exportH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
