package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	app "mailtriage/internal/application/email"
	"mailtriage/internal/domain/email"
	"mailtriage/internal/infrastructure/config"
	"mailtriage/internal/infrastructure/llm"
	"mailtriage/internal/infrastructure/notify"
	"mailtriage/internal/infrastructure/persistence/sqlite"
	"mailtriage/internal/interfaces/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	repo, err := sqlite.NewResultRepository(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open result journal", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close result journal", zap.Error(err))
		}
	}()

	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.ModelName)
	notifier := notify.NewLoggingNotifier(logger)
	dispatcher := app.NewDispatcher(llmClient, notifier, logger)
	useCase := app.NewProcessEmailUseCase(llmClient, dispatcher, logger)
	pool := worker.NewPool(cfg.NumWorkers, useCase, logger)

	results := pool.ProcessBatch(ctx, sampleEmails)

	for _, res := range results {
		if err := repo.Save(ctx, res); err != nil {
			logger.Error("failed to save result",
				zap.String("email_id", res.EmailID),
				zap.Error(err),
			)
		}
	}

	printSummary(os.Stdout, results)
}

func printSummary(w io.Writer, results []email.ProcessingResult) {
	fmt.Fprintln(w, "\nProcessing Summary:")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "email_id\tsuccess\tclassification\tresponse_sent")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%t\t%s\t%s\n",
			res.EmailID, res.Success,
			orDash(res.Classification.String()), orDash(res.ResponseSent),
		)
	}
	tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
