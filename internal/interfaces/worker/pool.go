package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"
	app "mailtriage/internal/application/email"
	"mailtriage/internal/domain/email"
)

// Pool fans a batch of independent emails out to a fixed number of workers.
// Results always come back in input order; with one worker the batch runs
// fully sequentially.
type Pool struct {
	workers int
	useCase *app.ProcessEmailUseCase
	logger  *zap.Logger
}

func NewPool(workers int, useCase *app.ProcessEmailUseCase, logger *zap.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		useCase: useCase,
		logger:  logger,
	}
}

func (p *Pool) ProcessBatch(ctx context.Context, emails []*email.Email) []email.ProcessingResult {
	results := make([]email.ProcessingResult, len(emails))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for idx := range jobs {
				p.logger.Info("processing email",
					zap.Int("worker", workerID),
					zap.String("email_id", emails[idx].ID),
				)
				results[idx] = p.useCase.Execute(ctx, emails[idx])
			}
		}(i)
	}

submit:
	for idx := range emails {
		select {
		case <-ctx.Done():
			break submit
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	// Emails skipped on cancellation still get a failure record.
	for i := range results {
		if results[i].EmailID == "" {
			results[i] = email.NewFailureResult(emails[i].ID)
		}
	}

	return results
}
