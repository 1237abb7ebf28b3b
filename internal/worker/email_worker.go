package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/mailer"
)

// EmailWorker consumes the send queue and delivers messages through the
// configured mail sender.
type EmailWorker struct {
	rdb    *redis.Client
	sender mailer.Sender
	log    zerolog.Logger
}

// NewEmailWorker creates a new EmailWorker.
func NewEmailWorker(rdb *redis.Client, sender mailer.Sender, log zerolog.Logger) *EmailWorker {
	return &EmailWorker{
		rdb:    rdb,
		sender: sender,
		log:    log.With().Str("component", "email_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *EmailWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *EmailWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.SendEmailQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var job mailer.EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error, dropping job")
		return
	}

	if err := w.deliver(ctx, &job); err != nil {
		w.log.Error().Err(err).
			Str("to", job.To).
			Str("template", job.Template).
			Msg("Delivery error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.SendEmailQueue, result[1])
		time.Sleep(5 * time.Second)
		return
	}

	w.log.Info().Str("to", job.To).Str("template", job.Template).Msg("Email sent")
}

func (w *EmailWorker) deliver(ctx context.Context, job *mailer.EmailJob) error {
	subject, text, html, err := mailer.Render(job)
	if err != nil {
		// Unknown template will never succeed; log and drop.
		w.log.Error().Err(err).Str("template", job.Template).Msg("Render error, dropping job")
		return nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	return w.sender.Send(sendCtx, job.To, subject, text, html)
}
