package worker

import (
	"context"
	"encoding/json"
	"time"

	"clamoresul/internal/model"
	"clamoresul/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueVisitas = "jobs:visitas"

// VisitaJob is the payload enqueued once per public page view.
type VisitaJob struct {
	VisitanteID string    `json:"visitante_id"`
	Pagina      string    `json:"pagina"`
	Referrer    *string   `json:"referrer"`
	UserAgent   string    `json:"user_agent"`
	Quando      time.Time `json:"quando"`
}

// VisitaEnqueuer is what handlers depend on; Dispatcher implements it.
type VisitaEnqueuer interface {
	EnqueueVisita(ctx context.Context, job VisitaJob) error
}

// Dispatcher enqueues visit jobs into a Redis list. The worker pool
// dequeues them via BRPOP, so a slow or unavailable database never delays
// the beacon response.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

func (d *Dispatcher) EnqueueVisita(ctx context.Context, job VisitaJob) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueVisitas, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the visit queue.
// Each goroutine blocks on BRPOP — zero CPU when idle. Visit recording is
// best-effort end to end: failures are logged at debug level and the job is
// dropped, never retried.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, visitas repository.VisitaRepository, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, visitas, i)
	}
	log.Info().Msgf("worker pool de visitas iniciado com %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, visitas repository.VisitaRepository, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d encerrando", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx.
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueVisitas).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			// result[0] is the queue name, result[1] the payload
			if len(result) < 2 {
				continue
			}
			processarVisita(ctx, visitas, []byte(result[1]))
		}
	}
}

func processarVisita(ctx context.Context, visitas repository.VisitaRepository, payload []byte) {
	var job VisitaJob
	if err := json.Unmarshal(payload, &job); err != nil {
		log.Debug().Err(err).Msg("visita descartada: payload inválido")
		return
	}
	visitanteID, err := uuid.Parse(job.VisitanteID)
	if err != nil {
		log.Debug().Err(err).Msg("visita descartada: visitante_id inválido")
		return
	}
	v := &model.Visita{
		VisitanteID: visitanteID,
		Pagina:      job.Pagina,
		Referrer:    job.Referrer,
		UserAgent:   job.UserAgent,
		CreatedAt:   job.Quando,
	}
	if err := visitas.Criar(ctx, v); err != nil {
		log.Debug().Err(err).Msg("visita descartada: falha ao gravar")
	}
}
