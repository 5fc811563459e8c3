package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/birthdaybook/birthday-api/internal/api/metrics"
	"github.com/birthdaybook/birthday-api/internal/core/ports"
)

const defaultWorkers = 4

// Dispatcher fans a batch of emails out to a fixed set of workers using
// consistent hashing on the recipient, so one mailbox never receives two
// messages concurrently.
type Dispatcher struct {
	workers int
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{workers: numWorkers, mailer: mailer, log: log}
}

// Dispatch sends every email in batch and blocks until all were attempted or
// ctx is cancelled. Emails not attempted before cancellation are reported as
// failed with ctx.Err().
func (d *Dispatcher) Dispatch(ctx context.Context, batch []ports.Email) ports.DispatchResult {
	shards := make([][]ports.Email, d.workers)
	for _, e := range batch {
		i := d.shardIndex(e.To)
		shards[i] = append(shards[i], e)
	}

	var (
		mu  sync.Mutex
		res ports.DispatchResult
		wg  sync.WaitGroup
	)
	record := func(e ports.Email, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			res.Failed = append(res.Failed, ports.DispatchFailure{Email: e, Err: err})
			metrics.ReminderEmailsTotal.WithLabelValues("failed").Inc()
			return
		}
		res.Sent++
		metrics.ReminderEmailsTotal.WithLabelValues("sent").Inc()
	}

	for id, shard := range shards {
		if len(shard) == 0 {
			continue
		}
		ch := make(chan ports.Email, len(shard))
		for _, e := range shard {
			ch <- e
		}
		close(ch)

		wg.Add(1)
		go func(id int, ch <-chan ports.Email) {
			defer wg.Done()
			d.runWorker(ctx, id, ch, record)
		}(id, ch)
	}
	wg.Wait()

	return res
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(recipient)))
	return int(h.Sum32() % uint32(d.workers))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Email, record func(ports.Email, error)) {
	depth := metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(id))
	depth.Set(float64(len(ch)))
	defer depth.Set(0)

	for e := range ch {
		depth.Set(float64(len(ch)))
		if err := ctx.Err(); err != nil {
			record(e, err)
			continue
		}
		err := d.mailer.Send(ctx, e)
		if err != nil {
			d.log.Error().Err(err).
				Str("to", e.To).
				Int("worker_id", id).
				Msg("email delivery failed")
		}
		record(e, err)
	}
}
