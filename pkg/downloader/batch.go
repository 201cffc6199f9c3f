package downloader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Item struct {
	URL      string
	Filename string
}

// Job is one image of a batch. Path and Err are set once the job finished.
type Job struct {
	ID    string
	Item  Item
	Delay time.Duration
	Path  string
	Err   error
}

// Batch is a set of independent downloads started with a fixed stride.
type Batch struct {
	ID   string
	jobs []*Job
	wg   sync.WaitGroup
}

// SaveAll starts one job per item. Job i fires no earlier than i*Stride after
// the call; a failing job is logged and does not affect the others.
// Cancelling ctx stops jobs that have not fired yet.
func (d *Downloader) SaveAll(ctx context.Context, items []Item) *Batch {
	b := &Batch{
		ID:   uuid.NewString(),
		jobs: make([]*Job, len(items)),
	}
	stride := d.stride()

	slog.Info("Batch started", "batch", b.ID, "items", len(items), "stride", stride)

	for i, it := range items {
		job := &Job{
			ID:    uuid.NewString(),
			Item:  it,
			Delay: time.Duration(i) * stride,
		}
		b.jobs[i] = job

		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			d.runJob(ctx, b.ID, job)
		}()
	}
	return b
}

func (d *Downloader) runJob(ctx context.Context, batchID string, job *Job) {
	timer := time.NewTimer(job.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		job.Err = ctx.Err()
		slog.Debug("Batch job cancelled", "batch", batchID, "job", job.ID)
		return
	case <-timer.C:
	}

	path, err := d.Save(ctx, job.Item.URL, job.Item.Filename)
	if err != nil {
		job.Err = err
		slog.Error("Batch job failed", "batch", batchID, "job", job.ID, "file", job.Item.Filename, "err", err)
		return
	}
	job.Path = path
}

// Wait blocks until every job finished and returns them in item order.
func (b *Batch) Wait() []*Job {
	b.wg.Wait()
	return b.jobs
}

func (b *Batch) Len() int { return len(b.jobs) }
