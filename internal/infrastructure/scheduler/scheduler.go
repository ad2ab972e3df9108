package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is one recurring task.
type Job struct {
	Name     string
	Schedule string
	Run      func()
}

// Scheduler runs background jobs such as the pending payment sweep.
type Scheduler struct {
	cron *cron.Cron
	jobs []Job
}

func New(jobs ...Job) *Scheduler {
	cronLogger := cron.PrintfLogger(log.Default())
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		jobs: jobs,
	}
}

// Start registers every job and starts the cron loop. Jobs with an invalid
// schedule are logged and skipped; the count of scheduled jobs is returned.
func (s *Scheduler) Start() int {
	scheduled := 0
	for _, job := range s.jobs {
		if _, err := s.cron.AddFunc(job.Schedule, job.Run); err != nil {
			log.Printf("[scheduler] failed to schedule job name=%s schedule=%q err=%v", job.Name, job.Schedule, err)
			continue
		}
		log.Printf("[scheduler] scheduled job name=%s schedule=%q", job.Name, job.Schedule)
		scheduled++
	}
	s.cron.Start()
	return scheduled
}

// Stop waits for running jobs through the returned context.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
