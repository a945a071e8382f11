package service

import (
	"log/slog"
	"sync"
)

// MailJob is one queued confirmation email.
type MailJob struct {
	Email    string
	Username string
	Token    string
}

// Mailer dispatches emails on background workers so request handlers never
// block on the mail transport. Fire-and-forget: send failures are logged and
// dropped; there is no retry or dead-letter handling.
type Mailer struct {
	emailService *EmailService
	jobs         chan MailJob
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

func NewMailer(emailService *EmailService, queueSize, workers int) *Mailer {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 1
	}

	m := &Mailer{
		emailService: emailService,
		jobs:         make(chan MailJob, queueSize),
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}

	return m
}

func (m *Mailer) worker() {
	defer m.wg.Done()

	for job := range m.jobs {
		err := m.emailService.SendConfirmationEmail(job.Email, job.Username, job.Token)
		if err != nil {
			slog.Warn("confirmation email send failed", "error", err, "to", job.Email)
		}
	}
}

// Enqueue submits a job without blocking. When the queue is full the job is
// dropped and logged; the user can re-request via the resend route.
func (m *Mailer) Enqueue(job MailJob) {
	select {
	case m.jobs <- job:
	default:
		slog.Warn("mail queue full, dropping email", "to", job.Email)
	}
}

// Close stops accepting jobs and waits for in-flight sends to finish.
func (m *Mailer) Close() {
	m.closeOnce.Do(func() {
		close(m.jobs)
	})
	m.wg.Wait()
}
