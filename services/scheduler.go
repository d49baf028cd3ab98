package services

import (
	"log"
	"time"

	"esports-platform/models"

	"github.com/go-co-op/gocron/v2"
)

// StartDeadlineScheduler runs a minutely job that closes registration for
// open tournaments whose deadline has passed.
func (s *TournamentService) StartDeadlineScheduler() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("[Scheduler] init failed, deadline job not running: %v", err)
		return
	}
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			closed, err := s.CloseExpiredRegistrations(time.Now())
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}
			if closed > 0 {
				log.Printf("✅ Closed registration for %d tournament(s) past deadline", closed)
			}
		}),
	)
}

// CloseExpiredRegistrations flips Open tournaments with an elapsed
// registration deadline to Closed and returns how many changed.
func (s *TournamentService) CloseExpiredRegistrations(now time.Time) (int64, error) {
	res := s.DB.Model(&models.Tournament{}).
		Where("registration_status = ? AND registration_deadline IS NOT NULL AND registration_deadline <= ?",
			models.RegistrationOpen, now).
		Update("registration_status", models.RegistrationClosed)
	return res.RowsAffected, res.Error
}
