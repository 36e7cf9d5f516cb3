package helper

import (
	"context"
	"log"

	"etickets/database"
	"etickets/service"

	"github.com/go-co-op/gocron/v2"
)

var movieScheduler gocron.Scheduler

// StartMovieStatusScheduler refreshes every movie's showing status once a day
// shortly after midnight, moving COMING_SOON releases on air and closing runs
// past their end date.
func StartMovieStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	movieScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			movies := service.NewMoviesService(database.DB)
			if err := movies.RefreshStatuses(context.Background()); err != nil {
				log.Printf("movie status refresh failed: %v", err)
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Movie status scheduler started (00:05)")
}

func StopMovieStatusScheduler() {
	if movieScheduler != nil {
		if err := movieScheduler.Shutdown(); err != nil {
			log.Printf("movie status scheduler shutdown: %v", err)
		}
	}
}
