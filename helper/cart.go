package helper

import (
	"log"

	"etickets/cart"
	"etickets/database"

	"github.com/robfig/cron/v3"
)

var cartSweeper *cron.Cron

// StartCartSweeper deletes cart lines whose session went quiet, every hour.
func StartCartSweeper() {
	cartSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := cartSweeper.AddFunc("@hourly", func() {
		removed, err := cart.SweepExpired(database.DB)
		if err != nil {
			log.Printf("cart sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("cart sweep removed %d expired lines", removed)
		}
	})
	if err != nil {
		log.Printf("cart sweeper init failed: %v", err)
		return
	}

	cartSweeper.Start()
	log.Println("Cart sweeper started (hourly)")
}

func StopCartSweeper() {
	if cartSweeper != nil {
		cartSweeper.Stop()
		log.Println("Cart sweeper stopped")
	}
}
