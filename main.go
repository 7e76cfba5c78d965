package main

import (
	"flag"
	"log"

	"github.com/driveline/rental-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	shouldRunScheduler := flag.Bool("scheduler", false, "Run cron job scheduler")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunScheduler {
		if err := cmd.RunJobScheduler(); err != nil {
			log.Fatal(err)
		}
	}
}
