// Command remind-due emails members whose borrowings are due on a given day.
//
// Usage:
//
//	remind-due [--date=2026-01-31]
//
// Without --date the current UTC date is used. Intended to run once a day
// from cron or a Kubernetes CronJob.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/heartmarshall/library-backend/internal/app"
)

func main() {
	date := flag.String("date", "", "due date to remind for, YYYY-MM-DD (default: today, UTC)")
	flag.Parse()

	day := time.Now().UTC()
	if *date != "" {
		d, err := time.Parse(time.DateOnly, *date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date %q: expected YYYY-MM-DD\n", *date)
			os.Exit(2)
		}
		day = d
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := app.RemindDue(ctx, day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remind-due: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Due: %d, sent: %d, skipped: %d, failed: %d.\n",
		report.Due, report.Sent, report.Skipped, report.Failed)
	if report.Failed > 0 {
		os.Exit(1)
	}
}
