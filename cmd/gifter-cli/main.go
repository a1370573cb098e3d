package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/munjalisha10-hub/giftgenie-backend/internal/gifterclient"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "quiz service base URL")
	details := flag.String("file", "", "JSON file with the quiz payload (default: built-in sample)")
	wait := flag.Bool("wait", false, "poll for the receiver's answers after creating")
	interval := flag.Duration("interval", 5*time.Second, "polling interval when waiting")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	err := gifterclient.Run(context.Background(), os.Stdout, gifterclient.Config{
		ServerURL:    *server,
		DetailsPath:  *details,
		Wait:         *wait,
		PollInterval: *interval,
		HTTPTimeout:  *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
