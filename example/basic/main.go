package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	aegisrt "github.com/ghalamif/AegisRT"
)

func main() {
	flow, err := aegisrt.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = flow.
		StreamIN(aegisrt.StreamInSeed(0xBEEF)).
		Run(ctx, aegisrt.StreamOutWriter(os.Stdout))
	if err != nil && err != context.Canceled {
		log.Fatalf("pipeline exited: %v", err)
	}
}
