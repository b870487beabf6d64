// Command tracking-worker applies courier tracking events from Kafka to parcels.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"fastkart-parcels/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.NewWorkerRunner().MustRun(app.MustBuildWorkerContainer(ctx))
}
