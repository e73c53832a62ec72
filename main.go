package main

import (
	"context"
	"time"

	"github.com/shandysiswandi/enquiry/internal/app"
)

func main() {
	application := app.New()    // Initialize the relay
	wait := application.Start() // Start serving and wait for the termination signal
	<-wait                      // Block until a termination signal arrives
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the relay gracefully
}
