// Package main implements the entry point for the WordVault API server,
// a personal vocabulary trainer with spaced-repetition review scheduling.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(context.Background(), router); err != nil {
		app.logger.Error("server exited with error", "error", err)
		app.cleanup()
	}
}
