// Package main implements the entry point for the shoplist API server,
// a thin HTTP layer over the lists and items tables with authentication
// delegated to an external identity provider.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
