package main

import (
	"log"
	"net/http"

	"atelier-storefront/internal/backendtest"
	"atelier-storefront/internal/config"
)

// Runs the in-memory backend so the storefront CLI can be exercised
// without the real service. State lives for the lifetime of the process.
func main() {
	cfg := config.Load()

	server := backendtest.New(cfg.JWTSecret)
	server.Seed()

	if _, err := server.CreateAdmin("admin", "admin@atelier.test", "admin123"); err != nil {
		log.Fatal("Failed to create admin account:", err)
	}
	log.Println("Admin account: admin@atelier.test / admin123")

	log.Printf("Stub backend listening on %s", cfg.StubAddr)
	if err := http.ListenAndServe(cfg.StubAddr, server.Handler()); err != nil {
		log.Fatal("Failed to start stub backend:", err)
	}
}
