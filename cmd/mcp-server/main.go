// Package main is the MCP stdio entry point of the PREVENT risk server.
// It needs no config file; see config.LoadLiteConfig for the environment
// variables it reads.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prevent-risk-mcp-server/internal/config"
	"github.com/prevent-risk-mcp-server/internal/mcp"
)

func main() {
	cfg := config.LoadLiteConfig()

	// log writes to stderr; stdout is reserved for the protocol.
	log.Printf("Starting PREVENT MCP server with transport: %s", cfg.Transport)

	server, err := mcp.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}
	defer server.Close()

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		server.Close()
		log.Fatalf("MCP server failed: %v", err)
	}

	log.Println("PREVENT MCP server stopped")
}
