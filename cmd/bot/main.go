package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shubh-37/brainstorm-board/config"
	"github.com/shubh-37/brainstorm-board/internal/agents"
	"github.com/shubh-37/brainstorm-board/internal/board"
	"github.com/shubh-37/brainstorm-board/internal/session"
	slackpkg "github.com/shubh-37/brainstorm-board/internal/slack"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🚀 Brainstorm Board Bot Starting...")

	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Session state lives in memory and is scoped to the running process
	store := session.NewStore()

	// Initialize the idea generator
	ideaGenerator := agents.NewIdeaGeneratorAgent(cfg.AnthropicKey)

	// Board controller owns all state transitions
	controller := board.NewController(store, ideaGenerator)

	// Initialize Slack client
	slackClient := slackpkg.NewClient(cfg.SlackToken)

	// Create handlers
	messageHandler := slackpkg.NewMessageHandler(slackClient, controller)
	interactionHandler := slackpkg.NewInteractionHandler(slackClient, controller)

	// Create Slack server
	slackServer := slackpkg.NewServer(slackClient, messageHandler, interactionHandler, cfg.SlackSigningSecret)

	// Start Slack server in a goroutine
	go func() {
		if err := slackServer.Start(cfg.Port); err != nil {
			log.Fatalf("Failed to start Slack server: %v", err)
		}
	}()

	log.Println("✅ System initialized successfully")
	log.Println("🧠 Idea Generator: Active")
	log.Println("🗂️ Session Store: In-memory, per-channel")
	log.Println("💬 Slack: Connected and listening")
	log.Println("")
	log.Println("Bot is running. Press Ctrl+C to stop...")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down gracefully...")
}
