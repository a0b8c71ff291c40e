// Package cmd provides the CLI entry points for the iolo bot.
//
// Commands:
//   - run: start the Telegram bot (default when no command is given)
//   - version: print version information
//   - help: print usage
//
// Signal handling and graceful shutdown are implemented via context
// cancellation: SIGINT/SIGTERM stops polling, then in-flight message units
// are drained before exit.
package cmd

import (
	"fmt"
	"os"
)

// Execute is the main entry point for the iolo CLI.
func Execute() error {
	command := "run"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "run":
		return runBot()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("iolo - Grade 11 Biology Q&A Telegram bot")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  iolo [run]         Start the bot (default)")
	fmt.Println("  iolo version       Show version information")
	fmt.Println("  iolo help          Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  IOLO_TELEGRAM_TOKEN   Required: Telegram bot token")
	fmt.Println("  PINECONE_API_KEY      Required: Pinecone API key")
	fmt.Println("  GEMINI_API_KEY        Required: Gemini API key")
	fmt.Println("  IOLO_INDEX_NAME       Optional: vector index name")
	fmt.Println("  IOLO_MODEL_NAME       Optional: generative model name")
	fmt.Println("  DEBUG                 Optional: enable debug logging")
}
