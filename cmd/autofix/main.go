// Command autofix runs a two-stage find-bugs-then-fix pass over a
// single source file using the local model's completion endpoint. It
// takes no arguments: both file paths and the endpoint come from the
// environment.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/swipeai/deskassist/internal/config"
	"github.com/swipeai/deskassist/internal/llm"
	"github.com/swipeai/deskassist/internal/repair"
)

func main() {
	_ = godotenv.Load()

	inputPath := config.GetEnv("AUTOFIX_INPUT", "main.go")
	outputPath := config.GetEnv("AUTOFIX_OUTPUT", "main_fixed.go")

	model := config.ModelConfig{
		Host:  config.GetEnv("OLLAMA_HOST", "127.0.0.1"),
		Port:  config.GetEnv("OLLAMA_PORT", "11434"),
		Model: config.GetEnv("AUTOFIX_MODEL", "deepseek-r1"),
	}

	if _, err := os.Stat(inputPath); err != nil {
		log.Fatalf("File not found: %s", inputPath)
	}

	fixer := repair.New(llm.NewClient(model))
	if err := fixer.ImproveFile(context.Background(), inputPath, outputPath); err != nil {
		log.Fatalf("autofix failed: %v", err)
	}
	slog.Info("Autofix complete.", "input", inputPath, "output", outputPath)
}
