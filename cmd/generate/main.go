// Command generate asks the model for one recipe and prints it.
//
//	generate [-timeout 60s] [-json] <desire...>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pageza/recipe-chef/backend/config"
	"github.com/pageza/recipe-chef/backend/internal/logger"
	"github.com/pageza/recipe-chef/backend/internal/render"
	"github.com/pageza/recipe-chef/backend/internal/service"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	timeout := fs.Duration("timeout", 60*time.Second, "maximum time to wait for the model (0 for none)")
	asJSON := fs.Bool("json", false, "print the raw JSON result instead of formatted text")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: generate [-timeout 60s] [-json] <desire...>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	desire := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if desire == "" {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitError
	}
	// Logs go to stderr so stdout carries only the result.
	slog.SetDefault(logger.New(stderr, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	svc := service.NewLLMService(service.LLMConfig{
		APIKey:      cfg.GeminiAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
	})

	return generate(ctx, svc, desire, *asJSON, stdout, stderr)
}

func generate(ctx context.Context, svc service.LLMServiceInterface, desire string, asJSON bool, stdout, stderr io.Writer) int {
	result, err := svc.GenerateRecipe(ctx, desire)
	if err != nil {
		fmt.Fprintf(stderr, "Error (%s): %v\n", service.ErrorKind(err), err)
		if errors.Is(err, service.ErrConfiguration) {
			fmt.Fprintln(stderr, "Set GEMINI_API_KEY (or GEMINI_API_KEY_FILE) and try again.")
		}
		return exitError
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if err := render.Result(stdout, result); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
