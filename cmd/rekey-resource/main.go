package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mdblp/i18n-rekey/messages"
	"github.com/mdblp/i18n-rekey/migrate"
	"github.com/mdblp/i18n-rekey/options"
	"github.com/mdblp/i18n-rekey/report"
	"github.com/napalu/goopt/v2"
)

func main() {
	cfg := &options.ResourceConfig{}

	// Create i18n bundle
	bundle, err := messages.NewBundle()
	if err != nil {
		log.Fatalf("Failed to create i18n bundle: %v", err)
	}

	// Set up translator for the app
	cfg.TR = bundle

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		log.Fatalf("Failed to create parser: %v", err)
	}

	success := parser.Parse(os.Args)

	// Handle language switching
	messages.SetLanguage(bundle, cfg.Language)

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, err))
			fmt.Fprintln(os.Stderr)
		}
		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(1)
	}

	logger := report.NewLogger(os.Stderr, cfg.Verbose)
	runner := migrate.NewRunner(os.Stdout, cfg.TR,
		migrate.WithLogger(logger),
		migrate.WithWidth(report.TerminalWidth(os.Stdout, nil)))

	if _, err := runner.Resource(cfg); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.AppError.ParseError, messages.RenderError(cfg.TR, err)))
		os.Exit(1)
	}
}
