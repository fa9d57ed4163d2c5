package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/payright/ai-service/internal/alternatives"
	"github.com/payright/ai-service/internal/config"
	"github.com/payright/ai-service/internal/domain"
	"github.com/payright/ai-service/internal/inference"
	"github.com/payright/ai-service/internal/logger"
)

// One-shot analysis tool: reads a JSON file of transaction records, runs the
// inference pipeline against Gemini and prints the result, plus catalog
// alternatives for every identified subscription.
//
// Usage:
//
//	cli -file transactions.json [-suggest]
func main() {
	var (
		file    = flag.String("file", "", "path to a JSON file containing an array of transaction records")
		suggest = flag.Bool("suggest", false, "also print alternatives for each identified subscription")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger.Level)

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -file transactions.json [-suggest]")
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to read transactions file")
	}

	var records []domain.TransactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse transactions file")
	}
	if len(records) == 0 {
		log.Fatal().Msg("Transactions file contains no records")
	}

	if !cfg.GeminiConfigured() {
		log.Fatal().Msg("GEMINI_API_KEY is not configured")
	}

	ctx := context.Background()

	completer, err := inference.NewGeminiCompleter(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini completer")
	}

	analyzer := inference.NewAnalyzer(completer, log)

	result, err := analyzer.Analyze(ctx, records)
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode result")
	}
	fmt.Println(string(out))

	if *suggest {
		matcher := alternatives.NewMatcher(log)
		for _, sub := range result.IdentifiedSubscriptions {
			alts := matcher.Lookup(sub.Name)
			fmt.Printf("\nAlternatives for %s (%d):\n", sub.Name, len(alts))
			for _, alt := range alts {
				fmt.Printf("  - %s", alt.Name)
				if alt.Description != "" {
					fmt.Printf(": %s", alt.Description)
				}
				fmt.Println()
			}
		}
	}
}
