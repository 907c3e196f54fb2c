package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kursovod/curator-bot/internal/classify"
	"github.com/kursovod/curator-bot/internal/config"
	"github.com/kursovod/curator-bot/internal/llm"
)

// #region basket

// basketCase is one labeled query in the evaluation basket file.
type basketCase struct {
	Query    string `json:"query"`
	Expected string `json:"expected"`
}

// #endregion basket

// #region main

func main() {
	basketPath := flag.String("basket", "", "path to the labeled basket JSON")
	target := flag.Float64("target", 0.9, "minimum accuracy to pass")
	verbose := flag.Bool("v", false, "print every case")
	flag.Parse()

	if *basketPath == "" {
		fmt.Fprintln(os.Stderr, "usage: evalbasket --basket path/to/basket.json [--target 0.9] [-v]")
		os.Exit(2)
	}

	accuracy, err := run(*basketPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if accuracy < *target {
		fmt.Fprintf(os.Stderr, "FAIL: accuracy %.1f%% below target %.1f%%\n", accuracy*100, *target*100)
		os.Exit(1)
	}
	fmt.Printf("PASS: accuracy %.1f%%\n", accuracy*100)
}

// #endregion main

// #region run

func run(basketPath string, verbose bool) (float64, error) {
	raw, err := os.ReadFile(basketPath)
	if err != nil {
		return 0, fmt.Errorf("read basket: %w", err)
	}
	var cases []basketCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return 0, fmt.Errorf("parse basket: %w", err)
	}
	if len(cases) == 0 {
		return 0, fmt.Errorf("basket %s is empty", basketPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	classifier := classify.NewClassifier(
		llm.NewClient(llm.Config{
			BaseURL: cfg.LLMBaseURL,
			APIKey:  cfg.LLMAPIKey,
			Model:   cfg.LLMModel,
			Timeout: cfg.CallTimeout,
		}),
		classify.NewGate(cfg.Lexicon),
		cfg.CourseName,
	)

	correct := 0
	for i, c := range cases {
		res := classifier.Classify(context.Background(), c.Query)
		got := string(res.Category)
		if got == c.Expected {
			correct++
		}
		if verbose || got != c.Expected {
			mark := "ok "
			if got != c.Expected {
				mark = "ERR"
			}
			fmt.Printf("%s [%2d] want=%-9s got=%-9s %s\n", mark, i+1, c.Expected, got, c.Query)
		}
	}

	accuracy := float64(correct) / float64(len(cases))
	fmt.Printf("%d/%d correct\n", correct, len(cases))
	return accuracy, nil
}

// #endregion run
