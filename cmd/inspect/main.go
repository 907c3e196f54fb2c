package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kursovod/curator-bot/internal/feedback"
	"github.com/kursovod/curator-bot/internal/mirror"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the mirror SQLite database")
	logsDir := flag.String("logs", "", "directory with the JSONL ledgers")
	last := flag.Int("last", 10, "show N most recent feedback entries")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" && *logsDir == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect [--db path/to/curator.db] [--logs path/to/logs] [--last N] [--json]")
		os.Exit(2)
	}

	if *dbPath != "" {
		if err := runStats(*dbPath, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *logsDir != "" {
		if err := runRecent(*logsDir, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region stats

func runStats(dbPath string, jsonOut bool) error {
	store, err := mirror.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Println("Quality stats")
	fmt.Printf("  judged turns:  %d\n", stats.Turns)
	fmt.Printf("  good rate:     %.1f%%\n", stats.GoodRate*100)
	fmt.Printf("  ratings:       %d\n", stats.Ratings)
	fmt.Printf("  CSAT:          %.1f%%\n", stats.CSAT*100)
	fmt.Printf("  escalations:   %d\n", stats.Escalations)
	fmt.Printf("  deflection:    %.1f%%\n", stats.Deflection*100)
	return nil
}

// #endregion stats

// #region recent

func runRecent(logsDir string, last int, jsonOut bool) error {
	ledger, err := feedback.NewLedger(logsDir)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	entries, err := ledger.Entries()
	if err != nil {
		return err
	}
	if last > 0 && len(entries) > last {
		entries = entries[len(entries)-last:]
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("Last %d feedback entries\n", len(entries))
	for _, e := range entries {
		rating := "—"
		if e.Rating != nil {
			rating = *e.Rating
		}
		fmt.Printf("  %s  user=%-10d verdict=%-7s rating=%-11s %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.UserID, e.Judge.Verdict, rating, truncate(e.Question, 60))
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// #endregion recent
