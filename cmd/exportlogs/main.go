package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kursovod/curator-bot/internal/feedback"
)

// #region main

func main() {
	logsDir := flag.String("logs", "./logs", "directory with the JSONL ledgers")
	outPath := flag.String("out", "logs.xlsx", "output workbook path")
	flag.Parse()

	if err := run(*logsDir, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(logsDir, outPath string) error {
	ledger, err := feedback.NewLedger(logsDir)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	entries, err := ledger.Entries()
	if err != nil {
		return fmt.Errorf("read feedback ledger: %w", err)
	}
	judged, err := ledger.JudgeRecords()
	if err != nil {
		return fmt.Errorf("read judge ledger: %w", err)
	}
	escalations, err := ledger.Escalations()
	if err != nil {
		return fmt.Errorf("read escalation ledger: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeFeedbackSheet(f, entries); err != nil {
		return err
	}
	if err := writeJudgeSheet(f, judged); err != nil {
		return err
	}
	if err := writeEscalationSheet(f, escalations); err != nil {
		return err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("save %s: %w", outPath, err)
	}
	fmt.Printf("exported %d feedback, %d judge, %d escalation rows to %s\n",
		len(entries), len(judged), len(escalations), outPath)
	return nil
}

func writeFeedbackSheet(f *excelize.File, entries []feedback.Entry) error {
	rows := [][]interface{}{
		{"created_at", "request_id", "user_id", "question", "answer", "category", "verdict", "overall", "rating", "rated_at", "unlinked"},
	}
	for _, e := range entries {
		rating := ""
		if e.Rating != nil {
			rating = *e.Rating
		}
		ratedAt := ""
		if e.RatedAt != nil {
			ratedAt = e.RatedAt.Format(time.RFC3339)
		}
		rows = append(rows, []interface{}{
			e.CreatedAt.Format(time.RFC3339), e.RequestID, e.UserID, e.Question, e.Answer,
			e.Category, e.Judge.Verdict, e.Judge.OverallScore, rating, ratedAt, e.Unlinked,
		})
	}
	return writeSheet(f, "Feedback", rows)
}

func writeJudgeSheet(f *excelize.File, recs []feedback.JudgeRecord) error {
	rows := [][]interface{}{
		{"created_at", "request_id", "user_id", "question", "category", "answer",
			"relevance", "groundedness", "safety", "completeness",
			"correct_refusal", "question_type_correct", "verdict", "overall", "comment"},
	}
	for _, r := range recs {
		rows = append(rows, []interface{}{
			r.CreatedAt.Format(time.RFC3339), r.RequestID, r.UserID, r.Question, r.Category, r.Answer,
			r.Judge.Scores.Relevance, r.Judge.Scores.Groundedness, r.Judge.Scores.Safety, r.Judge.Scores.Completeness,
			r.Judge.CorrectRefusal, r.Judge.QuestionTypeCorrect, r.Judge.Verdict, r.Judge.OverallScore, r.Judge.Comment,
		})
	}
	return writeSheet(f, "Judge", rows)
}

func writeEscalationSheet(f *excelize.File, recs []feedback.EscalationRecord) error {
	rows := [][]interface{}{
		{"created_at", "request_id", "user_id", "question", "answer"},
	}
	for _, r := range recs {
		rows = append(rows, []interface{}{
			r.CreatedAt.Format(time.RFC3339), r.RequestID, r.UserID, r.Question, r.Answer,
		})
	}
	return writeSheet(f, "Escalation", rows)
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			return fmt.Errorf("write sheet %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

// #endregion export
