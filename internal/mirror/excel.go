package mirror

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"
)

// #region workbook

var sheetHeaders = map[Kind][]interface{}{
	KindNormalization: {"created_at", "request_id", "user_id", "question", "category"},
	KindJudge:         {"created_at", "request_id", "user_id", "question", "category", "answer", "verdict", "overall"},
	KindFeedback:      {"created_at", "request_id", "user_id", "rating"},
	KindEscalation:    {"created_at", "request_id", "user_id", "question"},
}

var sheetNames = map[Kind]string{
	KindNormalization: "Normalization",
	KindJudge:         "Judge",
	KindFeedback:      "Feedback",
	KindEscalation:    "Escalation",
}

// Workbook appends events to an xlsx file, one sheet per event kind.
// The file is saved after every append so it is readable at any moment.
type Workbook struct {
	mu   sync.Mutex
	path string
	file *excelize.File
	rows map[Kind]int // last written row per sheet
}

// OpenWorkbook opens an existing workbook or creates a fresh one with
// headered sheets.
func OpenWorkbook(path string) (*Workbook, error) {
	wb := &Workbook{path: path, rows: make(map[Kind]int)}

	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		wb.file = f
		for kind, name := range sheetNames {
			rows, err := f.GetRows(name)
			if err != nil {
				return nil, fmt.Errorf("read sheet %s: %w", name, err)
			}
			wb.rows[kind] = len(rows)
		}
		return wb, nil
	}

	f := excelize.NewFile()
	for kind, name := range sheetNames {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
		headers := sheetHeaders[kind]
		if err := f.SetSheetRow(name, "A1", &headers); err != nil {
			return nil, fmt.Errorf("write header %s: %w", name, err)
		}
		wb.rows[kind] = 1
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("save workbook: %w", err)
	}
	wb.file = f
	return wb, nil
}

// Record appends one row to the event's sheet and saves the file.
func (w *Workbook) Record(ev Event) error {
	name, ok := sheetNames[ev.Kind]
	if !ok {
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	at := ev.CreatedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var row []interface{}
	switch ev.Kind {
	case KindNormalization:
		row = []interface{}{at.Format(time.RFC3339), ev.RequestID, ev.UserID, ev.Question, ev.Category}
	case KindJudge:
		row = []interface{}{at.Format(time.RFC3339), ev.RequestID, ev.UserID, ev.Question, ev.Category, ev.Answer, ev.Verdict, ev.Overall}
	case KindFeedback:
		row = []interface{}{at.Format(time.RFC3339), ev.RequestID, ev.UserID, ev.Rating}
	case KindEscalation:
		row = []interface{}{at.Format(time.RFC3339), ev.RequestID, ev.UserID, ev.Question}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.rows[ev.Kind] + 1
	cell, err := excelize.CoordinatesToCellName(1, next)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := w.file.SetSheetRow(name, cell, &row); err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	if err := w.file.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	w.rows[ev.Kind] = next
	return nil
}

// Close releases the workbook handle.
func (w *Workbook) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.file.Close()
}

// #endregion workbook
