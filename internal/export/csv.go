// Package export serializes expense records to CSV.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/models"
)

const header = "ID,Amount,Category,Date,Notes\n"

// Filename returns the name for an export file created at the given time,
// "expenses_<epoch-millis>.csv".
func Filename(now time.Time) string {
	return fmt.Sprintf("expenses_%d.csv", now.UnixMilli())
}

// Write serializes the expenses to w as CSV.
//
// The header is "ID,Amount,Category,Date,Notes", dates are formatted as
// yyyy-MM-dd and nil notes become an empty field.
func Write(w io.Writer, expenses []models.Expense) error {
	var b strings.Builder
	b.WriteString(header)

	for _, expense := range expenses {
		notes := ""
		if expense.Notes != nil {
			notes = *expense.Notes
		}

		b.WriteString(fmt.Sprintf("%d,%s,%s,%s,%s\n",
			expense.ID,
			expense.Amount,
			escape(expense.Category),
			expense.Date.Time().Format("2006-01-02"),
			escape(notes),
		))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile writes the expenses as a CSV file into the directory and
// returns the full path of the created file.
func WriteFile(dir string, expenses []models.Expense) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(time.Now()))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := Write(f, expenses); err != nil {
		f.Close()
		return "", err
	}

	return path, f.Close()
}

// escape quotes a field if and only if it contains a comma, a double
// quote or a line break. Double quotes inside a quoted field are doubled.
func escape(field string) string {
	escaped := strings.ReplaceAll(field, `"`, `""`)
	if strings.ContainsAny(escaped, "\",\n\r") {
		return `"` + escaped + `"`
	}

	return escaped
}
