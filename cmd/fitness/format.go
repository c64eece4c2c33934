// ABOUTME: Table and value formatting shared by the list and dashboard commands.
// ABOUTME: Tables are rendered with go-pretty.
package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(header)
	return t
}

func caloriesLabel(kcal *int) string {
	if kcal == nil {
		return "-"
	}
	return strconv.Itoa(*kcal)
}

func heightLabel(cm *float64) string {
	if cm == nil {
		return "-"
	}
	return models.OneDecimal(*cm)
}

// dateFlag parses a --date value, defaulting to today when empty.
func dateFlag(s string) (time.Time, error) {
	if s == "" {
		return models.Today(), nil
	}
	return models.ParseDate(s)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}
