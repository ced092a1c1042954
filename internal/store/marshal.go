package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/roach88/events/internal/event"
)

// Column names, in the order they are written.
const (
	ColumnDate        = "date"
	ColumnCategory    = "category"
	ColumnDescription = "description"
)

// Header is the first row of every store file.
var Header = []string{ColumnDate, ColumnCategory, ColumnDescription}

// EncodeEvents writes the header and one row per event, in slice order.
func EncodeEvents(w io.Writer, events []event.Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range events {
		if err := cw.Write(marshalEvent(e)); err != nil {
			return fmt.Errorf("write event %s: %w", e.Date, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// DecodeEvents reads a store file. Rows whose date does not parse are
// logged and skipped. An empty input decodes to an empty, non-nil slice.
//
// Columns are matched by header name, so column order does not matter.
// The date and description columns are required; a missing category column
// leaves every event uncategorized.
func DecodeEvents(r io.Reader, logger *slog.Logger) ([]event.Event, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []event.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	events := []event.Event{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		e, err := unmarshalEvent(record, cols)
		if err != nil {
			logger.Warn("dropping row with bad date",
				"line", line,
				"date", record[cols.date],
				"error", err)
			continue
		}
		events = append(events, e)
	}

	return events, nil
}

// columns holds the index of each known column; -1 when absent.
type columns struct {
	date        int
	category    int
	description int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{date: -1, category: -1, description: -1}
	for i, name := range header {
		// Spreadsheet exports often start with a UTF-8 byte order mark.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch strings.ToLower(name) {
		case ColumnDate:
			cols.date = i
		case ColumnCategory:
			cols.category = i
		case ColumnDescription:
			cols.description = i
		}
	}

	var missing []string
	if cols.date < 0 {
		missing = append(missing, ColumnDate)
	}
	if cols.description < 0 {
		missing = append(missing, ColumnDescription)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("header is missing column(s) %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func marshalEvent(e event.Event) []string {
	return []string{e.Date.String(), e.Category, e.Description}
}

func unmarshalEvent(record []string, cols columns) (event.Event, error) {
	date, err := event.ParseDate(strings.TrimSpace(record[cols.date]))
	if err != nil {
		return event.Event{}, err
	}

	var category string
	if cols.category >= 0 {
		category = record[cols.category]
	}
	return event.New(date, category, record[cols.description]), nil
}
