package write

import (
	"fmt"
	"io"
	"strings"
)

type WriteSettings struct {
	DisplayWriters []Writer // Where the iteration trace is written. Nil disables all display
}

// DefaultWriteSettings returns settings with no writers attached. Solves are
// silent unless a caller explicitly asks for a trace.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save the trace for future
	// postprocessing. The data is written as csv, one row per iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring. Columns are
	// aligned and headings are reprinted periodically
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

// Headings are reprinted after this many rows on a Displayer
const headingInterval = 30

// Display emits one row per solver iteration to the attached writers,
// in display or csv form according to the writer type. The set of headings
// is fixed at Init.
type Display struct {
	displayValues []*Value

	headings []string
	values   []string

	maxLengths []int

	rowsSinceHeading int

	writers []Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in the display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = w.DisplayWriters
	d.rowsSinceHeading = headingInterval + 1 // headings print on the first row

	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			if err := writeCSVRow(w, d.headings); err != nil {
				return err
			}
		case Displayer:
		}
	}
	return nil
}

// Iterate emits one row to all of the writers. It is called by the solver at
// the end of every iteration
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	d.maxLengths = d.maxLengths[:0]
	for i, v := range d.values {
		d.maxLengths = append(d.maxLengths, len(v))
		if len(d.headings[i]) > len(v) {
			d.maxLengths[i] = len(d.headings[i])
		}
	}

	displayHeadings := d.rowsSinceHeading > headingInterval
	if displayHeadings {
		d.rowsSinceHeading = 0
	}
	d.rowsSinceHeading++

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			if err := writeCSVRow(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTable writes a complete table of already-computed rows to w, aligned
// for a Displayer or as csv for a Logger. It is a convenience for reporting
// code that tabulates results rather than tracing iterations.
func WriteTable(w Writer, headings []string, rows [][]string) error {
	switch w.T {
	default:
		panic("write: unknown writer type")
	case Logger:
		if err := writeCSVRow(w, headings); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writeCSVRow(w, row); err != nil {
				return err
			}
		}
	case Displayer:
		maxLengths := make([]int, len(headings))
		for i, h := range headings {
			maxLengths[i] = len(h)
		}
		for _, row := range rows {
			for i, v := range row {
				if len(v) > maxLengths[i] {
					maxLengths[i] = len(v)
				}
			}
		}
		if err := writeAlignedStrings(w, headings, maxLengths); err != nil {
			return err
		}
		for _, row := range rows {
			if err := writeAlignedStrings(w, row, maxLengths); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func writeCSVRow(w io.Writer, values []string) error {
	for i, value := range values {
		if i != 0 {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
		if _, err := w.Write([]byte(value)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
