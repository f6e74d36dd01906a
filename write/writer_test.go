package write

import (
	"bytes"
	"strings"
	"testing"
)

type constAdder struct {
	iter int
}

func (c *constAdder) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: c.iter})
	v = append(v, &Value{Heading: "Val", Value: 0.5})
	return v
}

func TestDisplayTrace(t *testing.T) {
	var display, csv bytes.Buffer

	adder := &constAdder{}
	d := NewDisplay()
	d.AddDataAdder(adder)
	err := d.Init(&WriteSettings{DisplayWriters: []Writer{
		{Writer: &display, T: Displayer},
		{Writer: &csv, T: Logger},
	}})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		adder.iter = i + 1
		if err := d.Iterate(); err != nil {
			t.Fatal(err)
		}
	}

	if !strings.Contains(display.String(), "Iter") {
		t.Errorf("display output missing headings:\n%s", display.String())
	}
	lines := strings.Split(strings.TrimSpace(csv.String()), "\n")
	if lines[0] != "Iter,Val" {
		t.Errorf("csv header = %q", lines[0])
	}
	if len(lines) != 4 {
		t.Errorf("csv has %d lines, want header plus 3 rows", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,") {
		t.Errorf("first csv row = %q", lines[1])
	}
}

func TestDisplayNoWriters(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&constAdder{})
	if err := d.Init(DefaultWriteSettings()); err != nil {
		t.Fatal(err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatal(err)
	}
}

func TestWriteTableCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(
		Writer{Writer: &buf, T: Logger},
		[]string{"k", "x"},
		[][]string{{"1", "5.24"}, {"2", "25.88"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	want := "k,x\n1,5.24\n2,25.88\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteTableAligned(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(
		Writer{Writer: &buf, T: Displayer},
		[]string{"k", "x_ext"},
		[][]string{{"1", "5.24"}, {"7", "420.9687"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	// Columns are padded to the widest cell.
	if !strings.HasPrefix(lines[1], "1\t") && !strings.HasPrefix(lines[1], "1 ") {
		t.Errorf("row not aligned: %q", lines[1])
	}
	if !strings.Contains(lines[2], "420.9687") {
		t.Errorf("missing cell in %q", lines[2])
	}
}
