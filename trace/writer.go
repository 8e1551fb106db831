package trace

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mastercactapus/ncdecode/coord"
)

// Header is the first record written by a Writer.
var Header = []string{"seq", "x", "y", "z"}

// Writer writes rows as delimited text. Unknown axes are left empty.
type Writer struct {
	// Precision is passed to strconv.FormatFloat; -1 means the shortest
	// exact representation.
	Precision int

	w      *csv.Writer
	header bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{Precision: -1, w: csv.NewWriter(w)}
}

// SetComma changes the field delimiter.
func (w *Writer) SetComma(r rune) { w.w.Comma = r }

func (w *Writer) record(r Row) []string {
	rec := make([]string, 0, len(Header))
	rec = append(rec, strconv.Itoa(r.Seq))
	for _, a := range coord.Axes {
		v, ok := r.Get(a)
		if !ok {
			rec = append(rec, "")
			continue
		}
		rec = append(rec, strconv.FormatFloat(v, 'f', w.Precision, 64))
	}
	return rec
}

// Write writes r, preceded by the header on first use.
func (w *Writer) Write(r Row) error {
	err := w.writeHeader()
	if err != nil {
		return err
	}
	return w.w.Write(w.record(r))
}

func (w *Writer) writeHeader() error {
	if w.header {
		return nil
	}
	w.header = true
	return w.w.Write(Header)
}

// WriteAll writes all rows and flushes. The header is written even if
// rows is empty.
func (w *Writer) WriteAll(rows []Row) error {
	err := w.writeHeader()
	if err != nil {
		return err
	}
	for _, r := range rows {
		err = w.w.Write(w.record(r))
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
