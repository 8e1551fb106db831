package trace

import "github.com/mastercactapus/ncdecode/coord"

// Summary describes the extent of a trace.
type Summary struct {
	Rows int `json:"rows" yaml:"rows"`

	// Complete counts rows where every axis is known. Min, Max and
	// Travel only consider these rows.
	Complete int `json:"complete" yaml:"complete"`

	Min coord.Point `json:"min" yaml:"min"`
	Max coord.Point `json:"max" yaml:"max"`

	// Travel is the straight-line distance between consecutive complete rows.
	Travel float64 `json:"travel" yaml:"travel"`
}

func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}

	var last coord.Point
	for _, r := range rows {
		p, ok := r.Point()
		if !ok {
			continue
		}
		if s.Complete == 0 {
			s.Min, s.Max = p, p
		} else {
			s.Min = s.Min.Min(p)
			s.Max = s.Max.Max(p)
			s.Travel += p.Sub(last).Length()
		}
		last = p
		s.Complete++
	}

	return s
}
