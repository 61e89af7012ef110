package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// Date is a day-precision value rendered as YYYY-MM-DD.
type Date time.Time

// DateTime is a minute-precision value rendered as "YYYY-MM-DD HH:MM".
type DateTime time.Time

// Time returns the underlying time.
func (d Date) Time() time.Time { return time.Time(d) }

// Time returns the underlying time.
func (d DateTime) Time() time.Time { return time.Time(d) }

// FormatValue renders a cell value the way the output files expect it:
// nil becomes an empty cell, floats use the shortest round-trip
// representation, and booleans render as True/False.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case Date:
		return x.Time().Format("2006-01-02")
	case DateTime:
		return x.Time().Format("2006-01-02 15:04")
	default:
		panic(fmt.Sprintf("dataset: unsupported cell type %T", v))
	}
}
