package dal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row values arrive as whatever the driver produced: int64 and string
// from mysql, occasionally []byte, time.Time when ParseTime is on. The
// coercions below absorb those differences so serializers stay flat.

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case []byte:
		parsed, err := strconv.ParseFloat(string(n), 64)
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		return parsed, err == nil
	}
	return 0, false
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case int64:
		return b != 0, true
	case int:
		return b != 0, true
	case float64:
		return b != 0, true
	case []byte:
		return parseBoolString(string(b))
	case string:
		return parseBoolString(b)
	}
	return false, false
}

func parseBoolString(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "1", "true", "t":
		return true, true
	case "0", "false", "f":
		return false, true
	}
	return false, false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, true
		}
		return *t, true
	case []byte:
		return parseTimeString(string(t))
	case string:
		return parseTimeString(t)
	}
	return time.Time{}, false
}

func parseTimeString(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// rowReader pulls typed values out of a DTO and records the first
// mismatch, sql.Rows.Scan style. Missing columns read as zero values.
type rowReader struct {
	row DTO
	err error
}

func readRow(row DTO) *rowReader { return &rowReader{row: row} }

func (r *rowReader) Err() error { return r.err }

func (r *rowReader) fail(column string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("column %s: unexpected value %v (%T)", column, v, v)
	}
}

func (r *rowReader) Int64(column string) int64 {
	v, ok := r.row[column]
	if !ok || v == nil {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		r.fail(column, v)
	}
	return n
}

func (r *rowReader) Float64(column string) float64 {
	v, ok := r.row[column]
	if !ok || v == nil {
		return 0
	}
	n, ok := toFloat64(v)
	if !ok {
		r.fail(column, v)
	}
	return n
}

func (r *rowReader) String(column string) string {
	v, ok := r.row[column]
	if !ok || v == nil {
		return ""
	}
	s, ok := toString(v)
	if !ok {
		r.fail(column, v)
	}
	return s
}

func (r *rowReader) Bool(column string) bool {
	v, ok := r.row[column]
	if !ok || v == nil {
		return false
	}
	b, ok := toBool(v)
	if !ok {
		r.fail(column, v)
	}
	return b
}

func (r *rowReader) Time(column string) time.Time {
	v, ok := r.row[column]
	if !ok || v == nil {
		return time.Time{}
	}
	t, ok := toTime(v)
	if !ok {
		r.fail(column, v)
	}
	return t
}

func (r *rowReader) TimePtr(column string) *time.Time {
	v, ok := r.row[column]
	if !ok || v == nil {
		return nil
	}
	t, ok := toTime(v)
	if !ok {
		r.fail(column, v)
		return nil
	}
	return &t
}
