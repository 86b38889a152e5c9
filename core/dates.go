package core

import (
	"regexp"
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// DateLayout is the layout tushare uses for every date parameter and
// date column: YYYYMMDD.
const DateLayout = "20060102"

// China Standard Time. Trading dates are calendar dates on the Shanghai
// and Shenzhen exchanges.
var cst = time.FixedZone("CST", 8*60*60)

var tradeDatePattern = regexp.MustCompile(`^\d{4}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])$`)

// IsDateString checks if a string looks like a tushare date (YYYYMMDD).
func IsDateString(value string) bool {
	return tradeDatePattern.MatchString(value)
}

// ParseDate parses a tushare date string to time.Time in China Standard Time.
// ISO 8601 dates are accepted too, so user input like "2024-01-15" works.
func ParseDate(value string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, cst); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &time.ParseError{Value: value, Message: ": not a valid tushare date"}
}

// FormatDate formats t as a tushare date in China Standard Time.
func FormatDate(t time.Time) string {
	return t.In(cst).Format(DateLayout)
}

// FormatTypesDate formats an OpenAPI date as a tushare date. The calendar
// date is kept as is, with no time zone shift.
func FormatTypesDate(d types.Date) string {
	return d.Time.Format(DateLayout)
}

// NormalizeDate converts a user supplied date ("2024-01-15" or "20240115")
// to tushare's format. Values that are not dates are returned unchanged.
func NormalizeDate(value string) string {
	if IsDateString(value) {
		return value
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format(DateLayout)
	}
	return value
}
