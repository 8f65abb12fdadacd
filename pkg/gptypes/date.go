package gptypes

import (
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

const (
	// DefaultDateFormat is the strftime format assumed when none is given.
	DefaultDateFormat = "%Y-%m-%d"
	// fallbackDateFormat is the service's default date-with-timezone
	// rendering, tried when the supplied format does not match.
	fallbackDateFormat = "%a %b %d %H:%M:%S %Z %Y"
	// directiveAlphabet lists every strftime directive letter the wire
	// format may carry without its percent sign.
	directiveAlphabet = "aAbBcdHIjmMpSUwWxXyYZ"
)

// GPDate is a geoprocessing date parameter. Format uses percent-escaped
// strftime directives in process; the wire form strips the percent signs.
type GPDate struct {
	Time   time.Time
	Format string
}

// NewDate wraps an already-built time value. An empty format means the
// default %Y-%m-%d.
func NewDate(t time.Time, format string) GPDate {
	if format == "" {
		format = DefaultDateFormat
	}
	return GPDate{Time: t, Format: format}
}

// ParseDate parses a date string. The supplied format is tried first;
// on failure the fallback service rendering is tried before giving up
// with ErrUnparseableDate.
func ParseDate(value, format string) (GPDate, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	if t, err := timefmt.Parse(value, format); err == nil {
		return GPDate{Time: t, Format: format}, nil
	}
	if t, err := timefmt.Parse(value, fallbackDateFormat); err == nil {
		return GPDate{Time: t, Format: format}, nil
	}
	return GPDate{}, fmt.Errorf("%w: %q", ErrUnparseableDate, value)
}

// JSONStruct returns {"date": formatted, "format": format-without-percents}.
func (d GPDate) JSONStruct() (interface{}, error) {
	return map[string]interface{}{
		"date":   timefmt.Format(d.Time, d.Format),
		"format": strings.ReplaceAll(d.Format, "%", ""),
	}, nil
}

func (d GPDate) String() string { return jsonString(d) }

// DateFromJSON decodes a date parameter. An object form carries the date
// string plus a format whose directive letters lack percent signs; the
// percent signs are re-inserted before re-parsing. A bare string is
// parsed with the fallback service rendering.
func DateFromJSON(value interface{}) (GPDate, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		dateString, ok := v["date"].(string)
		if !ok {
			return GPDate{}, fmt.Errorf("gptypes: date object missing date string")
		}
		formatString, ok := v["format"].(string)
		if !ok {
			return GPDate{}, fmt.Errorf("gptypes: date object missing format string")
		}
		return ParseDate(dateString, escapeFormat(formatString))
	case string:
		return ParseDate(v, fallbackDateFormat)
	default:
		return GPDate{}, fmt.Errorf("gptypes: cannot convert %T to date", value)
	}
}

// escapeFormat re-inserts a percent sign before every occurrence of each
// directive letter, turning wire formats like Y-m-d back into strftime
// %Y-%m-%d strings.
func escapeFormat(format string) string {
	for _, c := range directiveAlphabet {
		format = strings.ReplaceAll(format, string(c), "%"+string(c))
	}
	return format
}
