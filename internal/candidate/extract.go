package candidate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numericJunk = regexp.MustCompile(`[^0-9.]`)

// CoerceNumber converts loosely-typed numeric input ("5 years", "12,00,000",
// 7.5) to a float. Everything except digits and dots is stripped before
// parsing; input that still fails to parse yields nil.
func CoerceNumber(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case int:
		f := float64(t)
		return &f
	case string:
		cleaned := numericJunk.ReplaceAllString(t, "")
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// truthy interprets the loosely-typed boolean flags found in ATS exports.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "false" && s != "0" && s != "no"
	default:
		return false
	}
}

// objectNameKeys is the preference order for reading a display string out of
// a list entry that is an object.
var objectNameKeys = []string{"name", "title", "skill", "label"}

func objectString(m map[string]any) string {
	for _, k := range objectNameKeys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func isListDelimiter(r rune) bool {
	return r == ',' || r == ';' || r == '\n'
}

// flattenStrings converts a polymorphic list value to a flat []string.
// Accepted shapes: a single delimiter-separated string, a JSON array of
// strings or objects, or a []string. Entries that are neither strings nor
// objects are dropped. Duplicates are kept; later stages compare by
// containment, so they are harmless.
func flattenStrings(v any) []string {
	switch t := v.(type) {
	case string:
		var out []string
		for _, part := range strings.FieldsFunc(t, isListDelimiter) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		var out []string
		for _, entry := range t {
			switch e := entry.(type) {
			case string:
				if s := strings.TrimSpace(e); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				if s := objectString(e); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	default:
		return nil
	}
}

// flattenAll flattens every contributing source value of a list field.
func flattenAll(values []any) []string {
	var out []string
	for _, v := range values {
		out = append(out, flattenStrings(v)...)
	}
	return out
}

// Certification is one parsed certification entry.
type Certification struct {
	Name   string
	Expiry *time.Time
}

// Active reports whether the certification has no expiry or expires strictly
// after now. An expiry that failed to parse counts as absent.
func (c Certification) Active(now time.Time) bool {
	return c.Expiry == nil || c.Expiry.After(now)
}

var certExpiryKeys = []string{"expiry_date", "expires_at", "valid_until", "expiration_date"}

var certExpiryLayouts = []string{time.RFC3339, "2006-01-02", "2006/01/02", "2006-01"}

func parseCertExpiry(m map[string]any) *time.Time {
	for _, k := range certExpiryKeys {
		s, ok := m[k].(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		for _, layout := range certExpiryLayouts {
			if ts, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
				return &ts
			}
		}
	}
	return nil
}

// certifications converts the collected certification sources into entries.
// Strings become name-only certifications; objects contribute a name and an
// optional expiry.
func certifications(values []any) []Certification {
	var out []Certification
	add := func(entry any) {
		switch e := entry.(type) {
		case string:
			for _, name := range strings.FieldsFunc(e, isListDelimiter) {
				if name = strings.TrimSpace(name); name != "" {
					out = append(out, Certification{Name: name})
				}
			}
		case map[string]any:
			if name := objectString(e); name != "" {
				out = append(out, Certification{Name: name, Expiry: parseCertExpiry(e)})
			}
		}
	}
	for _, v := range values {
		if list, ok := v.([]any); ok {
			for _, entry := range list {
				add(entry)
			}
			continue
		}
		add(v)
	}
	return out
}
