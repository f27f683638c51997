package sdkmodel

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Redacted replaces the value of sensitive fields in String().
const Redacted = "*** Sensitive Data Redacted ***"

// toString renders TypeName(Field=value, ...).
type toString struct {
	b     strings.Builder
	first bool
}

func newToString(typeName string) *toString {
	t := &toString{first: true}
	t.b.WriteString(typeName)
	t.b.WriteByte('(')
	return t
}

func (t *toString) add(name, value string) {
	if !t.first {
		t.b.WriteString(", ")
	}
	t.first = false
	t.b.WriteString(name)
	t.b.WriteByte('=')
	t.b.WriteString(value)
}

func (t *toString) build() string {
	t.b.WriteByte(')')
	return t.b.String()
}

// formatValue renders a normalized field value.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case time.Time:
		return FormatInstant(x)
	case []byte:
		return "0x" + hex.EncodeToString(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// FormatInstant renders t as RFC 3339 in UTC with trailing zeros trimmed.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
