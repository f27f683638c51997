package sdkmodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/sdkmodel/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch     = "type_mismatch"
	CodeDuplicateField   = "duplicate_field"
	CodeInvalidTrait     = "invalid_trait"
	CodeMissingLocation  = "missing_location"
	CodeMissingPathParam = "missing_path_param"
	CodeInvalidFormat    = "invalid_format"
	CodeParseError       = "parse_error"
	CodeUnknownShape     = "unknown_shape"
)

// Issue represents a single structured failure.
type Issue struct {
	Path    string // JSON Pointer of the offending member (for example: /repositories/1/branchName).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
}

// NewIssue builds an Issue with the localized message for code.
func NewIssue(path, code, hint string, cause error) Issue {
	return Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint, Cause: cause}
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_trait at /expiresTime
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// RebaseIssues prefixes every issue path with base. Issues rooted at "/" take
// base as their path.
func RebaseIssues(base string, iss Issues) Issues {
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// TypeMismatchError reports a value that cannot be used as the requested type:
// a lookup cast to the wrong Go type, or a setter fed a value of the wrong type.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("sdkmodel: field %q holds %s, not %s", e.Field, e.Got, e.Want)
}

// Issues converts the mismatch into the structured error model.
func (e *TypeMismatchError) Issues() Issues {
	return Issues{NewIssue("/"+e.Field, CodeTypeMismatch, "want "+e.Want+", got "+e.Got, e)}
}

func mismatch(field string, want string, got any) *TypeMismatchError {
	return &TypeMismatchError{Field: field, Want: want, Got: fmt.Sprintf("%T", got)}
}
