package protocol

import (
	"net/url"
	"strings"

	"github.com/reoring/sdkmodel"
)

// ExpandPath substitutes {name} and greedy {name+} labels in template.
// Plain labels are escaped as one path segment; greedy labels keep '/'.
func ExpandPath(template string, params map[string]string) (string, error) {
	var (
		b   strings.Builder
		iss sdkmodel.Issues
	)
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			iss = sdkmodel.AppendIssues(iss, sdkmodel.NewIssue("/", sdkmodel.CodeInvalidFormat, template, nil))
			break
		}
		b.WriteString(rest[:open])
		label := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		greedy := strings.HasSuffix(label, "+")
		label = strings.TrimSuffix(label, "+")
		v, ok := params[label]
		if !ok {
			iss = sdkmodel.AppendIssues(iss, sdkmodel.NewIssue("/"+label, sdkmodel.CodeMissingPathParam, template, nil))
			continue
		}
		if greedy {
			segs := strings.Split(v, "/")
			for i, s := range segs {
				segs[i] = url.PathEscape(s)
			}
			b.WriteString(strings.Join(segs, "/"))
		} else {
			b.WriteString(url.PathEscape(v))
		}
	}
	if len(iss) > 0 {
		return "", iss
	}
	return b.String(), nil
}
