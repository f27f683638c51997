package protocol

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/reoring/sdkmodel"
)

type frame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	// key is the member being read in an object; index the next element of
	// an array.
	key   string
	index int
}

// duplicateKeys walks data token by token and reports every object member
// that repeats an earlier key of the same object. A map[string]any decode
// would silently keep the last one.
func duplicateKeys(data []byte) sdkmodel.Issues {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		iss   sdkmodel.Issues
		stack []*frame
	)
	// value marks the end of one value inside the current container.
	value := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.object {
			top.expectingKey = true
		} else {
			top.index++
		}
	}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return iss
		}
		if err != nil {
			// Syntax errors are reported by the document decoder.
			return iss
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &frame{object: true, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, &frame{})
			default:
				stack = stack[:len(stack)-1]
				value()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].expectingKey {
				top := stack[n-1]
				top.key = v
				top.expectingKey = false
				if _, dup := top.keys[v]; dup {
					iss = sdkmodel.AppendIssues(iss, sdkmodel.NewIssue(pointer(stack), sdkmodel.CodeDuplicateField, "key '"+v+"' duplicated", nil))
				}
				top.keys[v] = struct{}{}
				continue
			}
			value()
		default:
			value()
		}
	}
}

// pointer renders the position of the innermost open member as a JSON
// pointer.
func pointer(stack []*frame) string {
	var b strings.Builder
	for _, f := range stack {
		b.WriteByte('/')
		if f.object {
			b.WriteString(f.key)
		} else {
			b.WriteString(strconv.Itoa(f.index))
		}
	}
	return b.String()
}
