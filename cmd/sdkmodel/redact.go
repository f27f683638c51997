package main

import (
	"github.com/reoring/sdkmodel"
)

// redactPayload replaces the members of doc that obj marks sensitive with
// sdkmodel.Redacted, descending into nested structures, lists, and maps. doc
// must be the payload document encoded from obj.
func redactPayload(obj sdkmodel.Object, doc map[string]any) {
	for _, d := range obj.Schema().Fields() {
		if d.Location().Location != sdkmodel.LocationPayload {
			continue
		}
		name := d.Location().Name
		if name == "" {
			name = d.MemberName()
		}
		raw, ok := doc[name]
		if !ok {
			continue
		}
		if d.Sensitive() {
			doc[name] = sdkmodel.Redacted
			continue
		}
		v, err := d.Get(obj)
		if err != nil {
			continue
		}
		redactValue(v, raw)
	}
}

func redactValue(v, raw any) {
	switch x := v.(type) {
	case sdkmodel.Object:
		if m, ok := raw.(map[string]any); ok && !x.Equal(nil) {
			redactPayload(x, m)
		}
	case sdkmodel.AnyList:
		items, ok := raw.([]any)
		if !ok || len(items) != x.Len() {
			return
		}
		for i := range x.Len() {
			redactValue(x.AnyAt(i), items[i])
		}
	case sdkmodel.AnyMap:
		entries, ok := raw.(map[string]any)
		if !ok {
			return
		}
		for _, k := range x.Keys() {
			el, _ := x.AnyGet(k)
			redactValue(el, entries[k])
		}
	}
}
