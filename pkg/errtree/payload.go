package errtree

import (
	"sort"
	"strings"
)

// FromPayload builds an error tree from a server error payload keyed by
// field path. Keys may use dotted paths ("owner.email"), bracket indices
// ("tags[0]") or JSON pointers ("/body/owner/email", "$.owner.email").
// Leading request wrappers (body, payload, data, ...) are dropped. Keys that
// address the form as a whole are returned as form-level messages. When a
// path carries several messages the first non-blank one is kept.
func FromPayload(payload map[string][]string) (Node, []string) {
	tree := Node(Empty())
	if len(payload) == 0 {
		return tree, nil
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var formLevel []string
	for _, raw := range keys {
		messages := cleanMessages(payload[raw])
		if len(messages) == 0 {
			continue
		}
		if isFormLevelKey(raw) {
			formLevel = append(formLevel, messages...)
			continue
		}
		segments := dropWrapperSegments(parsePathSegments(raw))
		if len(segments) == 0 {
			formLevel = append(formLevel, messages...)
			continue
		}
		path := strings.Join(segments, ".")
		if _, exists := Resolve(tree, path); exists {
			continue
		}
		tree = Set(tree, path, messages[0])
	}
	return tree, cleanMessages(formLevel)
}

func cleanMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for _, prefix := range []string{"#/", "$/", "$."} {
		clean = strings.TrimPrefix(clean, prefix)
	}
	clean = strings.TrimLeft(clean, "#/.$")

	clean = strings.NewReplacer("[", ".", "]", "", "//", "/").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	for len(segments) > 1 {
		if _, ok := wrapperSegments[strings.ToLower(segments[0])]; !ok {
			break
		}
		segments = segments[1:]
	}
	return segments
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
