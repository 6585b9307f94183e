// Package classes composes CSS class lists for the rendered components.
package classes

import "strings"

// conflictGroups lists utility prefixes where a later class replaces an
// earlier one ("h-9" followed by "h-8" keeps "h-8").
var conflictGroups = []string{
	"h-", "w-", "min-w-", "size-", "px-", "py-", "p-", "gap-", "rounded-",
}

// Merge joins class lists, dropping empty entries and duplicates. When two
// classes belong to the same utility group under the same variant prefix
// ("hover:", "md:") the later one wins and takes the earlier one's place.
func Merge(lists ...string) string {
	var tokens []string
	position := make(map[string]int)

	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			key := groupKey(token)
			if idx, exists := position[key]; exists {
				tokens[idx] = token
				continue
			}
			position[key] = len(tokens)
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// When returns class if cond holds and "" otherwise.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

func groupKey(token string) string {
	variant, utility := splitVariant(token)
	for _, prefix := range conflictGroups {
		if strings.HasPrefix(utility, prefix) && !isLongerPrefix(utility, prefix) {
			return variant + prefix
		}
	}
	return token
}

// isLongerPrefix avoids treating "min-w-0" as part of the "w-" group or
// "px-3" as part of "p-".
func isLongerPrefix(utility, prefix string) bool {
	for _, other := range conflictGroups {
		if len(other) > len(prefix) && strings.HasPrefix(utility, other) {
			return true
		}
	}
	return false
}

func splitVariant(token string) (string, string) {
	idx := strings.LastIndex(token, ":")
	if idx < 0 {
		return "", token
	}
	return token[:idx+1], token[idx+1:]
}
