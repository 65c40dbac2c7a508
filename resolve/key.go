package resolve

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonwraymond/styleops/theme"
)

// reservedProps are style-affecting props that never feed the cache key:
// they are handled through dedicated request fields, not serialized state.
var reservedProps = map[string]bool{
	"className": true,
	"styles":    true,
	"design":    true,
	"variables": true,
}

// BuildBaseKey derives the base cache key for one resolution call from the
// joined display names, the canonical serialization of the non-style props,
// the variables (only when includeVariables is set), and the direction and
// animation flags. The per-slot key is SlotKey(base, slot).
//
// Serialization sorts map keys recursively, so two value-equal maps always
// produce the same key. Props that cannot be serialized (functions,
// channels) make the call unkeyable; callers fall back to per-call
// memoization without caching.
func BuildBaseKey(
	displayNames []string,
	props map[string]any,
	variables theme.ComponentVariables,
	includeVariables bool,
	rtl, disableAnimations bool,
) (string, error) {
	filtered := make(map[string]any, len(props))
	for k, v := range props {
		if reservedProps[k] {
			continue
		}
		filtered[k] = v
	}

	propsJSON, err := canonicalize(filtered)
	if err != nil {
		return "", fmt.Errorf("resolve: failed to canonicalize props: %w", err)
	}

	varsJSON := []byte("")
	if includeVariables {
		varsJSON, err = canonicalize(map[string]any(variables))
		if err != nil {
			return "", fmt.Errorf("resolve: failed to canonicalize variables: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(displayNames, ":"))
	b.WriteByte('|')
	b.Write(propsJSON)
	b.WriteByte('|')
	b.Write(varsJSON)
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(rtl))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(disableAnimations))
	return b.String(), nil
}

// SlotKey appends the slot name to a base key.
func SlotKey(base, slot string) string {
	return base + "|" + slot
}

// canonicalize produces a deterministic JSON representation of the input.
// Maps are sorted by key to ensure consistent ordering.
func canonicalize(v any) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	switch val := v.(type) {
	case map[string]any:
		return canonicalizeMap(val)
	case theme.StyleObject:
		return canonicalizeMap(val)
	case theme.ComponentVariables:
		return canonicalizeMap(val)
	case []any:
		return canonicalizeSlice(val)
	default:
		return json.Marshal(v)
	}
}

func canonicalizeMap(m map[string]any) ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := []byte("{")
	for i, k := range keys {
		if i > 0 {
			result = append(result, ',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		result = append(result, keyBytes...)
		result = append(result, ':')

		valBytes, err := canonicalize(m[k])
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, '}')

	return result, nil
}

func canonicalizeSlice(s []any) ([]byte, error) {
	result := []byte("[")
	for i, v := range s {
		if i > 0 {
			result = append(result, ',')
		}

		valBytes, err := canonicalize(v)
		if err != nil {
			return nil, err
		}
		result = append(result, valBytes...)
	}
	result = append(result, ']')

	return result, nil
}
