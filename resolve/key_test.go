package resolve

import (
	"strings"
	"testing"

	"github.com/jonwraymond/styleops/theme"
)

func TestBuildBaseKey_DeterministicForMaps(t *testing.T) {
	props1 := map[string]any{"b": 2, "a": 1, "nested": map[string]any{"y": 2, "x": 1}}
	props2 := map[string]any{"nested": map[string]any{"x": 1, "y": 2}, "a": 1, "b": 2}

	key1, err := BuildBaseKey([]string{"Button"}, props1, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}
	key2, err := BuildBaseKey([]string{"Button"}, props2, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}

	if key1 != key2 {
		t.Errorf("keys should be equal for same content:\n  key1=%s\n  key2=%s", key1, key2)
	}
}

func TestBuildBaseKey_InputsAffectKey(t *testing.T) {
	key := func(names []string, props map[string]any, vars theme.ComponentVariables, includeVars, rtl, anim bool) string {
		t.Helper()
		k, err := BuildBaseKey(names, props, vars, includeVars, rtl, anim)
		if err != nil {
			t.Fatalf("BuildBaseKey() error = %v", err)
		}
		return k
	}

	base := key([]string{"Button"}, nil, nil, false, false, false)

	tests := []struct {
		name  string
		other string
	}{
		{"display name", key([]string{"Label"}, nil, nil, false, false, false)},
		{"props", key([]string{"Button"}, map[string]any{"primary": true}, nil, false, false, false)},
		{"rtl flag", key([]string{"Button"}, nil, nil, false, true, false)},
		{"animation flag", key([]string{"Button"}, nil, nil, false, false, true)},
		{"variables when included", key([]string{"Button"}, nil, theme.ComponentVariables{"compact": true}, true, false, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.other == base {
				t.Errorf("key did not change with %s: %q", tt.name, base)
			}
		})
	}
}

func TestBuildBaseKey_ReservedPropsExcluded(t *testing.T) {
	plain, err := BuildBaseKey([]string{"Button"}, map[string]any{"primary": true}, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}

	withReserved, err := BuildBaseKey([]string{"Button"}, map[string]any{
		"primary":   true,
		"className": "custom",
		"styles":    map[string]any{"color": "red"},
		"design":    map[string]any{"top": 0},
		"variables": map[string]any{"compact": true},
	}, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}

	if plain != withReserved {
		t.Errorf("reserved props leaked into the key:\n  plain=%s\n  withReserved=%s", plain, withReserved)
	}
}

func TestBuildBaseKey_VariablesExcludedByDefault(t *testing.T) {
	without, err := BuildBaseKey([]string{"Button"}, nil, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}
	with, err := BuildBaseKey([]string{"Button"}, nil, theme.ComponentVariables{"compact": true}, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}
	if without != with {
		t.Errorf("variables serialized without the optimization:\n  %s\n  %s", without, with)
	}
}

func TestBuildBaseKey_UnkeyableProps(t *testing.T) {
	_, err := BuildBaseKey([]string{"Button"}, map[string]any{"onClick": func() {}}, nil, false, false, false)
	if err == nil {
		t.Error("BuildBaseKey() = nil error for unserializable prop, want error")
	}
}

func TestSlotKey(t *testing.T) {
	base, err := BuildBaseKey([]string{"Button"}, nil, nil, false, false, false)
	if err != nil {
		t.Fatalf("BuildBaseKey() error = %v", err)
	}

	root := SlotKey(base, "root")
	icon := SlotKey(base, "icon")
	if root == icon {
		t.Errorf("slot keys collide: %q", root)
	}
	if !strings.HasPrefix(root, base) {
		t.Errorf("slot key %q does not extend base %q", root, base)
	}
}
