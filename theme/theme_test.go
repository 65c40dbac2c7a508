package theme

import "testing"

func TestStylesFor(t *testing.T) {
	set := StyleSet{RootSlot: EmptyStyle}
	th := New(map[string]StyleSet{"Button": set})

	if got := th.StylesFor("Button"); got == nil {
		t.Error("StylesFor(Button) = nil, want declared set")
	}
	if got := th.StylesFor("Label"); got != nil {
		t.Errorf("StylesFor(Label) = %v, want nil", got)
	}

	empty := New(nil)
	if got := empty.StylesFor("Button"); got != nil {
		t.Errorf("StylesFor on styleless theme = %v, want nil", got)
	}
}

func TestThemeCaches_LazyAndStable(t *testing.T) {
	th := New(nil)

	styles := th.StyleCache()
	if styles == nil {
		t.Fatal("StyleCache() = nil")
	}
	if again := th.StyleCache(); again != styles {
		t.Error("StyleCache() allocated a second store for the same theme")
	}

	classes := th.ClassCache()
	if again := th.ClassCache(); again != classes {
		t.Error("ClassCache() allocated a second store for the same theme")
	}
}

func TestThemeCaches_PerTheme(t *testing.T) {
	a := New(nil)
	b := New(nil)

	a.StyleCache().Set("key", StyleObject{"color": "red"})

	if _, ok := b.StyleCache().Get("key"); ok {
		t.Error("entry cached under theme A visible through theme B")
	}
}

func TestDefaultStyleSet(t *testing.T) {
	set := DefaultStyleSet()

	fn, ok := set[RootSlot]
	if !ok {
		t.Fatal("default style set has no root slot")
	}
	if len(set) != 1 {
		t.Errorf("default style set has %d slots, want 1", len(set))
	}
	if got := fn(StyleParam{}); len(got) != 0 {
		t.Errorf("default root style = %v, want empty", got)
	}
}
