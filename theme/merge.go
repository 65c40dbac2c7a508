package theme

// MergeStyleSets combines style sets in order, later sets winning per slot.
// When several sets define the same slot, the merged slot's style function
// evaluates each definition in order and deep-merges the resulting style
// objects, later declarations overriding earlier ones. Nil sets and nil
// slot functions are skipped. Given nothing applicable, the result is
// DefaultStyleSet.
func MergeStyleSets(sets ...StyleSet) StyleSet {
	funcs := make(map[string][]StyleFunc)
	for _, set := range sets {
		for slot, fn := range set {
			if fn == nil {
				continue
			}
			funcs[slot] = append(funcs[slot], fn)
		}
	}

	if len(funcs) == 0 {
		return DefaultStyleSet()
	}

	merged := make(StyleSet, len(funcs))
	for slot, fns := range funcs {
		if len(fns) == 1 {
			merged[slot] = fns[0]
			continue
		}
		merged[slot] = composeStyleFuncs(fns)
	}
	return merged
}

func composeStyleFuncs(fns []StyleFunc) StyleFunc {
	return func(p StyleParam) StyleObject {
		out := StyleObject{}
		for _, fn := range fns {
			out = MergeStyleObjects(out, fn(p))
		}
		return out
	}
}

// MergeStyleObjects deep-merges b into a copy of a. Nested maps merge
// recursively; any other value in b replaces the value in a. Neither input
// is mutated.
func MergeStyleObjects(a, b StyleObject) StyleObject {
	out := make(StyleObject, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		prev, ok := out[k]
		if !ok {
			out[k] = v
			continue
		}
		pm, pok := asStyleObject(prev)
		vm, vok := asStyleObject(v)
		if pok && vok {
			out[k] = MergeStyleObjects(pm, vm)
		} else {
			out[k] = v
		}
	}
	return out
}

func asStyleObject(v any) (StyleObject, bool) {
	switch m := v.(type) {
	case StyleObject:
		return m, true
	case map[string]any:
		return StyleObject(m), true
	default:
		return nil, false
	}
}
