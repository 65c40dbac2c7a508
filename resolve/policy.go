package resolve

import (
	"github.com/jonwraymond/styleops/config"
	"github.com/jonwraymond/styleops/theme"
)

// cacheEligible decides whether caching may be used for one resolution call:
// styles caching must be on, the call must carry no inline style overrides,
// and any supplied variables must be coverable by the boolean-variable
// optimization.
func cacheEligible(flags config.PerformanceFlags, req *Request) bool {
	return flags.EnableStylesCaching &&
		noInlineOverrides(req) &&
		noVariableOverrides(flags, req.Variables)
}

func noInlineOverrides(req *Request) bool {
	return req.InlineStyles == nil && req.InlineStyleFunc == nil
}

// noVariableOverrides is true when variables are absent, or when the
// boolean-variable optimization is on and every supplied value is boolean or
// nil. A single non-boolean value degrades the whole call to uncached; that
// is expected traffic, not an error.
func noVariableOverrides(flags config.PerformanceFlags, vars theme.ComponentVariables) bool {
	if len(vars) == 0 {
		return true
	}
	return flags.EnableBooleanVariablesCaching && booleanOnly(vars)
}

func booleanOnly(vars theme.ComponentVariables) bool {
	for _, v := range vars {
		switch v.(type) {
		case bool, nil:
		default:
			return false
		}
	}
	return true
}
