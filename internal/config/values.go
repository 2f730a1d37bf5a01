package config

// Values wraps a configuration mapping and is the object handed to every
// invoked task. It exposes read, require, default-filling and dump
// operations over the underlying map.
type Values struct {
	opts map[string]any
}

// NewValues wraps the given mapping. A nil mapping behaves as empty.
func NewValues(opts map[string]any) *Values {
	if opts == nil {
		opts = map[string]any{}
	}
	return &Values{opts: opts}
}

// Get returns the value stored under key, or the optional fallback when
// the key is absent.
func (v *Values) Get(key string, fallback ...any) any {
	if val, ok := v.opts[key]; ok {
		return val
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return nil
}

// All returns the full mapping as-is. It is a read view, not a defensive
// copy: callers must not assume isolation from subsequent mutation.
func (v *Values) All() map[string]any {
	return v.opts
}

// Require verifies that every named key is present and returns an
// *UndefinedOptionError listing the missing ones otherwise.
func (v *Values) Require(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if _, ok := v.opts[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &UndefinedOptionError{Keys: missing}
	}
	return nil
}

// Defaults fills every key absent from the current mapping with the value
// from defaults. Present keys are never overwritten. It returns the
// accessor for chaining.
func (v *Values) Defaults(defaults map[string]any) *Values {
	merged := make(map[string]any, len(defaults)+len(v.opts))
	for key, val := range defaults {
		merged[key] = val
	}
	for key, val := range v.opts {
		merged[key] = val
	}
	v.opts = merged
	return v
}
