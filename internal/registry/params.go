package registry

import (
	"math"
	"strings"
)

// Binder reads typed values out of a Params map, accumulating the first
// violation. Calculators read every input through a Binder, then check
// Err() once before computing:
//
//	b := registry.Bind(p)
//	age := b.Float("age", 40, 90)
//	sex := b.Enum("sex", "male", "female")
//	if err := b.Err(); err != nil {
//		return nil, err
//	}
//
// Accessors return zero values after the first violation; the retained
// *ValidationError names the offending parameter.
type Binder struct {
	p   Params
	err *ValidationError
}

func Bind(p Params) *Binder {
	if p == nil {
		p = Params{}
	}
	return &Binder{p: p}
}

// Err returns the first recorded violation, or nil.
func (b *Binder) Err() error {
	if b.err == nil {
		return nil
	}
	return b.err
}

func (b *Binder) fail(param, format string, args ...interface{}) {
	if b.err == nil {
		b.err = Invalidf(param, format, args...)
	}
}

// Failf records a calculator-specific violation, for checks that span
// multiple parameters (e.g. HDL exceeding total cholesterol).
func (b *Binder) Failf(param, format string, args ...interface{}) {
	b.fail(param, format, args...)
}

func (b *Binder) number(name string) (float64, bool) {
	raw, ok := b.p[name]
	if !ok || raw == nil {
		b.fail(name, "required parameter is missing")
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		b.fail(name, "must be a number")
		return 0, false
	}
}

// Float reads a required numeric parameter and checks its inclusive range.
func (b *Binder) Float(name string, min, max float64) float64 {
	if b.err != nil {
		return 0
	}
	v, ok := b.number(name)
	if !ok {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		b.fail(name, "must be a finite number")
		return 0
	}
	if v < min || v > max {
		b.fail(name, "must be between %g and %g", min, max)
		return 0
	}
	return v
}

// FloatOpt reads an optional numeric parameter; nil when absent.
func (b *Binder) FloatOpt(name string, min, max float64) *float64 {
	if b.err != nil {
		return nil
	}
	raw, ok := b.p[name]
	if !ok || raw == nil {
		return nil
	}
	v := b.Float(name, min, max)
	if b.err != nil {
		return nil
	}
	return &v
}

// Int reads a required integer parameter. JSON numbers decode as float64,
// so integral floats are accepted; fractional values are rejected.
func (b *Binder) Int(name string, min, max int) int {
	if b.err != nil {
		return 0
	}
	v, ok := b.number(name)
	if !ok {
		return 0
	}
	if v != math.Trunc(v) {
		b.fail(name, "must be a whole number")
		return 0
	}
	n := int(v)
	if n < min || n > max {
		b.fail(name, "must be between %d and %d", min, max)
		return 0
	}
	return n
}

// Bool reads a required boolean parameter.
func (b *Binder) Bool(name string) bool {
	if b.err != nil {
		return false
	}
	raw, ok := b.p[name]
	if !ok || raw == nil {
		b.fail(name, "required parameter is missing")
		return false
	}
	v, ok := raw.(bool)
	if !ok {
		b.fail(name, "must be a boolean")
		return false
	}
	return v
}

// BoolOpt reads an optional boolean parameter, defaulting to false.
func (b *Binder) BoolOpt(name string) bool {
	if b.err != nil {
		return false
	}
	raw, ok := b.p[name]
	if !ok || raw == nil {
		return false
	}
	v, ok := raw.(bool)
	if !ok {
		b.fail(name, "must be a boolean")
		return false
	}
	return v
}

// Enum reads a required string parameter constrained to the allowed set.
// Matching is case-insensitive; the canonical (allowed) spelling is
// returned.
func (b *Binder) Enum(name string, allowed ...string) string {
	if b.err != nil {
		return ""
	}
	raw, ok := b.p[name]
	if !ok || raw == nil {
		b.fail(name, "required parameter is missing")
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		b.fail(name, "must be a string")
		return ""
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a
		}
	}
	b.fail(name, "must be one of %s", strings.Join(allowed, ", "))
	return ""
}

// EnumOpt reads an optional string parameter constrained to the allowed
// set, returning def when absent.
func (b *Binder) EnumOpt(name, def string, allowed ...string) string {
	if b.err != nil {
		return def
	}
	if raw, ok := b.p[name]; !ok || raw == nil {
		return def
	}
	return b.Enum(name, allowed...)
}
