// Package registry holds the clinical score calculator registry and the
// dispatch engine. Calculator packages register themselves from init() via
// MustRegister on the package default registry; the HTTP layer only ever
// talks to Calculate, Lookup and Definitions.
package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Result is the uniform outcome of a calculation. Result holds the primary
// value (number, string or structured object depending on the score).
type Result struct {
	Result           interface{}            `json:"result"`
	Unit             string                 `json:"unit,omitempty"`
	Interpretation   string                 `json:"interpretation,omitempty"`
	Stage            string                 `json:"stage,omitempty"`
	StageDescription string                 `json:"stage_description,omitempty"`
	Details          map[string]interface{} `json:"details,omitempty"`
}

// Params is the raw parameter map decoded from a calculation request body.
type Params map[string]interface{}

// CalcFunc computes one score. Implementations must be pure and stateless:
// no shared mutable state, identical output for identical input.
type CalcFunc func(p Params) (*Result, error)

// ParamSpec describes a single input parameter for documentation and the
// score metadata endpoints. Validation itself happens inside the calculator.
type ParamSpec struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "number", "integer", "boolean", "string"
	Required    bool     `json:"required"`
	Unit        string   `json:"unit,omitempty"`
	Allowed     []string `json:"allowed,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Definition is the registered metadata for one score.
type Definition struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Params      []ParamSpec `json:"params,omitempty"`
}

type entry struct {
	def Definition
	fn  CalcFunc
}

// Registry maps score IDs to calculators. It is populated during program
// init and immutable afterwards, so lookups need no locking.
type Registry struct {
	entries map[string]entry
}

func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

var scoreIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Register adds a calculator. Duplicate IDs are a hard error: a second
// registration under an existing ID indicates two calculators competing for
// the same identifier and must fail loudly rather than silently overwrite.
func (r *Registry) Register(def Definition, fn CalcFunc) error {
	if !scoreIDPattern.MatchString(def.ID) {
		return fmt.Errorf("invalid score id %q: must be snake_case", def.ID)
	}
	if fn == nil {
		return fmt.Errorf("score %s: nil calculation function", def.ID)
	}
	if def.Category == "" {
		return fmt.Errorf("score %s: category is required", def.ID)
	}
	if _, exists := r.entries[def.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScore, def.ID)
	}
	r.entries[def.ID] = entry{def: def, fn: fn}
	return nil
}

// MustRegister is Register for init() use; it panics on error so a bad
// registration crashes at startup instead of surfacing per-request.
func (r *Registry) MustRegister(def Definition, fn CalcFunc) {
	if err := r.Register(def, fn); err != nil {
		panic(err)
	}
}

// Calculate dispatches to the registered calculator. Every call resolves to
// exactly one outcome:
//   - unknown ID: error wrapping ErrUnknownScore
//   - rejected input: *ValidationError
//   - calculator fault (panic, nil result, other error): *CalculationError
//   - otherwise: a non-nil Result
func (r *Registry) Calculate(scoreID string, p Params) (res *Result, err error) {
	e, ok := r.entries[scoreID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScore, scoreID)
	}
	if p == nil {
		p = Params{}
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = &CalculationError{ScoreID: scoreID, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	res, err = e.fn(p)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, verr
		}
		return nil, &CalculationError{ScoreID: scoreID, Err: err}
	}
	if res == nil {
		return nil, &CalculationError{ScoreID: scoreID, Err: fmt.Errorf("calculator returned no result")}
	}
	return res, nil
}

// Lookup returns the definition for a score ID.
func (r *Registry) Lookup(scoreID string) (Definition, bool) {
	e, ok := r.entries[scoreID]
	return e.def, ok
}

// Definitions returns all registered definitions sorted by ID.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.entries))
	for _, e := range r.entries {
		defs = append(defs, e.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Categories returns the distinct categories in sorted order with the
// number of scores registered under each.
func (r *Registry) Categories() map[string]int {
	cats := make(map[string]int)
	for _, e := range r.entries {
		cats[strings.ToLower(e.def.Category)]++
	}
	return cats
}

// Len reports the number of registered scores.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Default is the process-wide registry that calculator packages register
// into from init(). Importing internal/scores/all populates it.
var Default = New()

func Register(def Definition, fn CalcFunc) error { return Default.Register(def, fn) }

func MustRegister(def Definition, fn CalcFunc) { Default.MustRegister(def, fn) }

func Calculate(scoreID string, p Params) (*Result, error) { return Default.Calculate(scoreID, p) }
