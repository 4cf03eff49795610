// Package filter evaluates CEL expressions against row documents to decide
// which rows of a dataset are rendered.
package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// Evaluator holds a compiled row predicate. The expression references the
// current row with the variable name "_".
// Example: `_.status == "active"` or `int(_.port) > 1024`.
type Evaluator struct {
	expr string
	prg  cel.Program
}

// NewEvaluator compiles expr into a reusable predicate program. Compilation
// happens once; the same program is evaluated against every row.
func NewEvaluator(expr string) (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("_", cel.DynType),
		// Extension libraries give the predicate richer string, list and
		// math functions.
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	return &Evaluator{expr: expr, prg: prg}, nil
}

// Keep evaluates the predicate against one row document. A non-boolean
// result is an error: a filter that returns anything else is a bug in the
// expression, not a truthy value to coerce.
func (e *Evaluator) Keep(doc map[string]any) (bool, error) {
	result, _, err := e.prg.Eval(map[string]any{"_": doc})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := result.(types.Bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %s, want bool", e.expr, result.Type().TypeName())
	}
	return bool(b), nil
}

// Apply evaluates the predicate against every document and returns the
// keep mask, aligned by index.
func (e *Evaluator) Apply(docs []map[string]any) ([]bool, error) {
	keep := make([]bool, len(docs))
	for i, doc := range docs {
		ok, err := e.Keep(doc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		keep[i] = ok
	}
	return keep, nil
}
