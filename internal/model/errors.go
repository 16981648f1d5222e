package model

import "fmt"

// Typed error taxonomy (spec.md §7). Callers switch on errors.Is/As rather
// than parsing messages.
type ErrorKind int

const (
	ErrKindInvalidInput ErrorKind = iota
	ErrKindItemOversized
	ErrKindNoFeasibleUnit
	ErrKindComplianceUnsatisfiable
)

// PackError wraps a structured failure from anywhere in the packing
// pipeline. Item/Unit are optional context, populated when the failure is
// traceable to a specific record.
type PackError struct {
	Kind    ErrorKind
	Message string
	Item    string // item name, if applicable
	Unit    string // unit name, if applicable
}

func (e *PackError) Error() string {
	switch {
	case e.Item != "" && e.Unit != "":
		return fmt.Sprintf("%s: item %q, unit %q: %s", e.kindLabel(), e.Item, e.Unit, e.Message)
	case e.Item != "":
		return fmt.Sprintf("%s: item %q: %s", e.kindLabel(), e.Item, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.kindLabel(), e.Message)
	}
}

func (e *PackError) kindLabel() string {
	switch e.Kind {
	case ErrKindItemOversized:
		return "item oversized"
	case ErrKindNoFeasibleUnit:
		return "no feasible unit"
	case ErrKindComplianceUnsatisfiable:
		return "compliance unsatisfiable"
	default:
		return "invalid input"
	}
}

// Is supports errors.Is comparison against a sentinel of the same Kind
// with no specific item/unit bound.
func (e *PackError) Is(target error) bool {
	t, ok := target.(*PackError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func InvalidInput(format string, args ...any) error {
	return &PackError{Kind: ErrKindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func ItemOversized(itemName, unitName string) error {
	return &PackError{Kind: ErrKindItemOversized, Message: "item exceeds unit interior dimensions in every orientation", Item: itemName, Unit: unitName}
}

func NoFeasibleUnit(itemName string) error {
	return &PackError{Kind: ErrKindNoFeasibleUnit, Message: "no unit in catalog admits this item", Item: itemName}
}

// Sentinels for errors.Is comparisons that don't need item/unit context.
var (
	ErrInvalidInput              = &PackError{Kind: ErrKindInvalidInput}
	ErrItemOversized             = &PackError{Kind: ErrKindItemOversized}
	ErrNoFeasibleUnit            = &PackError{Kind: ErrKindNoFeasibleUnit}
	ErrComplianceUnsatisfiable   = &PackError{Kind: ErrKindComplianceUnsatisfiable}
)
