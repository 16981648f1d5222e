package model

import dec "github.com/cargopack/loadplanner/internal/decimal"

// ComplianceReason classifies why a vehicle state failed regulatory checks.
type ComplianceReason string

const (
	ComplianceOK           ComplianceReason = "COMPLIANT"
	ComplianceGVWExceeded  ComplianceReason = "GVW_EXCEEDED"
	ComplianceAxleExceeded ComplianceReason = "AXLE_EXCEEDED"
)

// AxleReport is one axle's load vs. its regulatory limit.
type AxleReport struct {
	LoadKg           float64 `json:"load_kg"`
	LimitKg          float64 `json:"limit_kg"`
	DeviationKg      float64 `json:"deviation_kg"`
	DeviationPercent float64 `json:"deviation_percent"`
	Exceeded         bool    `json:"exceeded"`
}

// WheelLoad is one axle's left/right split.
type WheelLoad struct {
	AxleIdx int     `json:"axle_idx"`
	LeftKg  float64 `json:"left_kg"`
	RightKg float64 `json:"right_kg"`
}

// ComplianceReport is the full axle-compliance output for one vehicle unit
// (spec.md §6 UnitResult.compliance).
type ComplianceReport struct {
	IsCompliant bool             `json:"is_compliant"`
	Reason      ComplianceReason `json:"reason"`
	PerAxle     []AxleReport     `json:"per_axle"`
	WheelLoads  []WheelLoad      `json:"wheel_loads,omitempty"`
	CGCargoXYZ  [3]float64       `json:"cg_cargo_xyz"`
}

// AxleState is the internal (decimal) computation the scorer consumes
// before it is rounded into a ComplianceReport.
type AxleState struct {
	PerAxleLoad []dec.D
	CGCargo     Position
	WheelLoads  []WheelLoadState
}

type WheelLoadState struct {
	AxleIdx int
	Left    dec.D
	Right   dec.D
}

// UnitResult is one packed unit's full outcome (spec.md §6).
type UnitResult struct {
	Unit        TransportUnit     `json:"-"`
	Placements  []PlacementView   `json:"placements"`
	CargoWeight float64           `json:"cargo_weight"`
	Compliance  ComplianceReport  `json:"compliance"`
	Notices     []string          `json:"notices"`
}

// UnpackedReason is a structured, string-free reason code for why an item
// did not end up in any unit (spec.md §7: "retrievable from PackResult
// without parsing strings").
type UnpackedReason string

const (
	ReasonItemOversized        UnpackedReason = "ITEM_OVERSIZED"
	ReasonPlacementFailed      UnpackedReason = "PLACEMENT_FAILED"
	ReasonGVWExceeded          UnpackedReason = "GVW_EXCEEDED"
	ReasonComplianceViolation  UnpackedReason = "COMPLIANCE_VIOLATION"
)

// UnpackedItem pairs a leftover item with why it was not placed. spec.md
// §6 describes `unpacked: [ItemSpec]`; carrying a Reason alongside each
// entry is how §7's "not fatal... retrievable without parsing strings"
// requirement is actually satisfiable in a typed result.
type UnpackedItem struct {
	Item   ItemSpec       `json:"item"`
	Reason UnpackedReason `json:"reason"`
}

// PackResult is the full outcome of a Pack call (spec.md §6).
type PackResult struct {
	Units    []UnitResult   `json:"units"`
	Unpacked []UnpackedItem `json:"unpacked"`
}
