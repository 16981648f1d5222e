package model

import (
	dec "github.com/cargopack/loadplanner/internal/decimal"
)

// ShapeSpec is the external, JSON-friendly shape union for ItemSpec.
type ShapeSpec struct {
	Kind     ShapeKind `json:"kind"`
	L, W, H  float64   `json:"l,omitempty"`
	Diameter float64   `json:"diameter,omitempty"`
}

// ConstraintsSpec is the external, JSON-friendly Constraints.
type ConstraintsSpec struct {
	AllowedOrientations [][3]float64 `json:"allowed_orientations,omitempty"`
	MaxStackHeight      *float64     `json:"max_stack_height,omitempty"`
	MaxStackLayers      *int         `json:"max_stack_layers,omitempty"`
	MaxStackLoad        *float64     `json:"max_stack_load,omitempty"`
	PalletPackingMode   PalletPackingMode `json:"pallet_packing_mode,omitempty"`
}

// PalletSpecView is the external PalletSpec (spec.md §6).
type PalletSpecView struct {
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	CargoHeight float64 `json:"cargo_height"`
	Depth       float64 `json:"depth"`
	MaxWeight   float64 `json:"max_weight"`
	SelfWeight  float64 `json:"self_weight"`
}

// ItemSpec is the external input record (spec.md §6).
type ItemSpec struct {
	Name              string          `json:"name"`
	Shape             ShapeSpec       `json:"shape"`
	PieceWeightKg     float64         `json:"piece_weight_kg"`
	PieceCount        int             `json:"piece_count"`
	OrientationDefault OrientationHint `json:"orientation_default,omitempty"`
	OnPallet          bool            `json:"on_pallet,omitempty"`
	PalletRef         *PalletSpecView `json:"pallet_ref,omitempty"`
	Constraints       ConstraintsSpec `json:"constraints,omitempty"`
}

// UnitSpec is the external tagged-union TransportUnit input (spec.md §6).
type UnitSpec struct {
	Kind UnitKind `json:"kind"`
	Name string   `json:"name"`

	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Container: MaxPayload. Vehicle/Articulated: GVW.
	MaxWeight float64 `json:"max_weight"`

	Axles           int       `json:"axles,omitempty"`
	AxlePositions   []float64 `json:"axle_positions,omitempty"`
	CurbAxleLoads   []float64 `json:"curb_axle_loads,omitempty"`
	WheelType       WheelType `json:"wheel_type,omitempty"`
	TrackWidthFront float64   `json:"track_width_front,omitempty"`
	TrackWidthRear  float64   `json:"track_width_rear,omitempty"`
	CGHeightEmpty   float64   `json:"cg_height_empty,omitempty"`

	SaddlePositionX   float64 `json:"saddle_position_x,omitempty"`
	SaddleHeight      float64 `json:"saddle_height,omitempty"`
	KingpinSetback    float64 `json:"kingpin_setback,omitempty"`
	TractorCurbWeight float64 `json:"tractor_curb_weight,omitempty"`
	TrailerCurbWeight float64 `json:"trailer_curb_weight,omitempty"`
}

// PackRequest is the external Pack() input (spec.md §6).
type PackRequest struct {
	Items               []ItemSpec      `json:"items"`
	UnitCatalog         []UnitSpec      `json:"unit_catalog"`
	CurbWeightOverride  *float64        `json:"curb_weight_override,omitempty"`
	PackingPriority     PackingPriority `json:"packing_priority"`
	PackingMode         PackingMode     `json:"packing_mode"`
	TolerancePercent    float64         `json:"tolerance_percent,omitempty"`
	// BaseThenTop requests the "others-first" sort partition of spec.md
	// §4.8 step 3 / §9's base_then_top open-question flag.
	BaseThenTop bool `json:"base_then_top,omitempty"`
}

// ToItem converts an external ItemSpec to the internal decimal-backed Item.
func (s ItemSpec) ToItem() Item {
	it := Item{
		ID:                 NewID(),
		Name:               s.Name,
		PieceWeightKg:      dec.FromFloat64(s.PieceWeightKg),
		PieceCount:         s.PieceCount,
		OrientationDefault: s.OrientationDefault,
		Constraints:        DefaultConstraints(),
	}

	switch s.Shape.Kind {
	case ShapeCylinder:
		it.Shape = ShapeCylinder
		it.Cylinder = CylinderDims{D: dec.FromFloat64(s.Shape.Diameter), H: dec.FromFloat64(s.Shape.H)}
	default:
		it.Shape = ShapeBox
		it.Box = BoxDims{L: dec.FromFloat64(s.Shape.L), W: dec.FromFloat64(s.Shape.W), H: dec.FromFloat64(s.Shape.H)}
	}

	c := s.Constraints
	if len(c.AllowedOrientations) > 0 {
		tr := make([]Triple, 0, len(c.AllowedOrientations))
		for _, o := range c.AllowedOrientations {
			tr = append(tr, Triple{DX: dec.FromFloat64(o[0]), DY: dec.FromFloat64(o[1]), DZ: dec.FromFloat64(o[2])})
		}
		it.Constraints.AllowedOrientations = tr
	}
	if c.MaxStackHeight != nil {
		it.Constraints.MaxStackHeight = dec.FromFloat64(*c.MaxStackHeight)
	}
	if c.MaxStackLayers != nil {
		it.Constraints.MaxStackLayers = dec.FromInt(*c.MaxStackLayers)
	}
	if c.MaxStackLoad != nil {
		it.Constraints.MaxStackLoad = dec.FromFloat64(*c.MaxStackLoad)
	}
	it.Constraints.PalletPackingMode = c.PalletPackingMode
	it.Constraints.OnPallet = s.OnPallet

	if s.OnPallet && s.PalletRef != nil {
		p := s.PalletRef
		it.Constraints.Pallet = &PalletSpec{
			Length:      dec.FromFloat64(p.Length),
			Width:       dec.FromFloat64(p.Width),
			CargoHeight: dec.FromFloat64(p.CargoHeight),
			Depth:       dec.FromFloat64(p.Depth),
			MaxWeight:   dec.FromFloat64(p.MaxWeight),
			SelfWeight:  dec.FromFloat64(p.SelfWeight),
		}
	}

	return it
}

// ToSpec renders an Item back to its external ItemSpec view (used when
// reporting unpacked items).
func (it Item) ToSpec() ItemSpec {
	spec := ItemSpec{
		Name:               it.Name,
		PieceWeightKg:      dec.ToFloat64(it.PieceWeightKg),
		PieceCount:         it.PieceCount,
		OrientationDefault: it.OrientationDefault,
		OnPallet:           it.Constraints.OnPallet,
	}
	switch it.Shape {
	case ShapeCylinder:
		spec.Shape = ShapeSpec{Kind: ShapeCylinder, Diameter: dec.ToFloat64(it.Cylinder.D), H: dec.ToFloat64(it.Cylinder.H)}
	default:
		spec.Shape = ShapeSpec{Kind: ShapeBox, L: dec.ToFloat64(it.Box.L), W: dec.ToFloat64(it.Box.W), H: dec.ToFloat64(it.Box.H)}
	}
	return spec
}

// ToUnit converts an external UnitSpec to the internal decimal-backed
// TransportUnit.
func (s UnitSpec) ToUnit() TransportUnit {
	u := TransportUnit{
		ID:     NewID(),
		Name:   s.Name,
		Kind:   s.Kind,
		Length: dec.FromFloat64(s.Length),
		Width:  dec.FromFloat64(s.Width),
		Height: dec.FromFloat64(s.Height),

		MaxWeight: dec.FromFloat64(s.MaxWeight),

		Axles:           s.Axles,
		WheelType:       s.WheelType,
		TrackWidthFront: dec.FromFloat64(s.TrackWidthFront),
		TrackWidthRear:  dec.FromFloat64(s.TrackWidthRear),
		CGHeightEmpty:   dec.FromFloat64(s.CGHeightEmpty),

		SaddlePositionX:   dec.FromFloat64(s.SaddlePositionX),
		SaddleHeight:      dec.FromFloat64(s.SaddleHeight),
		KingpinSetback:    dec.FromFloat64(s.KingpinSetback),
		TractorCurbWeight: dec.FromFloat64(s.TractorCurbWeight),
		TrailerCurbWeight: dec.FromFloat64(s.TrailerCurbWeight),
	}
	for _, x := range s.AxlePositions {
		u.AxlePositions = append(u.AxlePositions, dec.FromFloat64(x))
	}
	for _, x := range s.CurbAxleLoads {
		u.CurbAxleLoads = append(u.CurbAxleLoads, dec.FromFloat64(x))
	}
	return u
}
