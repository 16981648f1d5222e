package model

// Validate checks the structural input constraints from spec.md §6 before
// any packing work begins. It does not check geometric feasibility (an
// item too large for every unit is reported later, per-item, as an
// UnpackedItem) -- only malformed requests are rejected outright.
func (r PackRequest) Validate() error {
	if len(r.Items) == 0 {
		return InvalidInput("items must not be empty")
	}
	if len(r.UnitCatalog) == 0 {
		return InvalidInput("unit_catalog must not be empty")
	}
	if r.TolerancePercent < 0 {
		return InvalidInput("tolerance_percent must be >= 0")
	}

	for i, it := range r.Items {
		if it.Name == "" {
			return InvalidInput("items[%d]: name must not be empty", i)
		}
		if it.PieceCount <= 0 {
			return InvalidInput("items[%d] %q: piece_count must be > 0", i, it.Name)
		}
		if it.PieceWeightKg < 0 {
			return InvalidInput("items[%d] %q: piece_weight_kg must be >= 0", i, it.Name)
		}
		switch it.Shape.Kind {
		case ShapeCylinder:
			if it.Shape.Diameter <= 0 || it.Shape.H <= 0 {
				return InvalidInput("items[%d] %q: cylinder diameter and h must be > 0", i, it.Name)
			}
		default:
			if it.Shape.L <= 0 || it.Shape.W <= 0 || it.Shape.H <= 0 {
				return InvalidInput("items[%d] %q: box l,w,h must be > 0", i, it.Name)
			}
		}
		if it.OnPallet && it.PalletRef == nil {
			return InvalidInput("items[%d] %q: on_pallet requires pallet_ref", i, it.Name)
		}
		if p := it.PalletRef; p != nil {
			if p.Length <= 0 || p.Width <= 0 || p.CargoHeight <= 0 || p.MaxWeight <= 0 {
				return InvalidInput("items[%d] %q: pallet_ref fields must be > 0", i, it.Name)
			}
		}
	}

	for i, u := range r.UnitCatalog {
		if u.Name == "" {
			return InvalidInput("unit_catalog[%d]: name must not be empty", i)
		}
		if u.Length <= 0 || u.Width <= 0 || u.Height <= 0 || u.MaxWeight <= 0 {
			return InvalidInput("unit_catalog[%d] %q: length, width, height, max_weight must be > 0", i, u.Name)
		}
		if u.Kind == UnitVehicle || u.Kind == UnitArticulated {
			if u.Axles < 1 {
				return InvalidInput("unit_catalog[%d] %q: vehicles require axles >= 1", i, u.Name)
			}
			if len(u.AxlePositions) != u.Axles {
				return InvalidInput("unit_catalog[%d] %q: axle_positions length must equal axles", i, u.Name)
			}
			if len(u.CurbAxleLoads) != u.Axles {
				return InvalidInput("unit_catalog[%d] %q: curb_axle_loads length must equal axles", i, u.Name)
			}
			for j := 1; j < len(u.AxlePositions); j++ {
				if u.AxlePositions[j] <= u.AxlePositions[j-1] {
					return InvalidInput("unit_catalog[%d] %q: axle_positions must be strictly increasing", i, u.Name)
				}
			}
		}
		if u.Kind == UnitArticulated {
			if u.SaddlePositionX <= 0 {
				return InvalidInput("unit_catalog[%d] %q: articulated units require saddle_position_x > 0", i, u.Name)
			}
		}
	}

	return nil
}
