package manager

import (
	"context"
	"log/slog"

	dec "github.com/cargopack/loadplanner/internal/decimal"
	"github.com/cargopack/loadplanner/internal/model"
	"github.com/cargopack/loadplanner/internal/palletizer"
)

// Pack is the full orchestration entry point: validate, expand and
// palletize items, distribute them across the unit catalog, balance
// vehicle loads transversely, and assemble the external result
// (spec.md §4.9, §6).
func Pack(ctx context.Context, req model.PackRequest) (model.PackResult, error) {
	if err := req.Validate(); err != nil {
		return model.PackResult{}, err
	}

	mode := req.PackingMode

	var expanded []model.Item
	for _, spec := range req.Items {
		it := spec.ToItem()
		expanded = append(expanded, palletizer.Palletize(it)...)
	}

	items := sortItems(expanded, req.PackingPriority, req.BaseThenTop)

	slog.Debug("packing run starting", "item_count", len(items), "unit_types", len(req.UnitCatalog), "mode", mode)

	units, unpacked := distribute(ctx, items, req.UnitCatalog, mode)

	result := model.PackResult{Unpacked: unpacked}
	for _, up := range units {
		placements := balanceTransverse(up.Unit, mode, up.Placements)

		views := make([]model.PlacementView, 0, len(placements))
		for _, p := range placements {
			views = append(views, p.ToView())
		}

		report := recompute(up.Unit, mode, placements, up.CumWeight)

		var notices []string
		if !report.IsCompliant {
			notices = append(notices, "unit exceeds regulatory load limits: "+string(report.Reason))
		}

		result.Units = append(result.Units, model.UnitResult{
			Unit:        up.Unit,
			Placements:  views,
			CargoWeight: dec.ToFloat64(up.CumWeight),
			Compliance:  report,
			Notices:     notices,
		})
	}

	slog.Debug("packing run finished", "units_used", len(result.Units), "unpacked", len(result.Unpacked))

	return result, nil
}
