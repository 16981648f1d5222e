package model

import dec "github.com/cargopack/loadplanner/internal/decimal"

// PalletSpec describes a pallet base that loose items may be grouped onto.
// Field names follow spec.md §3 exactly.
type PalletSpec struct {
	Length      dec.D
	Width       dec.D
	CargoHeight dec.D // max height of goods above the pallet deck
	Depth       dec.D // deck thickness
	MaxWeight   dec.D // max payload
	SelfWeight  dec.D
}
