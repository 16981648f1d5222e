package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	cargopack "github.com/cargopack/loadplanner"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func printSummary(result cargopack.PackResult) {
	fmt.Println(titleStyle.Render("cargopack result"))
	for i, u := range result.Units {
		status := okStyle.Render("compliant")
		if !u.Compliance.IsCompliant {
			status = warnStyle.Render(string(u.Compliance.Reason))
		}
		fmt.Printf("  unit %d: %d placements, %.1f kg cargo -- %s\n", i+1, len(u.Placements), u.CargoWeight, status)
	}
	if len(result.Unpacked) > 0 {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("  %d item(s) could not be placed", len(result.Unpacked))))
	}
}
