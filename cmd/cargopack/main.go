// Command cargopack is a demo harness: it reads a PackRequest as JSON
// from a file or stdin, runs the packing engine, and prints a styled
// summary plus the full PackResult as JSON (spec.md §6 External
// Interfaces; no interactive prompting, plotting, or textual reports are
// part of the engine itself -- this is purely an example caller).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	cargopack "github.com/cargopack/loadplanner"
)

// CLI is the kong command tree: a single pack subcommand plus version.
type CLI struct {
	Pack    PackCmd    `cmd:"" help:"Pack items into a unit catalog and print the result"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// PackCmd reads a PackRequest JSON document and runs the engine.
type PackCmd struct {
	Input   string `arg:"" optional:"" help:"Path to a PackRequest JSON file; reads stdin if omitted"`
	Timeout int    `help:"Abort the pack after this many seconds (0 disables)" default:"0"`
	Quiet   bool   `help:"Suppress the styled summary, print only the result JSON"`
}

func (c *PackCmd) Run() error {
	var data []byte
	var err error
	if c.Input == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.Input)
	}
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req cargopack.PackRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.Timeout)*time.Second)
		defer cancel()
	}

	result, err := cargopack.Pack(ctx, req)
	if err != nil {
		return err
	}

	if !c.Quiet {
		printSummary(result)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// VersionCmd prints the engine's reported version string.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("cargopack dev build")
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("cargopack"),
		kong.Description("3D cargo load-planning engine"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
