// mapconv converts legacy JSON map saves to YAML map files.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arenasim/arena/internal/data"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "Usage: mapconv <legacy.json> <map-id> <output-dir>")
		os.Exit(1)
	}

	id, err := strconv.Atoi(os.Args[2])
	if err != nil || id < 1 {
		fmt.Fprintf(os.Stderr, "invalid map id %q\n", os.Args[2])
		os.Exit(1)
	}

	def, err := data.LoadLegacyMap(os.Args[1], id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	def.Name = fmt.Sprintf("converted from %s", os.Args[1])

	if err := os.MkdirAll(os.Args[3], 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out := data.MapPath(os.Args[3], id)
	if err := data.SaveMap(out, def); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d map entities to %s\n", len(def.Entities), out)
}
