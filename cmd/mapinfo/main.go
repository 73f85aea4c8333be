// Command mapinfo inspects maps: it prints the terrain classification of an
// embedded map, or of a freshly generated one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"shorebound/pkg/maps"
)

func main() {
	mapID := flag.String("map", "", "Embedded map ID to inspect")
	generate := flag.Bool("generate", false, "Generate a random map instead")
	width := flag.Int("width", 48, "Generated map width")
	islands := flag.Int("islands", 3, "Generated map island count")
	lakes := flag.Int("lakes", 1, "Generated map lake count")
	seed := flag.Int64("seed", 1, "Generator seed")
	flag.Parse()

	if err := maps.LoadAll(); err != nil {
		log.Fatalf("Failed to load maps: %v", err)
	}

	var m *maps.Map
	switch {
	case *generate:
		m = maps.NewGenerator(maps.GeneratorOptions{
			Width:   *width,
			Islands: *islands,
			Lakes:   *lakes,
			Seed:    *seed,
		}).Generate()
	case *mapID != "":
		m = maps.Get(*mapID)
		if m == nil {
			log.Fatalf("Unknown map %q", *mapID)
		}
	default:
		fmt.Println("Available maps:")
		for _, info := range maps.List() {
			fmt.Printf("  %-16s %s (%dx%d, %d regions)\n",
				info.ID, info.Name, info.Width, info.Height, info.RegionCount)
		}
		os.Exit(0)
	}

	fmt.Print(m.Debug())
}
