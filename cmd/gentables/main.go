// Command gentables writes the mapping lookup tables as Go source.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/itohio/gograins/internal/tablegen"
)

func main() {
	var (
		outFlag = flag.String("o", "tables_gen.go", "Output file")
		pkgFlag = flag.String("pkg", "mapping", "Package name of the generated file")
	)
	flag.Parse()

	f, err := os.Create(*outFlag)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outFlag, err)
	}

	if err := tablegen.Render(f, *pkgFlag, tablegen.Tables()); err != nil {
		f.Close()
		log.Fatalf("Failed to generate tables: %v", err)
	}

	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *outFlag, err)
	}
}
