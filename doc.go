/*
Package transducer runs non-deterministic finite-state transducers stored as AT&T transition tables.

A table maps an analysis such as "cat<N><PL>" to a surface form such as "cats". The same
table, inverted, maps surface forms back to every analysis that could have produced them.
Results are found with a depth-first agenda search, so ambiguous inputs yield several outputs.

# Architecture

The module follows a Hexagonal layout. Tables live in pkg/domain and are read from AT&T
text by pkg/att. The search itself lives in internal/runtime. Storage, caching and serving
are adapters behind the interfaces in pkg/ports: tables can come from the local disk or any
URL scheme afs supports, results can be cached in memory or in Redis, and an Engine can be
exposed over HTTP or as MCP tools.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/transducer"
	)

	func main() {
		ctx := context.Background()

		// Reads ./tables/nouns.att
		eng, err := transducer.New(ctx, "./tables/nouns.att")
		if err != nil {
			log.Fatal(err)
		}

		surface, _ := eng.Generate(ctx, "cat<N><PL>")
		fmt.Println(surface) // [cats]

		analyses, _ := eng.Analyze(ctx, "cats")
		fmt.Println(analyses) // [cat<N><PL>]
	}

For batch work over a stream of lines, see Runner.
*/
package transducer
