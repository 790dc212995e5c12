// Package pkg provides the libraries behind vonneumann, which draws natural
// numbers as nested circles.
//
// # Overview
//
// Under the von Neumann construction every natural number is the set of all
// smaller ones: 0 = {}, 1 = {0}, 2 = {0, 1}, and so on. Drawing n means
// drawing one circle that holds a drawing of every smaller number. The pkg
// directory is organized into these areas:
//
//  1. [ordinal] - Packing, shading and the recursive walk (no I/O)
//  2. [predicate] - Built-in shading predicates
//  3. [render] - Color parsing, recording canvas and output sinks
//  4. [pipeline] - Orchestration (draw → render → write)
//  5. [errors] - Structured error codes shared by every layer
//
// # Architecture
//
// The typical data flow:
//
//	n, predicate, palette
//	         ↓
//	    [ordinal] Draw (walk + pack + shade)
//	         ↓
//	    [render/sink] Scene (recorded circles)
//	         ↓
//	    [render/sink] or [render/nodelink]
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
// Draw 7 with the "prime or even" predicate and write an SVG:
//
//	import (
//	    "github.com/matzehuels/vonneumann/pkg/ordinal"
//	    "github.com/matzehuels/vonneumann/pkg/predicate"
//	    "github.com/matzehuels/vonneumann/pkg/render/sink"
//	)
//
//	scene := sink.NewScene()
//	palette := ordinal.Palette{Dark: "darkblue", Light: "lightblue", Unshaded: "white"}
//	res, err := ordinal.Draw(7, predicate.PrimeOrEven, palette, scene)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(scene)
//	os.WriteFile(res.Name+".svg", svg, 0o644)
//
// Or let the pipeline handle validation, file naming and every format:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{N: 7, Predicate: "prime-or-even"})
//
// [ordinal]: github.com/matzehuels/vonneumann/pkg/ordinal
// [predicate]: github.com/matzehuels/vonneumann/pkg/predicate
// [render]: github.com/matzehuels/vonneumann/pkg/render
// [render/sink]: github.com/matzehuels/vonneumann/pkg/render/sink
// [render/nodelink]: github.com/matzehuels/vonneumann/pkg/render/nodelink
// [pipeline]: github.com/matzehuels/vonneumann/pkg/pipeline
// [errors]: github.com/matzehuels/vonneumann/pkg/errors
package pkg
