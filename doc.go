// Package pipestate manages the render pipeline state of a GL style
// graphics driver.
//
// # Overview
//
// A [Context] probes its driver once at setup to learn which optional
// features it provides, then hosts a graph of pipelines. Pipelines share
// every piece of state they have not changed, so deriving one is cheap and
// comparing two only looks at what actually differs.
//
// # Quick Start
//
//	import "github.com/gogpu/pipestate"
//
//	ctx, err := pipestate.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	text := ctx.NewPipeline()
//	text.SetColor(gputypes.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
//	text.SetLayerTexture(0, glyphs)
//
//	canonical, _ := ctx.Cache().Lookup(text)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Option, SetLogger
//   - driver: driver interface and registry, including the null driver
//   - capability: feature descriptors, extension matching and symbol
//     resolution
//   - pipeline: the pipeline and layer graphs, equality, hashing and
//     difference walks
//   - bitmask: growable bit sets used for per-layer change masks
//
// # Concurrency
//
// A Context and its pipelines are not safe for concurrent use. Logging
// configuration ([SetLogger]) is.
package pipestate

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
