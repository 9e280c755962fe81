// Command pipestate-probe reports the features a driver would expose and
// optionally prints a sample pipeline graph.
//
// Usage:
//
//	pipestate-probe --gl-version 2.1 -e GL_ARB_framebuffer_object
//	pipestate-probe --driver null --dot | dot -Tsvg > graph.svg
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	flag "github.com/spf13/pflag"

	"github.com/gogpu/pipestate"
	"github.com/gogpu/pipestate/capability"
	"github.com/gogpu/pipestate/pipeline"
)

func main() {
	conf := NewDefaultConfig()
	conf.AddFlags(flag.CommandLine)
	flag.Parse()

	if conf.Verbose {
		pipestate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(&conf, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(conf *Config, w io.Writer) error {
	var opts []pipestate.Option
	if conf.Driver != "" {
		opts = append(opts, pipestate.WithDriverName(conf.Driver))
	} else {
		d, err := conf.Static()
		if err != nil {
			return err
		}
		opts = append(opts, pipestate.WithDriver(d))
	}
	disabled, err := conf.Disabled()
	if err != nil {
		return err
	}
	opts = append(opts, pipestate.WithFeatureOverride(disabled))

	ctx, err := pipestate.New(opts...)
	if err != nil {
		return err
	}
	defer ctx.Close()

	if conf.Dot {
		return dumpSample(ctx, w)
	}
	return report(ctx, w)
}

func report(ctx *pipestate.Context, w io.Writer) error {
	d := ctx.Driver()
	major, minor := d.Version()
	fmt.Fprintf(w, "driver:  %s (%s %d.%d)\n", d.Name(), d.API(), major, minor)
	fmt.Fprintf(w, "adapter: %s (%s)\n", ctx.Adapter().Name, ctx.Adapter().Type)
	for f := capability.FeatureOffscreen; f <= capability.FeaturePointSprite; f <<= 1 {
		mark := "-"
		if ctx.Has(f) {
			mark = "+"
		}
		if _, err := fmt.Fprintf(w, "  %s %s\n", mark, f); err != nil {
			return err
		}
	}
	return nil
}

// dumpSample builds a small text and image pipeline pair and prints the
// graph.
func dumpSample(ctx *pipestate.Context, w io.Writer) error {
	base := ctx.NewPipeline()
	defer base.Unref()
	base.SetLabel("base")
	base.SetBlend(gputypes.BlendStatePremultiplied())

	text := base.Copy()
	defer text.Unref()
	text.SetLabel("text")
	text.SetColor(gputypes.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
	text.SetLayerFilters(0, gputypes.FilterModeLinear, gputypes.FilterModeLinear, gputypes.MipmapFilterModeNearest)

	image := base.Copy()
	defer image.Unref()
	image.SetLabel("image")
	image.SetLayerWrapModes(0, pipeline.WrapModes{S: pipeline.WrapRepeat, T: pipeline.WrapRepeat, P: pipeline.WrapClampToEdge})

	return pipeline.DumpDot(w, ctx.Root())
}
