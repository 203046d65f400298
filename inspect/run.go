package inspect

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"seqsize/resources"
	"seqsize/state"
)

// collect gathers sheet entries followed by sizes from command line, every
// command line size is named by itself.
func collect(cmd *cli.Command) ([]Entry, error) {
	var entries []Entry

	if sheet := cmd.String("sheet"); len(sheet) > 0 {
		loaded, err := LoadSheet(sheet)
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}
	for _, arg := range cmd.Args().Slice() {
		entries = append(entries, Entry{Name: arg, Raw: arg})
	}
	if len(entries) == 0 {
		return nil, errors.New("no sizes to process have been specified")
	}
	return entries, nil
}

func summarize(results []Result, err error) error {
	if err == nil {
		return nil
	}
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	return fmt.Errorf("%d of %d sizes could not be parsed: %w", failed, len(results), err)
}

// RunParse is "parse" command action.
func RunParse(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	entries, err := collect(cmd)
	if err != nil {
		return err
	}

	in := New(log, env.Resources, env.Cfg.Display, env.Rpt)
	results, perr := in.ParseAll(entries)
	if err := in.WriteTrees(cmd.Root().Writer, results); err != nil {
		return fmt.Errorf("unable to output trees: %w", err)
	}
	return summarize(results, perr)
}

// RunMeasure is "measure" command action.
func RunMeasure(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("measure")

	container := env.Cfg.Display.Container
	if cmd.IsSet("container") {
		container = cmd.Int("container")
	}
	if container < 0 {
		return fmt.Errorf("container size could not be negative: %d", container)
	}

	text := env.Cfg.Output.Template
	if cmd.IsSet("template") {
		text = cmd.String("template")
	}
	f, err := NewFormatter(text)
	if err != nil {
		return err
	}

	entries, err := collect(cmd)
	if err != nil {
		return err
	}

	log.Debug("Measuring", zap.Int("container", container), zap.Float64("density", env.Cfg.Display.Density),
		zap.Float64("scaled density", env.Cfg.Display.ScaledDensity), zap.Float64("paragraph", env.Cfg.Display.ParagraphUnit))

	in := New(log, env.Resources, env.Cfg.Display, env.Rpt)
	results, perr := in.ParseAll(entries)
	if err := in.WriteMeasurements(cmd.Root().Writer, results, container, f); err != nil {
		return err
	}
	return summarize(results, perr)
}

// RunResources is "resources" command action.
func RunResources(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("resources")

	if err := WriteResources(cmd.Root().Writer, env.Resources); err != nil {
		return fmt.Errorf("unable to output resources: %w", err)
	}

	if dst := cmd.String("export"); len(dst) > 0 {
		if err := resources.SaveStore(dst, env.Resources); err != nil {
			return fmt.Errorf("unable to export resources: %w", err)
		}
		log.Info("Resources exported", zap.String("file", dst), zap.Int("entries", env.Resources.Len()))
	}
	return nil
}
