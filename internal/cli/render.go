package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/pipeline"
	"github.com/matzehuels/vonneumann/pkg/predicate"
	"github.com/matzehuels/vonneumann/pkg/render/sink"
)

// renderCommand creates the render command, which draws one value.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render N",
		Short: "Draw N as nested circles",
		Long: `Draw the natural number N as nested circles and write one file per format.

Files are named von_neumann_n<N>.<format>; running again with the same N
replaces them. When both visualization types are requested, node-link files
get a _nodelink suffix.

Every flag can also be set through the environment with the VONNEUMANN_
prefix, e.g. VONNEUMANN_PREDICATE=prime or VONNEUMANN_OUTPUT_DIR=out.`,
		Example: `  vonneumann render 3
  vonneumann render 7 --predicate prime-or-even --dark darkblue --light lightblue
  vonneumann render 5 -f svg,png,json -t nested,nodelink -o out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := vnerrors.ParseValue(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadRenderConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg.options(n))
		},
	}

	addDrawFlags(cmd.Flags())
	addOutputFlags(cmd.Flags())
	registerCompletions(cmd)

	return cmd
}

// rerenderCommand creates the rerender command, which renders a scene
// previously exported as JSON without drawing it again.
func (c *CLI) rerenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rerender FILE.json",
		Short: "Render a saved JSON scene to other formats",
		Example: `  vonneumann render 6 -f json
  vonneumann rerender von_neumann_n6.json -f png,pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRenderConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return c.runRerender(cmd.Context(), args[0], cfg.options(0))
		},
	}

	addOutputFlags(cmd.Flags())
	registerCompletions(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Drawing %d", opts.N)
	prog := newProgress(logger)

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Draw.Name))

	printResult(result, opts.N)
	if slices.Contains(opts.Formats, pipeline.FormatJSON) {
		printNextStep("Render again without drawing", fmt.Sprintf("%s rerender %s", appName,
			filepath.Join(opts.OutputDir, pipeline.FileName(result.Draw.Name, pipeline.VizTypeNested, pipeline.FormatJSON, false))))
	}
	return nil
}

func (c *CLI) runRerender(ctx context.Context, path string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Loading %s", path)

	f, err := os.Open(path)
	if err != nil {
		return vnerrors.Wrap(vnerrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	scene, err := sink.ReadJSON(f)
	if err != nil {
		return vnerrors.Wrap(vnerrors.ErrCodeInvalidFormat, err, "read scene %s", path)
	}
	logger.Debugf("Loaded %s: %d circles, palette %+v", scene.Name, len(scene.Circles), scene.Palette)

	prog := newProgress(logger)
	result, err := c.newRunner().Rerender(ctx, scene, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Draw.Name))

	printResult(result, result.Draw.N)
	return nil
}

// printResult prints the confirmation line followed by any further files.
func printResult(result *pipeline.Result, n int) {
	if len(result.Files) == 0 {
		return
	}
	printSuccess("Visualization for %s saved as %s", StyleHighlight.Render(fmt.Sprint(n)), result.Files[0])
	for _, f := range result.Files[1:] {
		printFile(f)
	}
	printStats(result.Stats.Circles, result.Stats.MaxDepth,
		result.Stats.WalkTime+result.Stats.RenderTime+result.Stats.WriteTime)
}

// registerCompletions adds shell completion for flags with a fixed value set.
func registerCompletions(cmd *cobra.Command) {
	fixed := func(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	if cmd.Flags().Lookup(flagPredicate) != nil {
		_ = cmd.RegisterFlagCompletionFunc(flagPredicate, fixed(predicate.Names()...))
	}
	_ = cmd.RegisterFlagCompletionFunc(flagFormat, fixed(
		pipeline.FormatSVG, pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON, pipeline.FormatDOT))
	_ = cmd.RegisterFlagCompletionFunc(flagType, fixed(pipeline.VizTypeNested, pipeline.VizTypeNodelink))
}
