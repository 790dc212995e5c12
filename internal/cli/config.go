package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/pipeline"
	"github.com/matzehuels/vonneumann/pkg/predicate"
)

// Flag names shared by the render commands. Each one can also be set through
// the environment, e.g. --output-dir as VONNEUMANN_OUTPUT_DIR.
const (
	flagPredicate = "predicate"
	flagDark      = "dark"
	flagLight     = "light"
	flagUnshaded  = "unshaded"
	flagMaxValue  = "max-value"
	flagFormat    = "format"
	flagType      = "type"
	flagOutputDir = "output-dir"
	flagSize      = "size"
	flagScale     = "scale"
	flagDetailed  = "detailed"
)

// renderConfig is the resolved flag and environment state of a render command.
type renderConfig struct {
	Predicate string  `mapstructure:"predicate"`
	Dark      string  `mapstructure:"dark"`
	Light     string  `mapstructure:"light"`
	Unshaded  string  `mapstructure:"unshaded"`
	MaxValue  int     `mapstructure:"max-value"`
	Format    string  `mapstructure:"format"`
	Type      string  `mapstructure:"type"`
	OutputDir string  `mapstructure:"output-dir"`
	Size      int     `mapstructure:"size"`
	Scale     float64 `mapstructure:"scale"`
	Detailed  bool    `mapstructure:"detailed"`
}

// addDrawFlags registers the flags that control what is drawn.
func addDrawFlags(fs *pflag.FlagSet) {
	def := ordinal.DefaultPalette
	fs.StringP(flagPredicate, "p", predicate.DefaultName, "shading predicate (see 'vonneumann predicates')")
	fs.String(flagDark, def.Dark, "fill for dark circles (CSS name or #rrggbb)")
	fs.String(flagLight, def.Light, "fill for light circles (CSS name or #rrggbb)")
	fs.String(flagUnshaded, def.Unshaded, "fill for unshaded circles (CSS name or #rrggbb)")
	fs.Int(flagMaxValue, pipeline.DefaultMaxValue, "largest value accepted; negative disables the limit")
}

// addOutputFlags registers the flags that control rendering and output files.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringP(flagFormat, "f", pipeline.FormatSVG, "output format(s): svg, png, pdf, json, dot (comma-separated)")
	fs.StringP(flagType, "t", pipeline.DefaultVizType, "visualization type(s): nested, nodelink (comma-separated)")
	fs.StringP(flagOutputDir, "o", pipeline.DefaultOutputDir, "directory for output files")
	fs.Int(flagSize, pipeline.DefaultSize, "image edge length in pixels")
	fs.Float64(flagScale, pipeline.DefaultScale, "raster scale for node-link PNGs")
	fs.Bool(flagDetailed, false, "show depth and shading in node-link labels")
}

// loadRenderConfig resolves fs against VONNEUMANN_* environment variables.
// Explicit flags win over the environment, which wins over flag defaults.
func loadRenderConfig(fs *pflag.FlagSet) (renderConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return renderConfig{}, fmt.Errorf("bind flags: %w", err)
	}

	var cfg renderConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return renderConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// options converts the config into pipeline options for value n.
func (c renderConfig) options(n int) pipeline.Options {
	return pipeline.Options{
		N:         n,
		Predicate: c.Predicate,
		Palette:   ordinal.Palette{Dark: c.Dark, Light: c.Light, Unshaded: c.Unshaded},
		MaxValue:  c.MaxValue,
		VizTypes:  parseList(c.Type),
		Formats:   parseList(c.Format),
		Size:      c.Size,
		Scale:     c.Scale,
		Detailed:  c.Detailed,
		OutputDir: c.OutputDir,
	}
}
