package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hamroute/builder"
	"github.com/katalvlaran/hamroute/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Location naming schemes for --ids.
const (
	idsDecimal = "decimal"
	idsLetters = "letters"
	idsCity    = "city"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic route list that solve can read",
		Long: "Generates a deterministic route network (topologies: " +
			strings.Join(builder.Topologies(), ", ") + ") and prints it in the\n" +
			`"A to B = N" line format. A network with a location that has no
routes cannot be written and is refused.`,
		Args: cobra.NoArgs,
		RunE: c.runGenerate,
	}

	flags := cmd.Flags()
	flags.StringP("topology", "t", builder.TopologyComplete, "Network shape")
	flags.IntP("locations", "n", 5, "Number of locations (rows for the grid topology)")
	flags.Int("cols", 2, "Columns for the grid topology")
	flags.Float64P("probability", "p", 0.5, "Edge probability for the random topology")
	flags.Int64("seed", 1, "Random seed")
	flags.Int64("min", 1, "Smallest distance")
	flags.Int64("max", 100, "Largest distance")
	flags.String("ids", idsLetters, "Location names: decimal, letters or city")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	topology, _ := flags.GetString("topology")
	n, _ := flags.GetInt("locations")
	cols, _ := flags.GetInt("cols")
	p, _ := flags.GetFloat64("probability")
	seed, _ := flags.GetInt64("seed")
	minW, _ := flags.GetInt64("min")
	maxW, _ := flags.GetInt64("max")
	ids, _ := flags.GetString("ids")

	if minW < 0 || maxW < minW {
		return fmt.Errorf("--min %d --max %d: want 0 ≤ min ≤ max", minW, maxW)
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
	}
	switch ids {
	case idsDecimal:
	case idsLetters:
		opts = append(opts, builder.WithExcelColumnIDs())
	case idsCity:
		opts = append(opts, builder.WithSymbNumb("City"))
	default:
		return fmt.Errorf("--ids %q: want decimal, letters or city", ids)
	}

	ctor, err := builder.ByName(topology, builder.Params{N: n, Cols: cols, P: p})
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(nil, opts, ctor)
	if err != nil {
		return err
	}
	c.log.Debug("network generated",
		zap.String("topology", topology),
		zap.Int("locations", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int64("seed", seed))

	return parser.WriteGraph(cmd.OutOrStdout(), g)
}
