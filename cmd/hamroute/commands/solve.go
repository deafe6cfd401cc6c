package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/hamroute/hampath"
	"github.com/katalvlaran/hamroute/internal/config"
	"github.com/katalvlaran/hamroute/matrix"
	"github.com/katalvlaran/hamroute/parser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// errUnknownOutput rejects an --output value other than text or yaml.
var errUnknownOutput = errors.New("unknown output format")

// report is the --output yaml document.
type report struct {
	Locations int         `yaml:"locations"`
	Shortest  routeReport `yaml:"shortest"`
	Longest   routeReport `yaml:"longest"`
}

type routeReport struct {
	Cost  int64    `yaml:"cost"`
	Route []string `yaml:"route"`
}

func (c *CLI) newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Print the shortest and longest Hamiltonian path distances",
		Long: `Reads lines of the form "London to Dublin = 464" and prints the
shortest and longest total distance of a route that visits every
location exactly once without returning to its start.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runSolve,
	}

	flags := cmd.Flags()
	flags.Int("parallel", hampath.DefaultParallel, "Number of start locations solved concurrently")
	flags.Bool("shared-memo", hampath.DefaultSharedMemo, "Reuse the memo table across start locations")
	flags.Bool("connectivity-check", hampath.DefaultConnectivityCheck, "Reject disconnected networks before solving")
	flags.Bool("strict", false, "Fail when a location pair is listed twice")
	flags.Bool("routes", false, "Also print the location order of each route")
	flags.StringP("output", "o", outputText, "Output format: text or yaml")
	_ = c.v.BindPFlag(config.KeySolverParallel, flags.Lookup("parallel"))
	_ = c.v.BindPFlag(config.KeySolverSharedMemo, flags.Lookup("shared-memo"))
	_ = c.v.BindPFlag(config.KeySolverConnectivityCheck, flags.Lookup("connectivity-check"))
	_ = c.v.BindPFlag(config.KeyInputStrict, flags.Lookup("strict"))

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string) error {
	path := args[0]

	showRoutes, _ := cmd.Flags().GetBool("routes")
	format, _ := cmd.Flags().GetString("output")
	if format != outputText && format != outputYAML {
		return fmt.Errorf("--output %q: %w", format, errUnknownOutput)
	}

	g, err := parser.ParseGraphFile(path, c.cfg.GraphOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	d, err := matrix.FromGraph(g)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	started := time.Now()
	res, err := hampath.Solve(cmd.Context(), d, c.cfg.SolverOptions(c.log)...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.log.Info("routes solved",
		zap.String("file", path),
		zap.Int("locations", d.N()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int64("shortest", res.Shortest.Cost),
		zap.Int64("longest", res.Longest.Cost),
		zap.Duration("elapsed", time.Since(started)))

	out := cmd.OutOrStdout()
	if format == outputYAML {
		return writeReport(out, res, d)
	}
	printPath(out, "shortest", res.Shortest, d, showRoutes)
	printPath(out, "longest", res.Longest, d, showRoutes)

	return nil
}

func writeReport(w io.Writer, res hampath.Result, d *matrix.Distance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(report{
		Locations: d.N(),
		Shortest:  routeReport{Cost: res.Shortest.Cost, Route: res.Shortest.Names(d)},
		Longest:   routeReport{Cost: res.Longest.Cost, Route: res.Longest.Names(d)},
	})
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

func printPath(w io.Writer, label string, p hampath.Path, d *matrix.Distance, showRoute bool) {
	_, _ = fmt.Fprintf(w, "%s path is %d\n", label, p.Cost)
	if showRoute {
		_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(p.Names(d), " -> "))
	}
}
