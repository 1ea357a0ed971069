package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshharrison/pertloom/internal/cpm"
	"github.com/joshharrison/pertloom/internal/dot"
	"github.com/joshharrison/pertloom/internal/loader"
	"github.com/joshharrison/pertloom/internal/network"
	"github.com/joshharrison/pertloom/internal/reporter"
	"github.com/joshharrison/pertloom/internal/ui"
)

var (
	flagInput  string
	flagJSON   bool
	flagOutput string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pertloom",
		Short: "Compute PERT/CPM schedules and render them as Graphviz graphs",
		Long: `Pertloom reads a task network from CSV or JSON rows
(from, to, duration, name), computes earliest and latest occurrence
times for every event plus total and free float for every task, and
renders the result as a Graphviz digraph or a terminal report.`,
	}

	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "-", "Input file (CSV, or JSON with .json extension); - reads CSV from stdin")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildSchedule is shared logic for render and analyze.
func buildSchedule() (*cpm.Schedule, error) {
	rows, err := loader.LoadFile(flagInput)
	if err != nil {
		return nil, fmt.Errorf("load rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no task rows found")
	}

	n := network.Build(rows)
	s, err := cpm.Analyze(n)
	if err != nil {
		return nil, fmt.Errorf("analyze network: %w", err)
	}
	return s, nil
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the analyzed network as a Graphviz digraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSchedule()
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := dot.Render(&buf, s); err != nil {
				return fmt.Errorf("render dot: %w", err)
			}

			if flagOutput != "" {
				return os.WriteFile(flagOutput, buf.Bytes(), 0644)
			}
			fmt.Print(buf.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the graph to a file instead of stdout")

	return cmd
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the computed schedule, floats and critical path",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSchedule()
			if err != nil {
				return err
			}

			rpt := reporter.New(s)

			if flagJSON {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			ui.PrintLogo()
			rpt.PrintReport(os.Stdout)
			return nil
		},
	}

	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the network topology without computing a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loader.LoadFile(flagInput)
			if err != nil {
				return fmt.Errorf("load rows: %w", err)
			}
			if len(rows) == 0 {
				return fmt.Errorf("no task rows found")
			}

			n := network.Build(rows)

			start, err := n.Start()
			if err != nil {
				return describeFailure(err)
			}
			fmt.Printf("  %s start event %s\n", ui.Green("✓"), ui.BoldMagenta(start.Label))

			end, err := n.End()
			if err != nil {
				return describeFailure(err)
			}
			fmt.Printf("  %s end event %s\n", ui.Green("✓"), ui.BoldMagenta(end.Label))

			if _, err := n.TopoOrder(); err != nil {
				return describeFailure(err)
			}
			fmt.Printf("  %s acyclic (%d events, %d tasks)\n", ui.Green("✓"), n.EventCount(), len(n.Tasks))

			fmt.Printf("\n%s network is well-formed\n", ui.BoldGreen("OK:"))
			return nil
		},
	}

	return cmd
}

// describeFailure prints a colored diagnosis before returning the error
// so cobra's plain error line is not the only feedback.
func describeFailure(err error) error {
	fmt.Fprintf(os.Stderr, "  %s %v\n", ui.Red("✗"), err)
	return fmt.Errorf("network is not well-formed")
}
