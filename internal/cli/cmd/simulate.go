package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/wring/internal/cli/scenario"
)

var simulateJSON bool

var simulateCmd = &cobra.Command{
	Use:   "simulate <file.yaml>",
	Short: "Run a scripted scenario against a fresh desktop",
	Long: `Run a YAML scenario: seed workspaces and clients, apply the scripted
ops in order, then check the expect block against the final state.

A scenario file looks like:

  name: example
  workspaces: ["web", "code"]
  clients:
    - {id: 1, class: firefox}
  ops:
    - {op: map-client, id: 2, class: kitty}
    - {op: move-to-workspace, id: 2, target: 1}
  expect:
    focused_workspace: web
    workspaces:
      - {name: code, clients: [2]}

The command exits non-zero when an op fails or an expectation does not
hold. Snapshots saved by the save-snapshot op land in the regular
snapshot store.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "output as JSON")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	rep, err := scenario.NewRunner(app.States).Run(app.Ctx(), sc)
	if err != nil {
		return err
	}

	if simulateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(rep); encErr != nil {
			return encErr
		}
	} else {
		printReport(rep)
	}

	if !rep.OK() {
		return fmt.Errorf("scenario %q failed", rep.Scenario)
	}
	return nil
}

func printReport(rep *scenario.Report) {
	fmt.Printf("Scenario %q: %d/%d steps\n\n", rep.Scenario, rep.Completed, rep.Steps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STEP\tOP\tRESULT\tDETAIL")
	for _, res := range rep.Results {
		result := "ok"
		detail := res.Detail
		if res.Error != "" {
			result = "error"
			detail = res.Error
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", res.Step, res.Op, result, detail)
	}
	_ = w.Flush()

	fmt.Printf("\nFinal state: workspace %q focused", rep.FocusedWorkspace)
	if rep.FocusedClient != nil {
		fmt.Printf(", client 0x%x focused", *rep.FocusedClient)
	}
	fmt.Println()

	for _, ws := range rep.Workspaces {
		if len(ws.Clients) == 0 {
			continue
		}
		ids := make([]string, len(ws.Clients))
		for i, id := range ws.Clients {
			ids[i] = fmt.Sprintf("0x%x", id)
		}
		fmt.Printf("  %s: %s\n", ws.Name, strings.Join(ids, " "))
	}

	if len(rep.Failures) > 0 {
		fmt.Println("\nFailures:")
		for _, f := range rep.Failures {
			fmt.Printf("  - %s\n", f)
		}
	}
}
