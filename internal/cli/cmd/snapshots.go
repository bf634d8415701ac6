package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bnema/wring/internal/application/usecase"
	"github.com/bnema/wring/internal/domain/entity"
)

var (
	snapshotsJSON bool
	pruneKeep     int
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage desktop state snapshots",
	Long: `View, verify, and manage desktop state snapshots.

Snapshots capture every workspace's client stack and focus position.
The demo playground autosaves them, and 'wring simulate' scenarios can
store them with the save-snapshot op.

Run without arguments to list saved snapshots.`,
	RunE: runSnapshotsList,
}

// snapshots list
var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots",
	RunE:  runSnapshotsList,
}

// snapshots show <label>
var snapshotsShowCmd = &cobra.Command{
	Use:   "show <label>",
	Short: "Show one snapshot's layout",
	Long:  `Print the workspaces, client stacks and focus positions stored in a snapshot.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsShow,
}

// snapshots restore-check <label>
var snapshotsRestoreCheckCmd = &cobra.Command{
	Use:   "restore-check <label>",
	Short: "Verify a snapshot rebuilds into a desktop",
	Long: `Load a snapshot and rebuild a desktop from it without touching any
live state, then print the layout it would restore.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotsRestoreCheck,
}

// snapshots delete <label>
var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <label>",
	Short: "Delete a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsDelete,
}

// snapshots prune
var snapshotsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent snapshots",
	RunE:  runSnapshotsPrune,
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsShowCmd)
	snapshotsCmd.AddCommand(snapshotsRestoreCheckCmd)
	snapshotsCmd.AddCommand(snapshotsDeleteCmd)
	snapshotsCmd.AddCommand(snapshotsPruneCmd)
	snapshotsCmd.PersistentFlags().BoolVar(&snapshotsJSON, "json", false, "output as JSON")
	snapshotsPruneCmd.Flags().IntVar(&pruneKeep, "keep", 0, "snapshots to keep (default session.max_snapshots)")
}

func runSnapshotsList(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	infos, err := app.SnapshotUC.List(app.Ctx())
	if err != nil {
		return err
	}

	if snapshotsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	if len(infos) == 0 {
		fmt.Println("No snapshots saved.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tLABEL\tWORKSPACES\tCLIENTS\tSAVED")
	for _, info := range infos {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
			info.ID,
			info.Label,
			info.WorkspaceCount,
			info.ClientCount,
			usecase.GetRelativeTime(info.SavedAt),
		)
	}

	return w.Flush()
}

func runSnapshotsShow(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	snap, err := app.SnapshotUC.Get(app.Ctx(), args[0])
	if err != nil {
		return err
	}

	if snapshotsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Printf("Snapshot %q, saved %s\n", args[0], usecase.GetRelativeTime(snap.SavedAt))
	printSnapshotLayout(snap)
	return nil
}

func runSnapshotsRestoreCheck(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	snap, err := app.SnapshotUC.Get(app.Ctx(), args[0])
	if err != nil {
		return err
	}

	d, err := entity.DesktopFromSnapshot(snap)
	if err != nil {
		return fmt.Errorf("snapshot %q does not restore: %w", args[0], err)
	}

	fmt.Printf("Snapshot %q restores cleanly: %d workspaces, %d clients\n",
		args[0], d.WorkspaceCount(), d.ClientCount())
	printSnapshotLayout(snap)
	return nil
}

func runSnapshotsDelete(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	// Surface a clear error for unknown labels; the store itself treats
	// deleting a missing row as a no-op.
	if _, err := app.SnapshotUC.Get(app.Ctx(), args[0]); err != nil {
		return err
	}

	if err := app.SnapshotUC.Delete(app.Ctx(), args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted snapshot %q\n", args[0])
	return nil
}

func runSnapshotsPrune(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	keep := pruneKeep
	if keep <= 0 {
		keep = app.Config.Session.MaxSnapshots
	}
	if keep <= 0 {
		return fmt.Errorf("nothing to prune: pass --keep or set session.max_snapshots")
	}

	removed, err := app.SnapshotUC.Prune(app.Ctx(), keep)
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d snapshot(s), kept the %d most recent.\n", removed, keep)
	return nil
}

// printSnapshotLayout prints the stored workspaces with their stacks, top
// first. The focused workspace is starred and each workspace's focused
// client gets a cursor.
func printSnapshotLayout(snap *entity.StateSnapshot) {
	for i, ws := range snap.Workspaces {
		marker := " "
		if i == snap.FocusedWorkspace {
			marker = "*"
		}
		fmt.Printf("\n%s %s\n", marker, ws.Name)

		if len(ws.Clients) == 0 {
			fmt.Println("    (empty)")
			continue
		}
		for j, c := range ws.Clients {
			cursor := "  "
			if j == ws.FocusedClient {
				cursor = "> "
			}
			flags := ""
			if c.Floating {
				flags += " [float]"
			}
			if c.Urgent {
				flags += " [urgent]"
			}
			fmt.Printf("  %s%s %s%s\n", cursor, c.ID, snapshotClientLabel(c), flags)
		}
	}
}

func snapshotClientLabel(c entity.ClientSnapshot) string {
	switch {
	case c.Title != "":
		return c.Title
	case c.Class != "":
		return c.Class
	default:
		return "(untitled)"
	}
}
