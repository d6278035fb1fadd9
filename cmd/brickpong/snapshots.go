package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickpong/internal/storage"
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage saved games",
	Long: `List or delete saved games. Games are saved from the play screen with
Ctrl+S, or by simulate --save-slot, and resumed with play --resume <slot>.`,
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games",
	Args:  cobra.NoArgs,
	Run:   runSnapshotsList,
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <slot>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runSnapshotsDelete,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsDeleteCmd)
}

func runSnapshotsList(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	infos, err := store.ListSnapshots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing snapshots: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No saved games.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %6s  %s\n", "Slot", "State", "Bytes", "Saved")
	fmt.Printf("  %-16s  %-8s  %6s  %s\n", "----", "-----", "-----", "-----")
	for _, info := range infos {
		fmt.Printf("  %-16s  %-8s  %6d  %s\n", info.Slot, info.State, info.Size, info.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runSnapshotsDelete(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	slot := args[0]
	if err := store.DeleteSnapshot(slot); err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			fmt.Fprintf(os.Stderr, "No saved game in slot %q\n", slot)
		} else {
			fmt.Fprintf(os.Stderr, "Error deleting snapshot: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Deleted slot %q\n", slot)
}
