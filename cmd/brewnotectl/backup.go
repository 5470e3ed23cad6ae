package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brewnote/brewnote/internal/client"
)

func init() {
	backupCmd := &cobra.Command{Use: "backup", Short: "Journal backup and restore"}

	// export
	var outFile string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Download the journal to a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			snap, suggested, err := c.ExportSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			name := outFile
			if name == "" {
				name = suggested
			}
			if name == "" {
				name = "brewnote_backup.json"
			}
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, data, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "wrote %s (%d beans, %d recipes)\n", name, len(snap.Beans), len(snap.Recipes))
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (defaults to the server's suggested name)")
	backupCmd.AddCommand(exportCmd)

	// import
	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore the journal from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			c := client.New(apiFlag)
			beans, recipes, err := c.ImportSnapshot(cmd.Context(), raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "imported %d beans, %d recipes\n", beans, recipes)
			return nil
		},
	}
	backupCmd.AddCommand(importCmd)

	rootCmd.AddCommand(backupCmd)
}
