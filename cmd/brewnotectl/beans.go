package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewnote/brewnote/internal/client"
	"github.com/brewnote/brewnote/internal/model"
)

func init() {
	beansCmd := &cobra.Command{Use: "beans", Short: "Bean catalogue operations"}

	// list
	var query string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List beans, optionally filtered by a search query",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			out, err := c.ListBeans(cmd.Context(), query)
			if err != nil {
				return err
			}
			for _, b := range out.Beans {
				score := ""
				if b.DisplayScore > 0 {
					score = fmt.Sprintf("  %.2f", b.DisplayScore)
				}
				fmt.Fprintf(os.Stdout, "%s  %s / %s%s\n", b.ID, b.Name, b.Roastery, score)
			}
			fmt.Fprintf(os.Stdout, "total: %d\n", out.Count)
			return nil
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Search query (name, roastery, origin, process)")
	beansCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get BEAN_ID",
		Short: "Show one bean with its tasting history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			b, err := c.GetBean(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s / %s (%s, %s)\n", b.Name, b.Roastery, b.Country, b.Process)
			if b.DisplayScore > 0 {
				fmt.Fprintf(os.Stdout, "score: %.2f\n", b.DisplayScore)
			}
			for _, rec := range b.TastingRecords {
				fmt.Fprintf(os.Stdout, "  [%s] %.0f점 %s\n", rec.Date, rec.Score, strings.ReplaceAll(rec.Memo, "\n", " / "))
			}
			return nil
		},
	}
	beansCmd.AddCommand(getCmd)

	// add
	var name, roastery, country, process, roastDate string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bean to the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			c := client.New(apiFlag)
			b, err := c.CreateBean(cmd.Context(), model.Bean{
				Name: name, Roastery: roastery, Country: country,
				Process: process, RoastDate: roastDate,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, b.ID)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Bean name (required)")
	addCmd.Flags().StringVarP(&roastery, "roastery", "r", "", "Roastery")
	addCmd.Flags().StringVarP(&country, "country", "c", "", "Origin country")
	addCmd.Flags().StringVarP(&process, "process", "p", "", "Process")
	addCmd.Flags().StringVarP(&roastDate, "roast-date", "d", "", "Roast date")
	_ = addCmd.MarkFlagRequired("name")
	beansCmd.AddCommand(addCmd)

	// taste
	var score float64
	var memo string
	var notes []string
	tasteCmd := &cobra.Command{
		Use:   "taste BEAN_ID",
		Short: "Log a tasting record against a bean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			rec, err := c.AddRecord(cmd.Context(), args[0], model.TastingRecord{
				Score: score, Memo: memo, TastingNotes: notes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, rec.ID)
			return nil
		},
	}
	tasteCmd.Flags().Float64VarP(&score, "score", "s", 0, "Score (0-100)")
	tasteCmd.Flags().StringVarP(&memo, "memo", "m", "", "Tasting memo")
	tasteCmd.Flags().StringSliceVarP(&notes, "notes", "t", nil, "Tasting notes (repeatable)")
	beansCmd.AddCommand(tasteCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete BEAN_ID",
		Short: "Remove a bean from the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.New(apiFlag).DeleteBean(cmd.Context(), args[0])
		},
	}
	beansCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(beansCmd)
}
