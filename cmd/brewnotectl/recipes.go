package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewnote/brewnote/internal/client"
	"github.com/brewnote/brewnote/internal/views"
)

func init() {
	recipesCmd := &cobra.Command{Use: "recipes", Short: "Recipe operations"}

	// list
	var drinkType, dripper, roastLevel, beanAmount string
	var showFacets bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by facets",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			out, err := c.ListRecipes(cmd.Context(), views.RecipeFilter{
				Type: drinkType, Dripper: dripper, RoastLevel: roastLevel, BeanAmount: beanAmount,
			})
			if err != nil {
				return err
			}
			for _, r := range out.Recipes {
				fmt.Fprintf(os.Stdout, "%s  %s [%s, %s, %.0fg]\n", r.ID, r.Title, r.Type, r.Dripper, r.BeanAmount)
			}
			fmt.Fprintf(os.Stdout, "total: %d\n", out.Count)
			if showFacets {
				fmt.Fprintf(os.Stdout, "types:       %s\n", strings.Join(out.Facets.Types, ", "))
				fmt.Fprintf(os.Stdout, "drippers:    %s\n", strings.Join(out.Facets.Drippers, ", "))
				fmt.Fprintf(os.Stdout, "roastLevels: %s\n", strings.Join(out.Facets.RoastLevels, ", "))
				fmt.Fprintf(os.Stdout, "beanAmounts: %s\n", strings.Join(out.Facets.BeanAmounts, ", "))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&drinkType, "type", "", "Drink type facet (Hot, Iced, Hot/Iced)")
	listCmd.Flags().StringVar(&dripper, "dripper", "", "Dripper facet")
	listCmd.Flags().StringVar(&roastLevel, "roast", "", "Roast level facet")
	listCmd.Flags().StringVar(&beanAmount, "amount", "", "Bean amount facet in grams")
	listCmd.Flags().BoolVar(&showFacets, "facets", false, "Print the available facet values")
	recipesCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get RECIPE_ID",
		Short: "Show one recipe with its pour timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(apiFlag)
			r, err := c.GetRecipe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%s [%s, %s]\n", r.Title, r.Type, r.Dripper)
			fmt.Fprintf(os.Stdout, "%.0fg / %.0fg water / %.0f°C\n", r.BeanAmount, r.WaterAmount, r.WaterTemp)
			for _, s := range r.Steps {
				fmt.Fprintf(os.Stdout, "  %4.0fs-%4.0fs  %-12s %.0fg (+%.0fg)\n",
					s.StartTime, s.EndTime, s.Label, s.WaterAmount, s.AddedAmount)
			}
			return nil
		},
	}
	recipesCmd.AddCommand(getCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete RECIPE_ID",
		Short: "Remove a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.New(apiFlag).DeleteRecipe(cmd.Context(), args[0])
		},
	}
	recipesCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(recipesCmd)
}
