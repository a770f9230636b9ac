package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/spf13/cobra"
)

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "classify NAME...",
		Short:   "Detect brand and category from an item name",
		Example: `  resalectl classify "Nike Air Max 90 sneakers"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := domain.ParseItemName(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "brand:    %s\n", orDash(result.DetectedBrand))
			fmt.Fprintf(out, "category: %s\n", orDash(result.DetectedCategory))
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in match order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, c := range domain.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
		},
	}
}
