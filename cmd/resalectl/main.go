// Command resalectl runs the currency converter and item classifier offline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "resalectl",
		Short:         "Resale hub tooling",
		Long:          `Convert prices between the supported currencies and detect brand and category from item names, without a running server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(convertCmd())
	root.AddCommand(rateCmd())
	root.AddCommand(currenciesCmd())
	root.AddCommand(classifyCmd())
	root.AddCommand(categoriesCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
