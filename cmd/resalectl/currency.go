package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/spf13/cobra"
)

func parsePair(from, to string) (domain.CurrencyCode, domain.CurrencyCode, error) {
	fromCode, err := domain.ParseCurrencyCode(from)
	if err != nil {
		return "", "", err
	}
	toCode, err := domain.ParseCurrencyCode(to)
	if err != nil {
		return "", "", err
	}
	return fromCode, toCode, nil
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert AMOUNT FROM TO",
		Short:   "Convert an amount between currencies",
		Example: "  resalectl convert 100 EUR USD",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			from, to, err := parsePair(args[1], args[2])
			if err != nil {
				return err
			}
			converted, err := domain.ConvertCurrency(amount, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strconv.FormatFloat(converted, 'f', -1, 64), to)
			return nil
		},
	}
}

func rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate FROM TO",
		Short: "Show how many units of TO one unit of FROM buys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			rate, err := domain.GetExchangeRate(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "1 %s = %s %s\n", from, strconv.FormatFloat(rate, 'f', 6, 64), to)
			return nil
		},
	}
}

func currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List supported currencies and their rate against EUR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tRATE")
			for _, code := range domain.SupportedCurrencies() {
				rate, err := domain.RateFor(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", code, strconv.FormatFloat(rate, 'f', -1, 64))
			}
			return w.Flush()
		},
	}
}
