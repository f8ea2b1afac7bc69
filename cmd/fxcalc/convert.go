package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func convertCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM TO...",
		Short: "Convert an amount into one or more currencies",
		Long: `Convert AMOUNT in currency FROM into up to four currencies. A comma is
accepted as decimal separator. When rates cannot be fetched, the cached
rates are used and the output is marked offline.`,
		Example: `  fxcalc convert 100 USD EUR GBP
  fxcalc convert 12,5 eur jpy`,
		Args: cobra.RangeArgs(3, 2+models.MaxTargets),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, closeFn, err := openConverter(v)
			if err != nil {
				return err
			}
			defer closeFn()

			state, err := convertAmount(cmd.Context(), converter, args[0], args[1], args[2:])
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state, args[0])
			return nil
		},
	}
}

func ratesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "rates BASE TO...",
		Short: "Show the rate of BASE against up to four currencies",
		Args:  cobra.RangeArgs(2, 1+models.MaxTargets),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, closeFn, err := openConverter(v)
			if err != nil {
				return err
			}
			defer closeFn()

			state, err := convertAmount(cmd.Context(), converter, "1", args[0], args[1:])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, t := range state.Targets {
				amount := t.Amount
				if amount == "" {
					amount = "-"
				}
				fmt.Fprintf(w, "1 %s = %s %s\n", state.BaseCurrency, amount, t.Code)
			}
			printFooter(w, state)
			return nil
		},
	}
}

func currenciesCmd(v *viper.Viper) *cobra.Command {
	var update bool

	cmd := &cobra.Command{
		Use:   "currencies [SEARCH]",
		Short: "List known currencies",
		Long: `List the known currency codes and names, optionally filtered by a
case-insensitive search on code or name. With --update the list is fetched
again and cached together with the latest rates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converter, closeFn, err := openConverter(v)
			if err != nil {
				return err
			}
			defer closeFn()

			if update {
				converter.Bootstrap(cmd.Context())
			}

			var search string
			if len(args) == 1 {
				search = args[0]
			}

			table := converter.Currencies()
			codes := services.FilterCodes(table, models.ConversionState{}, services.PickerClosed, uuid.Nil, search)
			w := cmd.OutOrStdout()
			for _, code := range codes {
				fmt.Fprintf(w, "%s\t%s\n", code, table[code])
			}
			if len(codes) == 0 {
				fmt.Fprintf(w, "no currency matches %q\n", strings.TrimSpace(search))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&update, "update", false, "fetch the currency list before printing")
	return cmd
}
