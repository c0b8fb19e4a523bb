package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ngoguened/zoo/pkg/types"
)

// paymentView is the printed form of a fee payment.
type paymentView struct {
	Fee      string          `json:"fee"`
	Inserted types.CashCount `json:"inserted"`
	Returned types.CashCount `json:"returned"`
	Accepted bool            `json:"accepted"`
	Reason   string          `json:"reason,omitempty"`
}

func newPayCmd(a *app) *cobra.Command {
	var cash []string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay the entrance fee with the given cash",
		Long: `Pay inserts cash into the entrance machine of the loaded zoo and prints the
change, or the reason the payment was refused. Cash is given as
pence=count pairs for the denominations 2000, 1000, 500, 200, 100, 50, 20
and 10.

Example:
  zoo pay --cash 1000=1
  zoo pay --cash 200=2 --cash 50=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inserted, err := parseCash(cash)
			if err != nil {
				return err
			}
			return a.runPay(cmd, inserted)
		},
	}

	cmd.Flags().StringArrayVar(&cash, "cash", nil, "cash inserted as pence=count (repeatable)")
	_ = cmd.MarkFlagRequired("cash")
	return cmd
}

func (a *app) runPay(cmd *cobra.Command, inserted types.CashCount) error {
	z, _, err := a.loadZoo()
	if err != nil {
		return err
	}

	p, payErr := z.Pay(inserted)
	if payErr != nil && !errors.Is(payErr, types.ErrFeeNotCovered) && !errors.Is(payErr, types.ErrInsufficientChange) {
		return payErr
	}

	view := paymentView{
		Fee:      types.FormatPence(p.Fee),
		Inserted: p.Inserted,
		Returned: p.Returned,
		Accepted: p.Accepted,
	}
	if payErr != nil {
		view.Reason = payErr.Error()
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if err := printJSON(out, view); err != nil {
			return err
		}
	} else if p.Accepted {
		fmt.Fprintf(out, "accepted: fee %s, change %s (%s)\n",
			view.Fee, p.Returned, types.FormatPence(p.Returned.Total()))
	} else {
		fmt.Fprintf(out, "refused: %s\nreturned: %s\n", view.Reason, p.Returned)
	}

	if !p.Accepted {
		return &exitError{code: exitUserError}
	}
	return nil
}

func newChangeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "change <pence>",
		Short: "Show the change the machine would give for an amount",
		Long: `Change computes greedy change for an amount in pence from the machine's
stock, largest denomination first. Greedy change can fail even when exact
change exists in smaller denominations.

Example:
  zoo change 370`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return a.runChange(cmd, amount)
		},
	}
}

func (a *app) runChange(cmd *cobra.Command, amount int) error {
	z, _, err := a.loadZoo()
	if err != nil {
		return err
	}

	change, err := z.MakeChange(amount)
	if errors.Is(err, types.ErrInsufficientChange) {
		return &exitError{code: exitUserError, err: err}
	}
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), change)
	}
	fmt.Fprintln(cmd.OutOrStdout(), change)
	return nil
}
