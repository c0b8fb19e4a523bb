package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ngoguened/zoo/pkg/types"
)

func newPathCmd(a *app) *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Check paths through the zoo",
	}

	checkCmd := &cobra.Command{
		Use:   "check <area-id>...",
		Short: "Check whether a visitor can walk the given areas in order",
		Long: `Check reports whether each consecutive pair of areas is joined by a path.
Exits with status 1 when the path is not allowed.

Example:
  zoo path check 0 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPathCheck(cmd, args)
		},
	}
	pathCmd.AddCommand(checkCmd)
	return pathCmd
}

func (a *app) runPathCheck(cmd *cobra.Command, args []string) error {
	ids, err := parseAreaIDs(args)
	if err != nil {
		return err
	}
	z, _, err := a.loadZoo()
	if err != nil {
		return err
	}

	allowed := z.IsPathAllowed(ids)
	if a.flags.jsonMode {
		if err := printJSON(cmd.OutOrStdout(), map[string]any{"path": ids, "allowed": allowed}); err != nil {
			return err
		}
	} else if allowed {
		fmt.Fprintln(cmd.OutOrStdout(), "allowed")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "not allowed")
	}

	if !allowed {
		return &exitError{code: exitUserError}
	}
	return nil
}

func newVisitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "visit <area-id>...",
		Short: "List the animals a visitor sees along a path",
		Long: `Visit walks the given areas in order and prints the nicknames of the animals
in every habitat passed, in the order they moved in. A habitat visited twice is
listed twice.

Example:
  zoo visit 0 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVisit(cmd, args)
		},
	}
}

func (a *app) runVisit(cmd *cobra.Command, args []string) error {
	ids, err := parseAreaIDs(args)
	if err != nil {
		return err
	}
	z, _, err := a.loadZoo()
	if err != nil {
		return err
	}

	names, err := z.Visit(ids)
	if errors.Is(err, types.ErrInvalidPath) {
		return &exitError{code: exitUserError, err: err}
	}
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), names)
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no animals seen")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
	return nil
}

func newUnreachableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unreachable",
		Short: "List areas that cannot be reached from the entrance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUnreachable(cmd)
		},
	}
}

func (a *app) runUnreachable(cmd *cobra.Command) error {
	z, ids, err := a.loadZoo()
	if err != nil {
		return err
	}

	unreachable := z.FindUnreachableAreas()
	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), unreachable)
	}
	if len(unreachable) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "every area is reachable")
		return nil
	}
	names := namesByID(ids)
	for _, id := range unreachable {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, names[id])
	}
	return nil
}
