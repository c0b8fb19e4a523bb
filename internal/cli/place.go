package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngoguened/zoo/pkg/types"
)

func newPlaceCmd(a *app) *cobra.Command {
	var (
		areaID   int
		species  string
		nickname string
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Try to place a new animal in an area",
		Long: `Place checks whether a new animal could move into an area of the loaded
zoo and prints the outcome: animal_added, not_a_habitat, wrong_habitat,
habitat_full or incompatible_inhabitants. The layout file is not changed.

Example:
  zoo place --area 1 --species zebra --nickname Ziggy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := types.ParseSpecies(species)
			if err != nil {
				return err
			}
			animal, err := types.NewAnimal(nickname, sp)
			if err != nil {
				return err
			}
			return a.runPlace(cmd, areaID, animal)
		},
	}

	cmd.Flags().IntVar(&areaID, "area", 0, "id of the area (required)")
	cmd.Flags().StringVar(&species, "species", "", "species of the animal (required)")
	cmd.Flags().StringVar(&nickname, "nickname", "", "nickname of the animal (required)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("species")
	_ = cmd.MarkFlagRequired("nickname")
	return cmd
}

func (a *app) runPlace(cmd *cobra.Command, areaID int, animal *types.Animal) error {
	z, _, err := a.loadZoo()
	if err != nil {
		return err
	}

	outcome, err := z.AddAnimal(areaID, animal)
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		if err := printJSON(cmd.OutOrStdout(), map[string]any{
			"area":     areaID,
			"nickname": animal.Nickname,
			"species":  animal.Species,
			"outcome":  outcome.String(),
			"code":     outcome.Code(),
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), outcome)
	}

	if !outcome.Added() {
		return &exitError{code: exitUserError}
	}
	return nil
}
