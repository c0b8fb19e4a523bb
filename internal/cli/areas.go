package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// areaView is the printed form of one area.
type areaView struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Habitat   bool     `json:"habitat"`
	Capacity  int      `json:"capacity"`
	Residents []string `json:"residents"`
	Adjacent  []int    `json:"adjacent"`
}

func newAreasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the areas of the zoo",
		Long: `List every area with its id, kind, capacity, residents and outgoing paths.

Example:
  zoo areas
  zoo areas --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAreas(cmd)
		},
	}
}

func (a *app) runAreas(cmd *cobra.Command) error {
	z, ids, err := a.loadZoo()
	if err != nil {
		return err
	}
	names := namesByID(ids)

	var views []areaView
	for _, id := range z.AreaIDs() {
		area, err := z.GetArea(id)
		if err != nil {
			return err
		}
		residents := []string{}
		for _, animal := range area.Animals() {
			residents = append(residents, animal.Nickname)
		}
		views = append(views, areaView{
			ID:        id,
			Name:      names[id],
			Kind:      area.Kind().String(),
			Habitat:   area.IsHabitat(),
			Capacity:  area.Capacity(),
			Residents: residents,
			Adjacent:  area.AdjacentAreas(),
		})
	}

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), views)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKIND\tCAPACITY\tRESIDENTS\tPATHS TO")
	for _, v := range views {
		capacity := "-"
		if v.Habitat {
			capacity = fmt.Sprintf("%d/%d", len(v.Residents), v.Capacity)
		}
		adjacent := make([]string, 0, len(v.Adjacent))
		for _, id := range v.Adjacent {
			adjacent = append(adjacent, strconv.Itoa(id))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			v.ID, v.Name, v.Kind, capacity,
			strings.Join(v.Residents, ", "), strings.Join(adjacent, " "))
	}
	return tw.Flush()
}
