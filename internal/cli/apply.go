package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply [plan]",
	Short: "Apply a plan once",
	Long: `Apply a plan to the hardware once.

With a plan name, the plan becomes the active plan and the configuration is
saved before it is applied. Without one, the active plan is applied again.
A running tray picks the new plan up on its next reload.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runApply,
}

func runApply(cmd *cobra.Command, args []string) error {
	eng, _, closeDriver, err := loadEngine(true)
	if err != nil {
		return err
	}
	defer closeDriver()

	if len(args) == 1 {
		name := args[0]
		if eng.Plan(name) == nil {
			msg := fmt.Sprintf("unknown plan %q", name)
			if s := suggestPlan(name, eng.AvailablePlans()); s != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			return errors.New(msg)
		}
		eng.SetActivePlan(name)
		if err := eng.SaveConfiguration(); err != nil {
			return err
		}
	}

	active := eng.ActivePlan()
	if active == nil {
		fmt.Println(styleWarning.Render("No plan is active, nothing to apply."))
		return nil
	}
	if err := eng.Apply(); err != nil {
		return err
	}

	fmt.Printf("%s %s\n", styleSuccess.Render("Applied"), styleCommand.Render(active.Name))
	return nil
}

// suggestPlan returns the plan name closest to name, or "" when nothing is
// close enough to be a likely typo.
func suggestPlan(name string, plans []string) string {
	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for _, p := range plans {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(p))
		if d <= max(2, len(p)/3) {
			candidates = append(candidates, candidate{p, d})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	return candidates[0].name
}
