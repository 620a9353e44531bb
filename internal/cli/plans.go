package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/atrofac/atrofac/internal/control"
	"github.com/atrofac/atrofac/internal/models"
)

var plansCmd = &cobra.Command{
	Use:     "plans",
	Aliases: []string{"ls", "list"},
	Short:   "List plans in menu order",
	Args:    cobra.NoArgs,
	RunE:    runPlans,
}

func runPlans(cmd *cobra.Command, args []string) error {
	eng, _, closeDriver, err := loadEngine(false)
	if err != nil {
		return err
	}
	defer closeDriver()

	fmt.Printf("%s %s\n\n", styleLabel.Render("Config:"), styleValue.Render(eng.ConfigFile()))

	active := eng.ActivePlan()
	for i, name := range eng.AvailablePlans() {
		plan := eng.Plan(name)
		marker := "  "
		title := styleValue.Render(name)
		if active != nil && active.Name == name {
			marker = badgeActive.Render("● ")
			title = badgeActive.Render(name)
		}
		fmt.Printf("%s%s %s %s\n", marker, styleHint.Render(fmt.Sprintf("%d.", i+1)), title, describePlan(plan))
	}

	if active == nil {
		fmt.Printf("\n%s\n", styleWarning.Render("No plan is active."))
	}
	return nil
}

// describePlan renders the power plan, interval and curves of p.
func describePlan(p *models.Plan) string {
	if p == nil {
		return ""
	}
	parts := []string{badgePower.Render(string(p.PowerPlan))}

	interval := control.DefaultInterval
	if p.UpdateIntervalSec != nil {
		interval = time.Duration(*p.UpdateIntervalSec) * time.Second
	}
	parts = append(parts, styleHint.Render("every "+interval.String()))

	if p.CPUCurve != "" {
		parts = append(parts, styleHint.Render("cpu curve"))
	}
	if p.GPUCurve != "" {
		parts = append(parts, styleHint.Render("gpu curve"))
	}
	return strings.Join(parts, styleHint.Render(" · "))
}
