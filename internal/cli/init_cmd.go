package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// profileAnswers collects the raw wizard input before conversion into a
// creation request. Numeric fields stay strings because huh inputs
// validate, not convert.
type profileAnswers struct {
	objective   string
	weeks       string
	hours       string
	minSessions string
	restDays    []string
	commitments string
	constraints string
	rules       string
}

func newInitCmd(flags *rootFlags, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or replace the profile interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFor(cmd.Context(), flags, version)
			if err != nil {
				return err
			}
			if !app.IsInteractive() {
				return errors.New("init needs an interactive terminal; POST /api/v1/profile instead")
			}
			return runInitWizard(cmd.Context(), app)
		},
	}
}

func runInitWizard(ctx context.Context, app *App) error {
	if existing, err := app.Profiles.Get(ctx); err == nil {
		replace := false
		fmt.Println(dim(fmt.Sprintf("A profile already exists (objective v%d).", existing.Objective.Version)))
		if err := confirmForm("Replace it? The objective version will be bumped.", &replace).Run(); err != nil {
			return err
		}
		if !replace {
			return nil
		}
	}

	answers := profileAnswers{weeks: "12", minSessions: "3"}
	if err := profileForm(&answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	req := answers.request()
	profile, err := app.Profiles.Save(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(profileSummary(profile))
	fmt.Println()
	fmt.Println(dim("Next: praxis serve, then generate the week's plan from the browser,"))
	fmt.Println(dim("or POST /api/v1/plans/generate."))
	return nil
}

// restDayNames are stored as prose; the planner reads them from the
// prompt, so they are not the plan's Mon..Sun labels.
var restDayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// profileForm builds the multi-step wizard. Groups mirror the three
// parts of a profile: objective, hard constraints, non-negotiables.
func profileForm(a *profileAnswers) *huh.Form {
	weekdayOptions := make([]huh.Option[string], 0, len(restDayNames))
	for _, day := range restDayNames {
		label := strings.ToUpper(day[:1]) + day[1:]
		weekdayOptions = append(weekdayOptions, huh.NewOption(label, day))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("What are you trying to achieve?").
				Placeholder("Run a sub-45 10k by June").
				Validate(validateRequired("objective")).
				Value(&a.objective),
			huh.NewInput().
				Title("Over how many weeks?").
				Validate(validatePositiveInt).
				Value(&a.weeks),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours available per week").
				Placeholder("6").
				Validate(validatePositiveFloat).
				Value(&a.hours),
			huh.NewText().
				Title("Fixed commitments (one per line, optional)").
				Placeholder("Tue 18:00 team meeting").
				Value(&a.commitments),
			huh.NewText().
				Title("Physical constraints (one per line, optional)").
				Value(&a.constraints),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum sessions per week").
				Validate(validateNonNegativeInt).
				Value(&a.minSessions),
			huh.NewMultiSelect[string]().
				Title("Rest days").
				Options(weekdayOptions...).
				Value(&a.restDays),
			huh.NewText().
				Title("Other rules (one per line, optional)").
				Placeholder("No sessions after 21:00").
				Value(&a.rules),
		),
	).WithTheme(praxisHuhTheme()).WithShowHelp(true)
}

// request converts wizard answers into the same request the HTTP API
// accepts, so validation stays in one place.
func (a profileAnswers) request() contract.ProfileCreateRequest {
	return contract.ProfileCreateRequest{
		ObjectiveDescription:     a.objective,
		DurationWeeks:            parseInt(a.weeks, 1),
		AvailableHoursPerWeek:    parseFloat(a.hours, 1),
		MinimumTrainingFrequency: parseInt(a.minSessions, 0),
		RestDays:                 a.restDays,
		FixedCommitments:         splitList(a.commitments),
		PhysicalConstraints:      splitList(a.constraints),
		OtherRules:               splitList(a.rules),
	}
}

func profileSummary(p *domain.Profile) string {
	var b strings.Builder
	b.WriteString(header("Profile saved"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styleBold.Render("Objective:"), p.Objective.Description))
	b.WriteString(fmt.Sprintf("%s %s over %d weeks (version %d)\n",
		styleBold.Render("Horizon:"), dim(p.Objective.ID), p.Objective.DurationWeeks, p.Objective.Version))
	b.WriteString(fmt.Sprintf("%s %.1f h/week, at least %d sessions\n",
		styleBold.Render("Capacity:"), p.HardConstraints.AvailableHoursPerWeek, p.NonNegotiables.MinimumTrainingFrequency))
	if len(p.NonNegotiables.RestDays) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", styleBold.Render("Rest days:"), strings.Join(p.NonNegotiables.RestDays, ", ")))
	}
	if len(p.HardConstraints.FixedCommitments) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", styleBold.Render("Commitments:"), strings.Join(p.HardConstraints.FixedCommitments, "; ")))
	}
	return strings.TrimRight(b.String(), "\n")
}
