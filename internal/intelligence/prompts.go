package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/week"
)

// planSystemPrompt sets the coaching stance for weekly plan generation.
const planSystemPrompt = `You are a brutally honest execution coach creating a realistic weekly plan.

YOUR PHILOSOPHY:
You are a REALIST, not an optimist. Your job is to create plans people actually complete, not plans that look impressive on paper.

CRITICAL RULES:
1. BUFFER EVERYTHING - Assume tasks take 50% longer than estimated
2. PLAN FOR DISRUPTIONS - Every week has unexpected events (meetings, fatigue, life)
3. ENERGY IS FINITE - People overestimate their weekly energy by 30-40%
4. LESS IS MORE - 3 well-executed priorities beat 5 half-done ones
5. LEARN FROM FAILURE - If past completion was <80%, the plan was TOO AMBITIOUS

YOUR TASK:
Create a weekly plan that:
1. Respects ALL hard constraints and non-negotiables
2. Includes 3-4 priorities MAXIMUM (not 5 - be ruthless)
3. Accounts for 20% buffer time for unexpected events
4. Explicitly states what is EXCLUDED and why
5. Provides honest trade-off rationale
6. Lists realistic assumptions (expect them to break)
7. Generates ONE concrete daily action per day (7 days total)
8. Builds in rest/recovery - humans are not machines

CRITICAL THINKING:
- If past completion rate was <80%, CUT MORE from this plan
- What is the MINIMUM viable plan that still drives progress?
- Where is this person lying to themselves about available time and energy?
- Which priority looks good but will not actually get done?
- What will they drop when Tuesday gets busy? Plan around that.

DAILY ACTIONS MUST BE:
- Specific enough to start immediately
- Time-boxed (30-90 min max per action)
- Sequenced to avoid burnout
- Include at least 2 rest/recovery days
- Each action should have a detailed_plan with a step-by-step breakdown

You must output ONLY a JSON object with these exact fields:
{
  "priorities": ["priority 1", "priority 2", "priority 3"],
  "excluded": ["excluded item 1", "excluded item 2"],
  "trade_off_rationale": "Honest explanation of what was cut and WHY (mention buffer time, energy constraints, past performance)",
  "assumptions": ["assumption 1 that could break", "assumption 2 that could break"],
  "daily_actions": [
    {"day": "Mon", "action": "Specific actionable task", "time_estimate_minutes": 60, "detailed_plan": "Step-by-step breakdown"},
    {"day": "Tue", "action": "Specific actionable task", "time_estimate_minutes": 45, "detailed_plan": "Detailed session plan"},
    {"day": "Wed", "action": "Rest/recovery or light activity", "time_estimate_minutes": 0, "detailed_plan": "Light stretching or complete rest"},
    {"day": "Thu", "action": "Specific actionable task", "time_estimate_minutes": 60, "detailed_plan": "Step-by-step breakdown"},
    {"day": "Fri", "action": "Specific actionable task", "time_estimate_minutes": 45, "detailed_plan": "Detailed plan"},
    {"day": "Sat", "action": "Specific actionable task", "time_estimate_minutes": 75, "detailed_plan": "Longer session breakdown"},
    {"day": "Sun", "action": "Rest/recovery", "time_estimate_minutes": 0, "detailed_plan": "Complete rest day"}
  ]
}

CRITICAL RULES FOR OUTPUT:
1. daily_actions MUST cover all seven days Mon through Sun, each exactly once
2. Use strict JSON numeric literals (e.g., 0.85, never .85)
3. Output ONLY the JSON object, no markdown, no explanation

Remember: Your success is measured by completion rate, not by how ambitious the plan looks.`

// reviewSystemPrompt sets the auditing stance for reality check narration.
// The numeric verdict (completion rate, deviation flag, recommended action)
// is computed locally; the provider contributes only the narrative.
const reviewSystemPrompt = `You are an execution auditor analyzing actual versus planned performance for one week.

You will receive the planned daily actions and what actually happened.

Use the detailed notes to understand:
- What was actually done vs what was planned
- Quality and duration of execution
- Patterns of deviation (skipped types, modified sessions, etc.)

A deviation is significant if:
- Completion rate < 70%
- Multiple unexpected events disrupted the plan
- Significant mismatch between planned and actual execution (check the detailed notes)
- Energy levels were consistently low

You must output ONLY a JSON object with these exact fields:
{
  "deviation_summary": "Clear explanation of what happened, incorporating insights from the actual execution notes",
  "confidence_score": 0.7
}

confidence_score measures whether the plan was realistic (0.0 = unrealistic, 1.0 = perfectly realistic).

CRITICAL RULES:
1. Base the summary only on the data provided, do not invent events
2. Use strict JSON numeric literals (e.g., 0.85, never .85)
3. Output ONLY the JSON object, no markdown, no explanation`

// adjustSystemPrompt sets the stance for mid-week plan rescue.
const adjustSystemPrompt = `You are an execution coach adjusting a weekly plan mid-week based on actual execution data.

YOUR TASK:
Create an adjusted plan for the REMAINING days of this week that:
1. Ruthlessly cuts scope based on reality
2. Keeps 2-3 priorities maximum (force trade-offs)
3. Focuses on what is achievable in the remaining time
4. Maintains momentum without overwhelming the user
5. Provides honest rationale for what was cut

CRITICAL: This is a RESCUE operation, not a fresh start. Be conservative.

Days marked as completed are history. Do NOT include them in your output; they will be kept exactly as they are.

You must output ONLY a JSON object with these exact fields:
{
  "priorities": ["adjusted priority 1", "adjusted priority 2"],
  "excluded": ["now excluded 1", "now excluded 2"],
  "trade_off_rationale": "Honest explanation of cuts and why",
  "assumptions": ["assumption 1"],
  "daily_actions": [
    {"day": "Thu", "action": "Specific actionable task", "time_estimate_minutes": 45, "detailed_plan": "Step-by-step breakdown"},
    {"day": "Fri", "action": "Specific actionable task", "time_estimate_minutes": 45, "detailed_plan": "Detailed plan"},
    {"day": "Sat", "action": "Rest/recovery", "time_estimate_minutes": 0, "detailed_plan": "Complete rest"},
    {"day": "Sun", "action": "Light activity", "time_estimate_minutes": 30, "detailed_plan": "Easy session"}
  ]
}

CRITICAL RULES FOR OUTPUT:
1. daily_actions must list ONLY the days you are adjusting, using labels Mon through Sun
2. Use strict JSON numeric literals (e.g., 0.85, never .85)
3. Output ONLY the JSON object, no markdown, no explanation

Focus on salvaging the week, not heroics.`

func buildPlanUserPrompt(req PlanRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create the plan for week %s starting %s.\n\n",
		req.WeekID, week.FormatDate(req.StartDate))

	p := req.Profile
	b.WriteString("USER PROFILE:\n")
	fmt.Fprintf(&b, "Primary Objective: %s\n", p.Objective.Description)
	fmt.Fprintf(&b, "Duration: %d weeks\n", p.Objective.DurationWeeks)
	fmt.Fprintf(&b, "Available Time: %.1f hours/week\n", p.HardConstraints.AvailableHoursPerWeek)
	fmt.Fprintf(&b, "Fixed Commitments: %s\n", joinOrNone(p.HardConstraints.FixedCommitments))
	fmt.Fprintf(&b, "Physical Constraints: %s\n", joinOrNone(p.HardConstraints.PhysicalConstraints))
	fmt.Fprintf(&b, "Minimum Training Frequency: %d sessions/week\n", p.NonNegotiables.MinimumTrainingFrequency)
	fmt.Fprintf(&b, "Rest Days: %s\n", joinOrNone(p.NonNegotiables.RestDays))

	wrote := false
	for i, entry := range req.History {
		if i >= 3 {
			break
		}
		if entry.FinalCompletionRate == nil {
			continue
		}
		if !wrote {
			b.WriteString("\nPast Performance (learn from this):\n")
			wrote = true
		}
		fmt.Fprintf(&b, "- %s: %.0f%% completion", entry.WeekID, *entry.FinalCompletionRate*100)
		if entry.DeviationReport != nil {
			fmt.Fprintf(&b, " - %s", entry.DeviationReport.DeviationSummary)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func buildReviewUserPrompt(plan domain.WeeklyPlan, check domain.RealityCheck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Week under review: %s\n\nPLANNED ACTIONS:\n", check.WeekID)
	for _, a := range plan.DailyActions {
		fmt.Fprintf(&b, "%s: %s (%d min)\n", a.Day, a.Action, a.TimeEstimateMinutes)
	}

	b.WriteString("\nACTUAL EXECUTION:\n")
	fmt.Fprintf(&b, "Sessions Completed: %d / %d\n", check.SessionsCompleted, check.SessionsPlanned)
	fmt.Fprintf(&b, "Energy Level: %s\n", check.EnergyLevel)
	fmt.Fprintf(&b, "Unexpected Events: %s\n", joinOrNone(check.UnexpectedEvents))

	b.WriteString("\nDETAILED NOTES ON WHAT WAS ACTUALLY DONE:\n")
	if strings.TrimSpace(check.Notes) == "" {
		b.WriteString("No detailed notes provided\n")
	} else {
		b.WriteString(check.Notes + "\n")
	}

	return b.String()
}

func buildAdjustUserPrompt(req AdjustRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ORIGINAL PLAN (Week %s):\n", req.Plan.WeekID)
	fmt.Fprintf(&b, "Priorities: %s\n", joinOrNone(req.Plan.Priorities))
	fmt.Fprintf(&b, "Excluded: %s\n", joinOrNone(req.Plan.Excluded))

	b.WriteString("\nACTUAL EXECUTION SO FAR:\n")
	var remaining []string
	for _, a := range req.Plan.DailyActions {
		status := "Not done"
		if a.Completed {
			status = "Done"
		} else {
			remaining = append(remaining, string(a.Day))
		}
		notes := a.ActualNotes
		if notes == "" {
			notes = "No notes"
		}
		fmt.Fprintf(&b, "%s: %s - %s\n", a.Day, status, notes)
	}

	fmt.Fprintf(&b, "\nDAYS TO ADJUST: %s\n", joinOrNone(remaining))

	fmt.Fprintf(&b, "\nREASON FOR ADJUSTMENT:\n%s\n", req.Reason)
	if len(req.RequestedChanges) > 0 {
		b.WriteString("\nREQUESTED CHANGES:\n")
		for _, c := range req.RequestedChanges {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	if req.Report != nil {
		b.WriteString("\nDEVIATION ANALYSIS:\n")
		fmt.Fprintf(&b, "Completion Rate: %.0f%%\n", req.Report.CompletionRate*100)
		fmt.Fprintf(&b, "Summary: %s\n", req.Report.DeviationSummary)
		fmt.Fprintf(&b, "Recommended Action: %s\n", req.Report.RecommendedAction)
	}

	b.WriteString("\nUSER CONSTRAINTS (from profile):\n")
	fmt.Fprintf(&b, "Available Time: %.1f hours/week\n", req.Profile.HardConstraints.AvailableHoursPerWeek)
	fmt.Fprintf(&b, "Minimum Training: %d sessions/week\n", req.Profile.NonNegotiables.MinimumTrainingFrequency)

	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
