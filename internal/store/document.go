package store

import (
	"sort"

	"github.com/alexanderramin/praxis/internal/domain"
)

// Document is the whole persisted state: one profile, plans and derived
// records keyed by week ID, and the execution history list. Every mutation
// rewrites the document in full.
type Document struct {
	Profile          *domain.Profile                   `json:"profile"`
	Plans            map[string]domain.WeeklyPlan      `json:"plans"`
	RealityChecks    map[string]domain.RealityCheck    `json:"reality_checks"`
	DeviationReports map[string]domain.DeviationReport `json:"deviation_reports"`
	History          []domain.HistoryEntry             `json:"history"`
}

// NewDocument returns an empty default document: no profile, empty
// collections. This is also the shape Load returns for a fresh install.
func NewDocument() *Document {
	return &Document{
		Plans:            make(map[string]domain.WeeklyPlan),
		RealityChecks:    make(map[string]domain.RealityCheck),
		DeviationReports: make(map[string]domain.DeviationReport),
		History:          []domain.HistoryEntry{},
	}
}

// normalize ensures collections deserialized from older or hand-edited
// files are non-nil.
func (d *Document) normalize() {
	if d.Plans == nil {
		d.Plans = make(map[string]domain.WeeklyPlan)
	}
	if d.RealityChecks == nil {
		d.RealityChecks = make(map[string]domain.RealityCheck)
	}
	if d.DeviationReports == nil {
		d.DeviationReports = make(map[string]domain.DeviationReport)
	}
	if d.History == nil {
		d.History = []domain.HistoryEntry{}
	}
}

// Plan returns the active plan for a week, or nil.
func (d *Document) Plan(weekID string) *domain.WeeklyPlan {
	if p, ok := d.Plans[weekID]; ok {
		return &p
	}
	return nil
}

// SortedPlans returns all plans ordered by week ID descending.
func (d *Document) SortedPlans() []domain.WeeklyPlan {
	out := make([]domain.WeeklyPlan, 0, len(d.Plans))
	for _, p := range d.Plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekID > out[j].WeekID })
	return out
}

// HistoryEntry returns the history entry for a week, or nil.
func (d *Document) HistoryEntry(weekID string) *domain.HistoryEntry {
	for i := range d.History {
		if d.History[i].WeekID == weekID {
			return &d.History[i]
		}
	}
	return nil
}

// UpsertHistory replaces the entry with the same week ID or appends.
func (d *Document) UpsertHistory(entry domain.HistoryEntry) {
	for i := range d.History {
		if d.History[i].WeekID == entry.WeekID {
			d.History[i] = entry
			return
		}
	}
	d.History = append(d.History, entry)
}

// RecentHistory returns up to limit entries, most recent week first.
// A non-positive limit returns the full history.
func (d *Document) RecentHistory(limit int) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(d.History))
	copy(out, d.History)
	sort.Slice(out, func(i, j int) bool { return out[i].WeekID > out[j].WeekID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
