package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

const defaultReportWidth = 80

// report writes styled plain-text output. Styling collapses to plain text
// when the writer is not a terminal.
type report struct {
	w     io.Writer
	width int

	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
}

func newReport(w io.Writer) *report {
	r := lipgloss.NewRenderer(w)
	return &report{
		w:       w,
		width:   terminalWidth(w),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E0773A")),
		label:   r.NewStyle().Foreground(lipgloss.Color("#5FB3B3")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#7B8394")),
		good:    r.NewStyle().Foreground(lipgloss.Color("#8FBF74")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	}
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultReportWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultReportWidth
	}
	return width
}

func (r *report) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *report) section(title string) {
	r.printf("\n%s\n", r.heading.Render(title))
}

func (r *report) field(name, format string, args ...any) {
	r.printf("  %s %s\n", r.label.Render(fmt.Sprintf("%-24s", name)), fmt.Sprintf(format, args...))
}

// truncate shortens s to fit the report width after indent columns.
func (r *report) truncate(s string, indent int) string {
	max := r.width - indent
	if max < 20 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// run prints a planning result.
func (r *report) run(result *domain.RunResult, withAudit bool) {
	r.printf("%s %s  %s %s  %s\n",
		r.label.Render("Run"), result.ID,
		r.label.Render("Project"), result.Project,
		r.muted.Render(result.CreatedAt.Format("2006-01-02 15:04:05 MST")))

	if result.NoOp {
		r.printf("%s\n", r.muted.Render("Fewer than two levels: no vertical egress to plan."))
		return
	}

	r.occupancy(result.Occupancy)
	if result.Global != nil {
		r.section("Global sizing")
		r.config(*result.Global, withAudit)
	}
	r.stairs(result.Stairs, withAudit)
	r.warnings(result.Warnings)
	r.outcomes(result.Outcomes)
}

func (r *report) occupancy(records []domain.OccupancyRecord) {
	r.section("Occupancy")
	for _, rec := range records {
		source := r.muted.Render(string(rec.Source))
		if rec.Source == domain.OccupancySourceOverride {
			source = r.warn.Render(string(rec.Source))
		}
		r.printf("  %-24s %8.3f m  %6d  %s\n", r.truncate(rec.LevelName, 50), rec.Elevation, rec.Occupants, source)
	}
}

// config prints the dimension set of one stair config.
func (r *report) config(c domain.StairConfig, withAudit bool) {
	r.field("Stairs sharing load", "%d", c.TotalStairs)
	r.field("Max level load", "%d (%d per stair)", c.MaxLoad, c.MinLoadPerStair)
	r.field("Rise", "%.3f m from %.3f m", c.MaxElevationChange, c.StartElevation)
	r.field("Risers", "%d x %.4f m", c.RiserCount, c.RiserHeight)
	r.field("Treads", "%d (%d + %d) x %.4f m", c.TreadCount, c.FirstFlightTreads, c.SecondFlightTreads, c.TreadDepth)
	r.field("Width factor", "%.1f in/occupant", c.WidthFactor)
	r.field("Tread width", "%.4f m", c.TreadWidth)
	r.field("Capacity", "%d occupants", c.Capacity)
	r.field("Landing depth", "%.4f m", c.RealLandingDepth)
	r.field("Footprint", "%.4f x %.4f m", c.Width, c.Length)
	r.field("Extrusion height", "%.3f m", c.ExtrusionHeight)

	if withAudit {
		for _, line := range c.Log.Entries() {
			r.printf("    %s\n", r.muted.Render(r.truncate(line, 4)))
		}
	}
}

func (r *report) stairs(stairs []domain.PlacedStair, withAudit bool) {
	r.section(fmt.Sprintf("Stairs (%d)", len(stairs)))
	for _, ps := range stairs {
		s := ps.Stair
		load := r.good.Render(fmt.Sprintf("%d/%d", s.Load, s.Capacity))
		if s.IsOverCapacity() {
			load = r.bad.Render(fmt.Sprintf("%d/%d over capacity", s.Load, s.Capacity))
		}
		r.printf("  %s  %s  %s  %s\n",
			r.label.Render(s.Name), r.muted.Render(string(s.Origin)), load, r.muted.Render(s.ID))
		r.printf("    at %s rot %.1f  width %.4f m  %d panels\n",
			s.Transform.Origin, s.Transform.Rotation, ps.Config.TreadWidth, len(ps.Panels))

		if withAudit {
			for _, line := range s.Audit {
				r.printf("    %s\n", r.muted.Render(r.truncate(line, 4)))
			}
		}
	}
}

func (r *report) warnings(warnings []domain.Warning) {
	if len(warnings) == 0 {
		return
	}
	r.section("Warnings")
	for _, w := range warnings {
		r.printf("  %s\n", r.warn.Render("! "+r.truncate(w.String(), 4)))
	}
}

func (r *report) outcomes(outcomes []domain.OverrideOutcome) {
	if len(outcomes) == 0 {
		return
	}
	r.section("Overrides")
	for _, o := range outcomes {
		var status string
		switch o.Status {
		case domain.OutcomeApplied:
			status = r.good.Render(fmt.Sprintf("%-9s", o.Status))
		case domain.OutcomeSkipped:
			status = r.warn.Render(fmt.Sprintf("%-9s", o.Status))
		default:
			status = r.bad.Render(fmt.Sprintf("%-9s", o.Status))
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%-9s %s", o.Kind, o.OverrideID)
		if o.StairID != "" {
			fmt.Fprintf(&b, " -> %s", o.StairID)
		}
		if o.Ambiguous() {
			fmt.Fprintf(&b, " (%d candidates)", o.Candidates)
		}
		r.printf("  %s %s\n", status, b.String())
	}
}

// batch prints a stored override batch.
func (r *report) batch(project string, b domain.OverrideBatch) {
	if b.Count() == 0 {
		r.printf("No overrides stored for %s.\n", project)
		return
	}
	r.printf("%s %s  %d overrides\n", r.label.Render("Project"), project, b.Count())

	if len(b.Additions) > 0 {
		r.section("Additions")
		for _, a := range b.Additions {
			r.printf("  %s  at %s\n", a.ID, a.Origin)
		}
	}
	if len(b.Moves) > 0 {
		r.section("Moves")
		for _, m := range b.Moves {
			r.printf("  %s  %s -> %s rot %.1f\n", m.ID, m.Identity.OriginalPosition, m.Transform.Origin, m.Transform.Rotation)
		}
	}
	if len(b.Properties) > 0 {
		r.section("Property edits")
		for _, p := range b.Properties {
			r.printf("  %s  %s name %q min width %.4f m\n", p.ID, p.Identity.OriginalPosition, p.Name, p.MinimumTreadWidth)
		}
	}
	if len(b.Removals) > 0 {
		r.section("Removals")
		for _, rm := range b.Removals {
			r.printf("  %s  %s\n", rm.ID, rm.Identity.OriginalPosition)
		}
	}
	if len(b.Occupancy) > 0 {
		r.section("Occupancy")
		for _, o := range b.Occupancy {
			r.printf("  %s  %d occupants at level %s\n", o.ID, o.Occupants, o.Identity.Transform.Origin)
		}
	}
}

// summaries prints a run history listing.
func (r *report) summaries(runs []domain.RunSummary) {
	if len(runs) == 0 {
		r.printf("No saved runs.\n")
		return
	}
	r.printf("%s\n", r.heading.Render(fmt.Sprintf("%-36s  %-19s  %6s  %6s  %s", "ID", "CREATED", "LEVELS", "STAIRS", "MODEL")))
	for _, s := range runs {
		digest := s.ModelDigest
		if len(digest) > 12 {
			digest = digest[:12]
		}
		r.printf("%-36s  %-19s  %6d  %6d  %s\n",
			s.ID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.LevelCount, s.StairCount, r.muted.Render(digest))
	}
}
