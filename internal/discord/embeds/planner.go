package embeds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/loadout-planner/internal/domain/build"
	"github.com/KirkDiggler/loadout-planner/internal/domain/catalog"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/compatibility"
	"github.com/KirkDiggler/loadout-planner/internal/domain/rulebook/setbonus"
	"github.com/KirkDiggler/loadout-planner/internal/services/planner"
)

func formatPercent(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	return "+" + s + "%"
}

// BonusSummary renders an evaluation as one field per stat, listing each
// value bucket and whether the Rule of Five suppressed extra copies
func BonusSummary(b *build.Build, eval *planner.Evaluation) *EmbedBuilder {
	embed := NewEmbed().
		Title("📊 " + b.Name).
		Color(ColorPrimary).
		Footer(fmt.Sprintf("Build %s", b.ID))

	if len(eval.Totals) == 0 {
		embed.Description("No set bonuses are active yet.")
	} else {
		embed.Description(fmt.Sprintf("%d active set bonus(es) across %d stat(s)", len(eval.Active), len(eval.Totals)))
	}

	for _, stat := range sortedStats(eval.Totals) {
		var sb strings.Builder
		for _, view := range eval.Breakdown[stat] {
			sb.WriteString(fmt.Sprintf("%s × %d", formatPercent(view.Value), view.Count))
			if view.Capped {
				sb.WriteString(" (capped)")
			}
			sb.WriteString("\n")
		}
		embed.Field(fmt.Sprintf("%s %s", setbonus.DisplayName(stat), formatPercent(eval.Totals[stat])), sb.String(), true)
	}

	if len(eval.Diagnostics) > 0 {
		var sb strings.Builder
		for _, d := range eval.Diagnostics {
			sb.WriteString(fmt.Sprintf("• %s: %s (%s)\n", d.PowerName, d.SetID, d.Kind))
		}
		embed.Field("⚠️ Skipped", sb.String(), false)
	}

	return embed
}

// CompatibleSets lists the sets a power can slot, grouped by set type
func CompatibleSets(powerName string, category catalog.SetCategory, matches []compatibility.SetMatch) *EmbedBuilder {
	embed := NewEmbed().
		Title(fmt.Sprintf("🧩 %s: %s sets", powerName, category)).
		Color(ColorInfo)

	if len(matches) == 0 {
		return embed.Description("No compatible sets in this category.")
	}
	embed.Description(fmt.Sprintf("%d compatible set(s)", len(matches)))

	for _, tc := range compatibility.CountByType(matches) {
		var sb strings.Builder
		for _, m := range compatibility.FilterByType(matches, tc.Type) {
			sb.WriteString(fmt.Sprintf("**%s** (%d-%d) `%s`\n", m.Set.Name, m.Set.MinLevel, m.Set.MaxLevel, m.SetID))
		}
		embed.Field(fmt.Sprintf("%s (%d)", tc.Type, tc.Count), sb.String(), false)
	}
	return embed
}

// BuildList lists an owner's builds
func BuildList(list []*build.Build) *EmbedBuilder {
	embed := NewEmbed().
		Title("📚 Your Builds").
		Color(ColorPrimary)

	if len(list) == 0 {
		return embed.Description("You don't have any builds yet.")
	}
	embed.Description(fmt.Sprintf("You have %d build(s):", len(list)))

	for _, b := range list {
		embed.Field(b.Name, fmt.Sprintf("%s | ID: `%s`", b.Archetype, b.ID), false)
	}
	return embed
}

func sortedStats(totals map[string]float64) []string {
	stats := make([]string, 0, len(totals))
	for stat := range totals {
		stats = append(stats, stat)
	}
	// Largest totals first, then by name
	sort.Slice(stats, func(i, j int) bool {
		if totals[stats[i]] != totals[stats[j]] {
			return totals[stats[i]] > totals[stats[j]]
		}
		return stats[i] < stats[j]
	})
	return stats
}
