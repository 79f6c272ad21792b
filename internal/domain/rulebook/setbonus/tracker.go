package setbonus

import (
	"sort"
	"strconv"
)

// MaxStack is the number of times an identical bonus may count build-wide
const MaxStack = 5

// ValueKey rounds a bonus magnitude to the 2-decimal bucket key
func ValueKey(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

type bucket struct {
	value   float64
	count   int
	sources []string
	capped  bool
}

// BucketView is a read-only copy of one (stat, value) bucket
type BucketView struct {
	Value   float64  `json:"value"`
	Count   int      `json:"count"`
	Sources []string `json:"sources"`
	Capped  bool     `json:"capped"`
	Total   float64  `json:"total"`
}

// ActiveBonus is one counted contribution
type ActiveBonus struct {
	Stat   string  `json:"stat"`
	Value  float64 `json:"value"`
	Source string  `json:"source"`
	Type   string  `json:"type"`
}

// Tracker applies the Rule of Five to a list of collected bonuses.
// A tracker belongs to a single recompute pass; Aggregate resets it
// before counting so no state carries over between builds.
type Tracker struct {
	buckets map[string]map[string]*bucket
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{buckets: make(map[string]map[string]*bucket)}
}

// Aggregate runs a fresh tracker over bonuses
func Aggregate(bonuses []RawBonus) *Tracker {
	t := NewTracker()
	t.Aggregate(bonuses)
	return t
}

// Reset clears all tracking state
func (t *Tracker) Reset() {
	t.buckets = make(map[string]map[string]*bucket)
}

// Aggregate resets the tracker, buckets bonuses in input order and
// returns the per-stat totals. Once a bucket holds MaxStack
// contributions further ones only mark it capped.
func (t *Tracker) Aggregate(bonuses []RawBonus) map[string]float64 {
	t.Reset()

	for _, bonus := range bonuses {
		values, ok := t.buckets[bonus.Stat]
		if !ok {
			values = make(map[string]*bucket)
			t.buckets[bonus.Stat] = values
		}

		key := ValueKey(bonus.Value)
		b, ok := values[key]
		if !ok {
			b = &bucket{value: bonus.Value}
			values[key] = b
		}

		if b.count < MaxStack {
			b.count++
			b.sources = append(b.sources, bonus.Source)
		} else {
			b.capped = true
		}
	}

	return t.Totals()
}

// Totals returns value × count summed per stat
func (t *Tracker) Totals() map[string]float64 {
	totals := make(map[string]float64, len(t.buckets))
	for stat, values := range t.buckets {
		total := 0.0
		// Sum in key order so float results are reproducible
		for _, key := range sortedKeys(values) {
			b := values[key]
			total += b.value * float64(b.count)
		}
		totals[stat] = total
	}
	return totals
}

// IsCapped reports whether the bucket for (stat, value) overflowed
func (t *Tracker) IsCapped(stat string, value float64) bool {
	b, ok := t.lookup(stat, value)
	return ok && b.capped
}

// Count returns how many contributions the (stat, value) bucket holds, 0-5
func (t *Tracker) Count(stat string, value float64) int {
	if b, ok := t.lookup(stat, value); ok {
		return b.count
	}
	return 0
}

// Breakdown returns a stat's buckets sorted by descending value
func (t *Tracker) Breakdown(stat string) []BucketView {
	values, ok := t.buckets[stat]
	if !ok {
		return []BucketView{}
	}

	views := make([]BucketView, 0, len(values))
	for _, key := range sortedKeys(values) {
		b := values[key]
		views = append(views, BucketView{
			Value:   b.value,
			Count:   b.count,
			Sources: append([]string(nil), b.sources...),
			Capped:  b.capped,
			Total:   b.value * float64(b.count),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Value > views[j].Value
	})
	return views
}

// Breakdowns returns the breakdown of every tracked stat
func (t *Tracker) Breakdowns() map[string][]BucketView {
	out := make(map[string][]BucketView, len(t.buckets))
	for stat := range t.buckets {
		out[stat] = t.Breakdown(stat)
	}
	return out
}

// Stats returns the tracked stat keys in ascending order
func (t *Tracker) Stats() []string {
	stats := make([]string, 0, len(t.buckets))
	for stat := range t.buckets {
		stats = append(stats, stat)
	}
	sort.Strings(stats)
	return stats
}

// ActiveBonuses lists every counted contribution, grouped by stat then
// by descending value
func (t *Tracker) ActiveBonuses() []ActiveBonus {
	var active []ActiveBonus
	for _, stat := range t.Stats() {
		for _, view := range t.Breakdown(stat) {
			for _, source := range view.Sources {
				active = append(active, ActiveBonus{
					Stat:   stat,
					Value:  view.Value,
					Source: source,
					Type:   "set",
				})
			}
		}
	}
	return active
}

func (t *Tracker) lookup(stat string, value float64) (*bucket, bool) {
	values, ok := t.buckets[stat]
	if !ok {
		return nil, false
	}
	b, ok := values[ValueKey(value)]
	return b, ok
}

func sortedKeys(values map[string]*bucket) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
