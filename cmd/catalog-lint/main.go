// catalog-lint validates the built-in themed day schedule and reward
// catalog before a release. Run it from the repo root:
//
//	go run ./cmd/catalog-lint
package main

import (
	"fmt"
	"os"

	"bookbound/models"
)

func main() {
	problems := 0
	problems += lintThemedDays()
	problems += lintRewardCatalog()

	if problems > 0 {
		fmt.Printf("catalog-lint: %d problem(s) found\n", problems)
		os.Exit(1)
	}
	fmt.Println("catalog-lint: OK")
}

func lintThemedDays() int {
	days := models.DefaultThemedDays()
	bad := 0

	if len(days) != 7 {
		fmt.Printf("themed days: expected 7 entries, got %d\n", len(days))
		bad++
	}

	seenSlug := map[string]bool{}
	seenDay := map[int]bool{}
	for _, d := range days {
		if d.Slug == "" {
			fmt.Printf("themed day %q: empty slug\n", d.Name)
			bad++
			continue
		}
		if seenSlug[d.Slug] {
			fmt.Printf("themed day %q: duplicate slug %q\n", d.Name, d.Slug)
			bad++
		}
		seenSlug[d.Slug] = true

		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			fmt.Printf("themed day %q: day_of_week %d out of range 0-6\n", d.Slug, d.DayOfWeek)
			bad++
		} else if seenDay[d.DayOfWeek] {
			fmt.Printf("themed day %q: duplicate day_of_week %d\n", d.Slug, d.DayOfWeek)
			bad++
		}
		seenDay[d.DayOfWeek] = true

		for label, m := range map[string]float64{
			"reading_points":     d.ReadingPoints,
			"spicy_scene_points": d.SpicyScenePoints,
			"sharing_points":     d.SharingPoints,
		} {
			if m < 1.0 {
				fmt.Printf("themed day %q: %s multiplier %.2f below 1.0\n", d.Slug, label, m)
				bad++
			}
		}
	}

	if !seenSlug[models.FeralFridaySlug] {
		fmt.Printf("themed days: missing %q entry\n", models.FeralFridaySlug)
		bad++
	}
	return bad
}

func lintRewardCatalog() int {
	daySlugs := map[string]bool{}
	for _, d := range models.DefaultThemedDays() {
		daySlugs[d.Slug] = true
	}

	catalog := models.DefaultRewardCatalog()
	bad := 0

	seen := map[string]bool{}
	for i, r := range catalog {
		if r.Slug == "" {
			fmt.Printf("reward #%d: empty slug\n", i)
			bad++
			continue
		}
		if seen[r.Slug] {
			fmt.Printf("reward %q: duplicate slug\n", r.Slug)
			bad++
		}
		seen[r.Slug] = true

		if r.StreakDays < 0 {
			fmt.Printf("reward %q: negative streak_days %d\n", r.Slug, r.StreakDays)
			bad++
		}
		if r.ActivityPoints < 0 {
			fmt.Printf("reward %q: negative activity_points %d\n", r.Slug, r.ActivityPoints)
			bad++
		}
		if r.StreakDays == 0 && r.ActivityPoints == 0 && r.ThemedDay == nil {
			fmt.Printf("reward %q: no unlock requirement at all\n", r.Slug)
			bad++
		}
		if r.ThemedDay != nil && !daySlugs[*r.ThemedDay] {
			fmt.Printf("reward %q: unknown themed day %q\n", r.Slug, *r.ThemedDay)
			bad++
		}
		if r.Rarity == "" {
			fmt.Printf("reward %q: empty rarity\n", r.Slug)
			bad++
		}
		if len(r.ContentData) == 0 {
			fmt.Printf("reward %q: empty content_data\n", r.Slug)
			bad++
		}
	}
	return bad
}
