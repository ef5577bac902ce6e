// models/reference_data.go - Static Themed Day Table and Reward Catalog
package models

import (
	"gorm.io/datatypes"
)

// FeralFridaySlug is the highest-intensity theme; the challenge
// generator and themed rewards key off it.
const FeralFridaySlug = "feral_friday"

// DefaultThemedDays returns the canonical 7-entry themed-day table,
// indexed 0-6 by day of week (Sunday first). This is the single source
// of truth: the calendar reads it directly and migrations seed it into
// the themed_days table for the API.
func DefaultThemedDays() []ThemedDay {
	return []ThemedDay{
		{
			Slug:             "slow_burn_sunday",
			Name:             "Slow Burn Sunday",
			DayOfWeek:        0,
			ThemeColor:       "#D4A5A5",
			Icon:             "🕯️",
			Description:      "Ease into the week with long, lingering reading sessions.",
			ReadingPoints:    1.5,
			SpicyScenePoints: 1.0,
			SharingPoints:    1.0,
			ExclusiveVoiceLines: []string{
				"sunday_soft_praise",
			},
		},
		{
			Slug:             "morally_gray_monday",
			Name:             "Morally Gray Monday",
			DayOfWeek:        1,
			ThemeColor:       "#6B7280",
			Icon:             "🖤",
			Description:      "Villains, antiheroes, and questionable choices only.",
			ReadingPoints:    1.25,
			SpicyScenePoints: 1.25,
			SharingPoints:    1.0,
		},
		{
			Slug:             "trope_tuesday",
			Name:             "Trope Tuesday",
			DayOfWeek:        2,
			ThemeColor:       "#93C5FD",
			Icon:             "🛏️",
			Description:      "Only one bed. Share your favorite tropes for bonus points.",
			ReadingPoints:    1.0,
			SpicyScenePoints: 1.0,
			SharingPoints:    1.5,
		},
		{
			Slug:             "werewolf_wednesday",
			Name:             "Werewolf Wednesday",
			DayOfWeek:        3,
			ThemeColor:       "#A78BFA",
			Icon:             "🐺",
			Description:      "Paranormal and monster romance gets the spotlight.",
			ReadingPoints:    1.0,
			SpicyScenePoints: 1.5,
			SharingPoints:    1.0,
			ExclusiveScripts: []string{
				"howl_script_01",
			},
		},
		{
			Slug:             "thirsty_thursday",
			Name:             "Thirsty Thursday",
			DayOfWeek:        4,
			ThemeColor:       "#F87171",
			Icon:             "🍷",
			Description:      "Mark your spicy scenes; they count double today.",
			ReadingPoints:    1.0,
			SpicyScenePoints: 2.0,
			SharingPoints:    1.0,
		},
		{
			Slug:             FeralFridaySlug,
			Name:             "Feral Friday",
			DayOfWeek:        5,
			ThemeColor:       "#DC2626",
			Icon:             "🔥",
			Description:      "No restraint. Everything is multiplied and the gloves come off.",
			ReadingPoints:    2.0,
			SpicyScenePoints: 2.0,
			SharingPoints:    1.5,
			ExclusiveVoiceLines: []string{
				"feral_growl_01",
				"feral_praise_02",
			},
			ExclusiveScripts: []string{
				"feral_script_01",
			},
		},
		{
			Slug:             "smutty_saturday",
			Name:             "Smutty Saturday",
			DayOfWeek:        6,
			ThemeColor:       "#F472B6",
			Icon:             "💋",
			Description:      "Weekend indulgence. Finish that book you keep rereading chapter 12 of.",
			ReadingPoints:    1.5,
			SpicyScenePoints: 1.75,
			SharingPoints:    1.25,
		},
	}
}

// DefaultRewardCatalog returns the static SpicySurprise catalog seeded
// at migration time.
func DefaultRewardCatalog() []SpicySurprise {
	feral := FeralFridaySlug
	return []SpicySurprise{
		{
			Slug:        "first_flame",
			ContentType: "badge",
			ContentData: datatypes.JSON(`{"badge":"first_flame","title":"First Flame"}`),
			Rarity:      "common",
			StreakDays:  1,
		},
		{
			Slug:        "three_day_tease",
			ContentType: "voice_clip",
			ContentData: datatypes.JSON(`{"clip":"three_day_tease","voice":"velvet"}`),
			Rarity:      "common",
			StreakDays:  3,
		},
		{
			Slug:           "night_owl_novella",
			ContentType:    "book_recommendation",
			ContentData:    datatypes.JSON(`{"list":"night_owl_picks","count":5}`),
			Rarity:         "common",
			ActivityPoints: 500,
		},
		{
			Slug:        "week_of_wanting",
			ContentType: "script",
			ContentData: datatypes.JSON(`{"script":"week_of_wanting","voice":"husky"}`),
			Rarity:      "rare",
			StreakDays:  7,
			IsNSFW:      true,
		},
		{
			Slug:           "bookworm_royalty",
			ContentType:    "badge",
			ContentData:    datatypes.JSON(`{"badge":"bookworm_royalty","title":"Bookworm Royalty"}`),
			Rarity:         "rare",
			ActivityPoints: 1000,
		},
		{
			Slug:        "feral_whisper",
			ContentType: "voice_clip",
			ContentData: datatypes.JSON(`{"clip":"feral_whisper","voice":"growl"}`),
			Rarity:      "epic",
			StreakDays:  2,
			ThemedDay:   &feral,
			IsNSFW:      true,
		},
		{
			Slug:           "fortnight_of_fire",
			ContentType:    "script",
			ContentData:    datatypes.JSON(`{"script":"fortnight_of_fire","voice":"velvet","length_sec":90}`),
			Rarity:         "legendary",
			StreakDays:     14,
			ActivityPoints: 250,
			IsNSFW:         true,
		},
	}
}
