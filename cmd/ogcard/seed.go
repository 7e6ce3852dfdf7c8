package main

import (
	"fmt"

	"github.com/eringen/ogcard"
)

// sampleContent exercises each content kind and the main theme overrides.
var sampleContent = []ogcard.ContentRecord{
	{
		Path:        "/posts/hello-world",
		Kind:        ogcard.KindPost,
		Title:       "Hello, World",
		Description: "The obligatory first post.",
		Date:        "2026-01-05",
		Published:   true,
	},
	{
		Path:                 "/courses/intro-to-go",
		Kind:                 ogcard.KindCourse,
		Title:                "Introduction to Go",
		Description:          "Eight lessons from zero to a deployed service.",
		AccentColor:          "#00add8",
		SecondaryAccentColor: "#5dc9e2",
		Tags:                 []string{"go", "beginner"},
		Date:                 "2026-02-10",
		Published:            true,
	},
	{
		Path:            "/about",
		Kind:            ogcard.KindPage,
		Title:           "About",
		BackgroundColor: "#1c1917",
		TextColor:       "#fafaf9",
		HideFooter:      true,
		Published:       true,
	},
}

func runSeed() error {
	store, err := ogcard.NewStore(ogcard.EnvOr("OGCARD_DB", "data/content.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, rec := range sampleContent {
		if err := store.SaveContent(rec); err != nil {
			return fmt.Errorf("seed %s: %w", rec.Path, err)
		}
	}
	fmt.Printf("Seeded %d content records.\n", len(sampleContent))
	return nil
}
