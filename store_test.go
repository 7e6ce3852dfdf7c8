package ogcard

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetContent(t *testing.T) {
	s := setupTestStore(t)

	rec := ContentRecord{
		Path:                 "/courses/intro-to-go",
		Kind:                 KindCourse,
		Title:                "Introduction to Go",
		Description:          "Eight lessons from zero to a deployed service.",
		AccentColor:          "#00add8",
		SecondaryAccentColor: "#5dc9e2",
		TextColor:            "white",
		BackgroundColor:      "#111",
		HideFooter:           true,
		Tags:                 []string{"go", "beginner"},
		Date:                 "2026-02-10",
		Modified:             "2026-02-12",
		Published:            true,
	}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	got, err := s.GetContent("/courses/intro-to-go")
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if got.Kind != KindCourse {
		t.Errorf("Kind = %q, want %q", got.Kind, KindCourse)
	}
	if got.Title != rec.Title {
		t.Errorf("Title = %q, want %q", got.Title, rec.Title)
	}
	if got.Description != rec.Description {
		t.Errorf("Description = %q, want %q", got.Description, rec.Description)
	}
	if got.AccentColor != rec.AccentColor || got.SecondaryAccentColor != rec.SecondaryAccentColor {
		t.Errorf("accent colors = %q/%q, want %q/%q",
			got.AccentColor, got.SecondaryAccentColor, rec.AccentColor, rec.SecondaryAccentColor)
	}
	if !got.HideFooter {
		t.Error("HideFooter should be true")
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "beginner" {
		t.Errorf("Tags = %v, want [go beginner]", got.Tags)
	}
	if got.Date != rec.Date || got.Modified != rec.Modified {
		t.Errorf("timestamps = %q/%q, want %q/%q", got.Date, got.Modified, rec.Date, rec.Modified)
	}
	if !got.Published {
		t.Error("Published should be true")
	}
}

func TestSaveContentUpdate(t *testing.T) {
	s := setupTestStore(t)

	rec := ContentRecord{Path: "/about", Kind: KindPage, Title: "About", Published: true}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	rec.Title = "About Us"
	rec.BackgroundColor = "#1c1917"
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent update failed: %v", err)
	}

	got, err := s.GetContent("/about")
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if got.Title != "About Us" {
		t.Errorf("Title = %q, want %q", got.Title, "About Us")
	}
	if got.BackgroundColor != "#1c1917" {
		t.Errorf("BackgroundColor = %q, want #1c1917", got.BackgroundColor)
	}
}

func TestGetContentNotFound(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.GetContent("/nonexistent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetContentUnpublished(t *testing.T) {
	s := setupTestStore(t)

	rec := ContentRecord{Path: "/draft", Kind: KindPost, Title: "Draft", Published: false}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	if _, err := s.GetContent("/draft"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unpublished record: error = %v, want ErrNotFound", err)
	}
	all, err := s.ListAllContent()
	if err != nil {
		t.Fatalf("ListAllContent failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListAllContent count = %d, want 1", len(all))
	}
}

func TestListContentPublishedOnly(t *testing.T) {
	s := setupTestStore(t)

	for _, rec := range []ContentRecord{
		{Path: "/b", Kind: KindPost, Title: "B", Published: true},
		{Path: "/a", Kind: KindPage, Title: "A", Published: true},
		{Path: "/draft", Kind: KindPost, Title: "Draft", Published: false},
	} {
		if err := s.SaveContent(rec); err != nil {
			t.Fatalf("SaveContent failed: %v", err)
		}
	}

	records, err := s.ListContent()
	if err != nil {
		t.Fatalf("ListContent failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListContent count = %d, want 2", len(records))
	}
	if records[0].Path != "/a" || records[1].Path != "/b" {
		t.Errorf("order = %q, %q, want /a, /b", records[0].Path, records[1].Path)
	}
}

func TestDeleteContent(t *testing.T) {
	s := setupTestStore(t)

	rec := ContentRecord{Path: "/gone", Kind: KindPost, Title: "Gone", Published: true}
	if err := s.SaveContent(rec); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := s.DeleteContent("/gone"); err != nil {
		t.Fatalf("DeleteContent failed: %v", err)
	}
	if _, err := s.GetContent("/gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error after delete = %v, want ErrNotFound", err)
	}
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{",go,web,", 2},
		{"", 0},
		{",solo,", 1},
	}
	for _, tc := range cases {
		if got := ParseTags(tc.in); len(got) != tc.want {
			t.Errorf("ParseTags(%q) = %v, want %d tags", tc.in, got, tc.want)
		}
	}
}
