package scorer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/scorer"
)

func ids(r *scorer.Result) []string {
	ret := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		ret = append(ret, m.Tool.ID)
	}
	return ret
}

func blogCatalog() []*catalog.Tool {
	return []*catalog.Tool{
		{ID: "painter", Name: "PixelPainter", Description: "Draw images", Category: "Image Generation", Tags: []string{"art"}, Pricing: catalog.PricingPaid},
		{ID: "tagged", Name: "Helper", Description: "General helper", Category: "Productivity", Tags: []string{"blogging"}, Pricing: catalog.PricingFree},
		{ID: "blog-genius", Name: "BlogGenius", Description: "Generate blog posts fast", Category: "Content Creation", Tags: []string{"writing", "blog"}, Pricing: catalog.PricingFreemium},
		{ID: "coder", Name: "Coder", Description: "Write code", Category: "Coding", Pricing: catalog.PricingFree},
		{ID: "notes", Name: "Notes", Description: "Take notes", Category: "Productivity", Pricing: catalog.PricingFree},
		{ID: "voice", Name: "Voice", Description: "Speak text", Category: "Audio", Pricing: catalog.PricingFree},
		{ID: "video", Name: "Video", Description: "Edit clips", Category: "Audio", Pricing: catalog.PricingFree},
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"blog writing tool", []string{"blog", "writing", "tool"}},
		{"  An AI to write a BLOG  ", []string{"write", "blog"}},
		{"", []string{}},
		{"   \t\n ", []string{}},
		{"go is ok", []string{}},
		{"blog Blog BLOG posts", []string{"blog", "posts"}},
		{"写博客 ai", []string{"写博客"}},
	}
	for _, tt := range tests {
		got := scorer.Keywords(tt.query)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Keywords(%q) mismatch (-want +got):\n%s", tt.query, diff)
		}
	}
}

func TestScoreTool_Weights(t *testing.T) {
	blog := blogCatalog()[2]

	score, sig := scorer.ScoreTool(blog, scorer.Keywords("blog writing tool"))
	if score != 7 {
		t.Fatalf("BlogGenius score = %d, want 7", score)
	}
	want := scorer.SignalName | scorer.SignalDescription | scorer.SignalTags
	if sig != want {
		t.Fatalf("signals = %s, want %s", sig, want)
	}

	// name and category count once however many keywords hit
	score, sig = scorer.ScoreTool(blog, []string{"blog", "genius", "content", "creation"})
	// name 3 + description "blog" 2 + category 2 + tag "blog" 1
	if score != 8 {
		t.Fatalf("score = %d, want 8", score)
	}
	if !sig.Has(scorer.SignalCategory) || sig.Has(scorer.SignalUseCases) {
		t.Fatalf("unexpected signals %s", sig)
	}

	tool := &catalog.Tool{ID: "x", Name: "X", UseCases: []string{"summarize papers", "extract tables"}}
	score, sig = scorer.ScoreTool(tool, []string{"summarize", "extract", "papers"})
	if score != 3 || sig != scorer.SignalUseCases {
		t.Fatalf("use case score = %d (%s), want 3 (use cases)", score, sig)
	}

	// 只有 Categories 没有 Category 的工具同样命中分类，且只加一次
	multi := &catalog.Tool{ID: "m", Name: "Quill", Categories: []string{"Content Creation", "Writing Tools"}}
	score, sig = scorer.ScoreTool(multi, scorer.Keywords("content writing"))
	if score != scorer.WeightCategory || sig != scorer.SignalCategory {
		t.Fatalf("categories-only score = %d (%s), want %d (category)", score, sig, scorer.WeightCategory)
	}
	r, err := scorer.Score("content writing", []*catalog.Tool{blogCatalog()[3], multi}, 3)
	if err != nil || len(r.Matches) != 1 || r.Matches[0].Tool.ID != "m" {
		t.Fatalf("categories-only tool should be the only match, err= %v", err)
	}

	if score, _ = scorer.ScoreTool(blog, nil); score != 0 {
		t.Fatalf("empty keywords should score 0, got %d", score)
	}
}

func TestScore_BlogExample(t *testing.T) {
	r, err := scorer.Score("blog writing tool", blogCatalog(), 3)
	if err != nil {
		t.Fatalf("score failed, err= %v", err)
	}
	if diff := cmp.Diff([]string{"blog-genius", "tagged"}, ids(r)); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
	if r.Matches[0].Score != 7 {
		t.Fatalf("top score = %d, want 7", r.Matches[0].Score)
	}
	if got := r.Justifications()[0]; got != "Matches your request by name, description and tags" {
		t.Fatalf("justification = %q", got)
	}
	if got := r.Justifications()[1]; got != "Matches your request by tags" {
		t.Fatalf("justification = %q", got)
	}
	if len(r.Tools()) != 2 {
		t.Fatalf("tools len = %d", len(r.Tools()))
	}
}

func TestScore_NameOutranksTag(t *testing.T) {
	tools := []*catalog.Tool{
		{ID: "b", Name: "Other", Tags: []string{"canvas"}},
		{ID: "a", Name: "Canvas Pro"},
	}
	r, err := scorer.Score("canvas", tools, 0)
	if err != nil {
		t.Fatalf("score failed, err= %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, ids(r)); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
	if r.Matches[0].Score < 3 || r.Matches[1].Score != 1 {
		t.Fatalf("scores = %d, %d", r.Matches[0].Score, r.Matches[1].Score)
	}
}

func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	tools := []*catalog.Tool{
		{ID: "1", Name: "One", Tags: []string{"shared"}},
		{ID: "2", Name: "Two", Description: "shared thing"},
		{ID: "3", Name: "Three", Tags: []string{"shared"}},
		{ID: "4", Name: "Four", UseCases: []string{"shared"}},
	}
	first, err := scorer.Score("shared", tools, 0)
	if err != nil {
		t.Fatalf("score failed, err= %v", err)
	}
	if diff := cmp.Diff([]string{"2", "1", "3", "4"}, ids(first)); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}

	second, _ := scorer.Score("shared", tools, 0)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("score is not deterministic:\n%s", diff)
	}
}

func TestScore_Limit(t *testing.T) {
	tools := blogCatalog()
	r, err := scorer.Score("edit take draw write speak", tools, 3)
	if err != nil {
		t.Fatalf("score failed, err= %v", err)
	}
	if len(r.Matches) != 3 {
		t.Fatalf("len = %d, want 3", len(r.Matches))
	}
}

func TestScore_NoMatches(t *testing.T) {
	for _, q := range []string{"", "   ", "quantum spreadsheet", "ab cd"} {
		r, err := scorer.Score(q, blogCatalog(), 3)
		if !errors.Is(err, scorer.ErrNoMatchesFound) {
			t.Fatalf("query %q: err = %v, want ErrNoMatchesFound", q, err)
		}
		if !r.Empty() {
			t.Fatalf("query %q: want empty result, got %v", q, ids(r))
		}
	}
}

func TestScore_Padding(t *testing.T) {
	tools := blogCatalog()

	// one match, padded to the limit in catalog order
	r, err := scorer.Score("posts", tools, 5, scorer.WithMinResults(3))
	if err != nil {
		t.Fatalf("padding flow should never fail, err= %v", err)
	}
	if diff := cmp.Diff([]string{"blog-genius", "painter", "tagged", "coder", "notes"}, ids(r)); diff != "" {
		t.Fatalf("padded ranking mismatch (-want +got):\n%s", diff)
	}
	if r.Matches[0].Padded || !r.Matches[1].Padded {
		t.Fatalf("padded flags wrong: %+v", r.Matches)
	}
	if r.Matches[4].Justification != scorer.PaddedJustification {
		t.Fatalf("padded justification = %q", r.Matches[4].Justification)
	}

	// no match, first N of the catalog
	r, err = scorer.Score("quantum", tools, 5, scorer.WithMinResults(3))
	if err != nil {
		t.Fatalf("padding flow should never fail, err= %v", err)
	}
	if diff := cmp.Diff([]string{"painter", "tagged", "blog-genius", "coder", "notes"}, ids(r)); diff != "" {
		t.Fatalf("padded ranking mismatch (-want +got):\n%s", diff)
	}

	// enough matches, no padding
	r, err = scorer.Score("edit take draw", tools, 5, scorer.WithMinResults(3))
	if err != nil {
		t.Fatalf("score failed, err= %v", err)
	}
	if len(r.Matches) != 3 {
		t.Fatalf("len = %d, want 3 without padding", len(r.Matches))
	}

	// catalog smaller than the limit
	r, _ = scorer.Score("quantum", tools[:2], 5, scorer.WithMinResults(3))
	if len(r.Matches) != 2 {
		t.Fatalf("len = %d, want 2", len(r.Matches))
	}
}

func TestJustify(t *testing.T) {
	if got := scorer.Justify(scorer.SignalNone); got != "" {
		t.Fatalf("got %q", got)
	}
	got := scorer.Justify(scorer.SignalCategory | scorer.SignalName | scorer.SignalUseCases)
	if got != "Matches your request by name, category and use cases" {
		t.Fatalf("got %q", got)
	}
}
