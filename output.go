package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/khicago/got/util/typer"
	"github.com/khicago/irr"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/recommend"
	"github.com/bagaking/toolscout/utils"
)

func printJSON(w io.Writer, v any) error {
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return irr.Wrap(err, "marshal output failed")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func toolLines(t *catalog.Tool) []string {
	lines := []string{
		t.Description,
		fmt.Sprintf("pricing: %s  rating: %s", t.Pricing, typer.IfThen(t.Rating == nil, "-", fmt.Sprintf("%.1f", t.RatingOr(0)))),
		"categories: " + strings.Join(t.AllCategories(), ", "),
	}
	if len(t.Tags) > 0 {
		lines = append(lines, "tags: "+strings.Join(t.Tags, ", "))
	}
	if t.Website != "" {
		lines = append(lines, t.Website)
	}
	return lines
}

func toolTitle(t *catalog.Tool) string {
	badges := make([]string, 0, 3)
	if t.Featured {
		badges = append(badges, "featured")
	}
	if t.Trending {
		badges = append(badges, "trending")
	}
	if t.New {
		badges = append(badges, "new")
	}
	if len(badges) == 0 {
		return t.Name
	}
	return fmt.Sprintf("%s [%s]", t.Name, strings.Join(badges, ", "))
}

func toolCards(tools []*catalog.Tool) []utils.Card {
	return typer.SliceMap(tools, func(t *catalog.Tool) utils.Card {
		return utils.Card{Title: toolTitle(t), Lines: toolLines(t)}
	})
}

func recommendationCards(rec *recommend.Recommendation) []utils.Card {
	cards := make([]utils.Card, 0, len(rec.Matches))
	for i, m := range rec.Matches {
		title := fmt.Sprintf("#%d %s", i+1, toolTitle(m.Tool))
		if !m.Padded {
			title += fmt.Sprintf(" (score %d)", m.Score)
		}
		cards = append(cards, utils.Card{Title: title, Lines: append([]string{m.Justification}, toolLines(m.Tool)...)})
	}
	return cards
}

func categoryCards(c *catalog.Catalog, cats []*catalog.Category) []utils.Card {
	return typer.SliceMap(cats, func(cat *catalog.Category) utils.Card {
		return utils.Card{
			Title: fmt.Sprintf("%s (%s)", cat.Name, cat.ID),
			Lines: []string{cat.Description, fmt.Sprintf("%d tools", len(c.InCategory(cat.ID)))},
		}
	})
}

func stackCards(stacks []*catalog.Stack) []utils.Card {
	return typer.SliceMap(stacks, func(st *catalog.Stack) utils.Card {
		lines := []string{st.Description, "tools: " + strings.Join(st.Tools, ", ")}
		if st.Category != "" {
			lines = append(lines, "category: "+st.Category)
		}
		return utils.Card{Title: fmt.Sprintf("%s (%s)", st.Name, st.ID), Lines: lines}
	})
}
