package catalog

import (
	"fmt"
	"strings"

	"github.com/khicago/got/util/typer"
	"github.com/khicago/irr"
)

type (
	// Comparison 多个工具的对比表，Rows 的每一行对应一个属性，Values 与 Tools 一一对应
	Comparison struct {
		Tools []*Tool         `json:"tools"`
		Rows  []ComparisonRow `json:"rows"`
	}

	ComparisonRow struct {
		Attribute string   `json:"attribute"`
		Values    []string `json:"values"`
	}
)

// MaxCompare 一次最多对比的工具数
const MaxCompare = 3

var (
	ErrCompareTooFew    = irr.Error("need at least two tools to compare")
	ErrCompareTooMany   = irr.Error("too many tools to compare")
	ErrCompareDuplicate = irr.Error("tool listed twice in comparison")
)

// Compare 按给定顺序生成 2 到 MaxCompare 个不同工具的对比表
func (c *Catalog) Compare(ids ...string) (*Comparison, error) {
	if len(ids) < 2 {
		return nil, irr.Wrap(ErrCompareTooFew, "got %d", len(ids))
	}
	if len(ids) > MaxCompare {
		return nil, irr.Wrap(ErrCompareTooMany, "got %d, max %d", len(ids), MaxCompare)
	}
	tools := make([]*Tool, 0, len(ids))
	for i, id := range ids {
		if typer.SliceContains(ids[:i], id) {
			return nil, irr.Wrap(ErrCompareDuplicate, "tool %s", id)
		}
		t, ok := c.Get(id)
		if !ok {
			return nil, irr.Wrap(ErrToolNotFound, "tool %s", id)
		}
		tools = append(tools, t)
	}

	row := func(attr string, fn func(t *Tool) string) ComparisonRow {
		return ComparisonRow{Attribute: attr, Values: typer.SliceMap(tools, fn)}
	}
	cmp := &Comparison{
		Tools: tools,
		Rows: []ComparisonRow{
			row("name", func(t *Tool) string { return t.Name }),
			row("pricing", func(t *Tool) string { return string(t.Pricing) }),
			row("categories", func(t *Tool) string { return strings.Join(t.AllCategories(), ", ") }),
			row("rating", func(t *Tool) string {
				return typer.IfThen(t.Rating == nil, "-", fmt.Sprintf("%.1f", t.RatingOr(0)))
			}),
			row("tags", func(t *Tool) string { return strings.Join(t.Tags, ", ") }),
			row("use cases", func(t *Tool) string { return strings.Join(t.UseCases, ", ") }),
			row("website", func(t *Tool) string { return t.Website }),
		},
	}
	return cmp, nil
}

// String 渲染为纯文本表格，每行 `属性: 值 | 值`
func (cmp *Comparison) String() string {
	sb := strings.Builder{}
	for _, r := range cmp.Rows {
		sb.WriteString(fmt.Sprintf("%-10s: %s\n", r.Attribute, strings.Join(r.Values, " | ")))
	}
	return sb.String()
}
