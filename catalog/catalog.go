package catalog

import (
	"strings"

	"github.com/khicago/got/util/typer"
	"github.com/khicago/irr"
)

type (
	// Catalog 只读的工具目录，创建后不再修改，可以被并发读取。
	// 对外返回的 Tool / Category / Stack 都是拷贝，修改它们不会影响 catalog
	Catalog struct {
		tools      []*Tool
		toolByID   map[string]*Tool
		categories []*Category
		catByID    map[string]*Category
		stacks     []*Stack
	}

	// Filter 列表筛选条件，所有非零字段之间是 AND 关系
	Filter struct {
		// Query 整体作为子串匹配名称、描述、标签和使用场景，不切分关键词
		Query     string
		Category  string
		Pricing   Pricing
		Featured  bool
		Trending  bool
		New       bool
		MinRating float64
	}
)

var (
	ErrInvalidTool     = irr.Error("invalid tool")
	ErrDuplicateTool   = irr.Error("duplicate tool id")
	ErrInvalidCategory = irr.Error("invalid category")
	ErrToolNotFound    = irr.Error("tool not found")
	ErrInvalidStack    = irr.Error("invalid stack")
	ErrStackNotFound   = irr.Error("stack not found")
	ErrNoFeaturedTool  = irr.Error("no featured tool")
)

// New 校验并创建 Catalog，传入的数据会被深拷贝
func New(tools []*Tool, categories []*Category, stacks ...*Stack) (*Catalog, error) {
	c := &Catalog{
		tools:      make([]*Tool, 0, len(tools)),
		toolByID:   make(map[string]*Tool, len(tools)),
		categories: make([]*Category, 0, len(categories)),
		catByID:    make(map[string]*Category, len(categories)),
	}

	for i, cat := range categories {
		if cat == nil || strings.TrimSpace(cat.ID) == "" {
			return nil, irr.Wrap(ErrInvalidCategory, "category #%d has no id", i)
		}
		if _, exists := c.catByID[cat.ID]; exists {
			return nil, irr.Wrap(ErrInvalidCategory, "category %s is declared twice", cat.ID)
		}
		cp := *cat
		c.categories = append(c.categories, &cp)
		c.catByID[cp.ID] = &cp
	}

	for i, t := range tools {
		if err := validateTool(i, t); err != nil {
			return nil, err
		}
		if _, exists := c.toolByID[t.ID]; exists {
			return nil, irr.Wrap(ErrDuplicateTool, "tool %s", t.ID)
		}
		cp := t.Clone()
		c.tools = append(c.tools, cp)
		c.toolByID[cp.ID] = cp
	}

	seen := make(map[string]bool, len(stacks))
	for i, st := range stacks {
		if err := c.validateStack(i, st); err != nil {
			return nil, err
		}
		if seen[st.ID] {
			return nil, irr.Wrap(ErrInvalidStack, "stack %s is declared twice", st.ID)
		}
		seen[st.ID] = true
		c.stacks = append(c.stacks, st.Clone())
	}
	return c, nil
}

func (c *Catalog) validateStack(ind int, st *Stack) error {
	if st == nil || strings.TrimSpace(st.ID) == "" {
		return irr.Wrap(ErrInvalidStack, "stack #%d has no id", ind)
	}
	if len(st.Tools) == 0 {
		return irr.Wrap(ErrInvalidStack, "stack %s has no tools", st.ID)
	}
	for i, id := range st.Tools {
		if _, ok := c.toolByID[id]; !ok {
			return irr.Wrap(ErrInvalidStack, "stack %s refers to unknown tool %s", st.ID, id)
		}
		if typer.SliceContains(st.Tools[:i], id) {
			return irr.Wrap(ErrInvalidStack, "stack %s lists tool %s twice", st.ID, id)
		}
	}
	return nil
}

func validateTool(ind int, t *Tool) error {
	if t == nil {
		return irr.Wrap(ErrInvalidTool, "tool #%d is nil", ind)
	}
	if strings.TrimSpace(t.ID) == "" {
		return irr.Wrap(ErrInvalidTool, "tool #%d has no id", ind)
	}
	if strings.TrimSpace(t.Name) == "" {
		return irr.Wrap(ErrInvalidTool, "tool %s has no name", t.ID)
	}
	if !t.Pricing.Valid() {
		return irr.Wrap(ErrInvalidTool, "tool %s has unknown pricing %q", t.ID, t.Pricing)
	}
	if t.Rating != nil && (*t.Rating < 0 || *t.Rating > MaxRating) {
		return irr.Wrap(ErrInvalidTool, "tool %s rating %.1f out of range", t.ID, *t.Rating)
	}
	return nil
}

func cloneTools(lst []*Tool) []*Tool {
	return typer.SliceMap(lst, func(t *Tool) *Tool { return t.Clone() })
}

// Tools 按目录顺序返回所有工具
func (c *Catalog) Tools() []*Tool {
	return cloneTools(c.tools)
}

func (c *Catalog) Count() int {
	return len(c.tools)
}

func (c *Catalog) Get(id string) (*Tool, bool) {
	t, ok := c.toolByID[id]
	return t.Clone(), ok
}

func (c *Catalog) Categories() []*Category {
	return typer.SliceMap(c.categories, func(cat *Category) *Category {
		cp := *cat
		return &cp
	})
}

func (c *Catalog) Category(id string) (*Category, bool) {
	cat, ok := c.catByID[id]
	if !ok {
		return nil, false
	}
	cp := *cat
	return &cp, true
}

func (c *Catalog) Stacks() []*Stack {
	return typer.SliceMap(c.stacks, func(st *Stack) *Stack { return st.Clone() })
}

func (c *Catalog) Stack(id string) (*Stack, bool) {
	i := typer.SliceFirstMatch(c.stacks, func(st *Stack) bool { return st.ID == id })
	if i < 0 {
		return nil, false
	}
	return c.stacks[i].Clone(), true
}

// StackTools 按 stack 中的顺序返回其工具
func (c *Catalog) StackTools(id string) ([]*Tool, error) {
	st, ok := c.Stack(id)
	if !ok {
		return nil, irr.Wrap(ErrStackNotFound, "stack %s", id)
	}
	return typer.SliceMap(st.Tools, func(toolID string) *Tool { return c.toolByID[toolID].Clone() }), nil
}

// ToolOfDay 从 featured 工具中挑一个，同一个 seed 总是得到同一个工具
func (c *Catalog) ToolOfDay(seed int64) (*Tool, error) {
	featured := c.Featured()
	if len(featured) == 0 {
		return nil, ErrNoFeaturedTool
	}
	ind := seed % int64(len(featured))
	if ind < 0 {
		ind += int64(len(featured))
	}
	return featured[ind], nil
}

// InCategory 返回属于 ref 分类的工具，ref 可以是分类的 id 或 name
func (c *Catalog) InCategory(ref string) []*Tool {
	return c.Filter(Filter{Category: ref})
}

func (c *Catalog) Featured() []*Tool {
	return c.Filter(Filter{Featured: true})
}

func (c *Catalog) Trending() []*Tool {
	return c.Filter(Filter{Trending: true})
}

func (c *Catalog) New() []*Tool {
	return c.Filter(Filter{New: true})
}

// Filter 按目录顺序返回满足条件的工具
func (c *Catalog) Filter(f Filter) []*Tool {
	refs := c.categoryRefs(f.Category)
	return cloneTools(typer.SliceFilter(c.tools, func(t *Tool) bool {
		switch {
		case !t.ContainsText(f.Query):
			return false
		case f.Category != "" && !t.InCategory(refs...):
			return false
		case f.Pricing != "" && t.Pricing != f.Pricing:
			return false
		case f.Featured && !t.Featured,
			f.Trending && !t.Trending,
			f.New && !t.New:
			return false
		case f.MinRating > 0 && t.RatingOr(0) < f.MinRating:
			return false
		}
		return true
	}))
}

// categoryRefs 同时接受分类 id 和 name，工具数据里两种写法都有
func (c *Catalog) categoryRefs(ref string) []string {
	if ref == "" {
		return nil
	}
	refs := []string{ref}
	for _, cat := range c.categories {
		if strings.EqualFold(cat.ID, ref) || strings.EqualFold(cat.Name, ref) {
			refs = append(refs, cat.ID, cat.Name)
		}
	}
	return refs
}
