package catalog

import (
	"strings"

	"github.com/khicago/got/util/typer"
)

type (
	// Pricing 工具的收费模式
	Pricing string

	// Tool 目录中的一个 AI 工具
	Tool struct {
		ID          string `yaml:"id" json:"id"`
		Name        string `yaml:"name" json:"name"`
		Description string `yaml:"description,omitempty" json:"description,omitempty"`

		// Category 和 Categories 可以同时存在，匹配时两者都会参与
		Category   string   `yaml:"category,omitempty" json:"category,omitempty"`
		Categories []string `yaml:"categories,omitempty" json:"categories,omitempty"`

		Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
		UseCases []string `yaml:"use_cases,omitempty" json:"use_cases,omitempty"`
		Pricing  Pricing  `yaml:"pricing" json:"pricing"`
		Website  string   `yaml:"website,omitempty" json:"website,omitempty"`

		Featured bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
		Trending bool     `yaml:"trending,omitempty" json:"trending,omitempty"`
		New      bool     `yaml:"new,omitempty" json:"new,omitempty"`
		Rating   *float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	}

	// Category 工具分类
	Category struct {
		ID          string `yaml:"id" json:"id"`
		Name        string `yaml:"name" json:"name"`
		Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
		Description string `yaml:"description,omitempty" json:"description,omitempty"`
		Color       string `yaml:"color,omitempty" json:"color,omitempty"`
	}

	// Stack 编辑挑选的一组工具，Tools 为工具 id，按展示顺序排列
	Stack struct {
		ID          string   `yaml:"id" json:"id"`
		Name        string   `yaml:"name" json:"name"`
		Category    string   `yaml:"category,omitempty" json:"category,omitempty"`
		Description string   `yaml:"description,omitempty" json:"description,omitempty"`
		Tools       []string `yaml:"tools" json:"tools"`
	}
)

const (
	PricingFree     Pricing = "Free"
	PricingFreemium Pricing = "Freemium"
	PricingPaid     Pricing = "Paid"

	MaxRating = 5.0
)

var AllPricing = []Pricing{PricingFree, PricingFreemium, PricingPaid}

// Valid 判断是否为已知的收费模式
func (p Pricing) Valid() bool {
	return typer.SliceContains(AllPricing, p)
}

// ParsePricing 大小写不敏感地解析收费模式
func ParsePricing(s string) (Pricing, bool) {
	for _, p := range AllPricing {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// AllCategories 合并 Category 与 Categories，去重并保持出现顺序
func (t *Tool) AllCategories() []string {
	ret := make([]string, 0, len(t.Categories)+1)
	if t.Category != "" {
		ret = append(ret, t.Category)
	}
	for _, c := range t.Categories {
		if c != "" && !typer.SliceContains(ret, c) {
			ret = append(ret, c)
		}
	}
	return ret
}

// InCategory 判断工具是否属于 id 或 name 为 ref 的分类
func (t *Tool) InCategory(ref ...string) bool {
	for _, c := range t.AllCategories() {
		for _, r := range ref {
			if r != "" && strings.EqualFold(c, r) {
				return true
			}
		}
	}
	return false
}

// Clone 深拷贝，catalog 内外不共享任何可变内存
func (t *Tool) Clone() *Tool {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Categories = cloneStrings(t.Categories)
	cp.Tags = cloneStrings(t.Tags)
	cp.UseCases = cloneStrings(t.UseCases)
	if t.Rating != nil {
		r := *t.Rating
		cp.Rating = &r
	}
	return &cp
}

func (s *Stack) Clone() *Stack {
	cp := *s
	cp.Tools = cloneStrings(s.Tools)
	return &cp
}

func cloneStrings(lst []string) []string {
	if lst == nil {
		return nil
	}
	return append([]string(nil), lst...)
}

// ContainsText 大小写不敏感地判断 text 是否整体出现在名称、描述、标签或使用场景中
func (t *Tool) ContainsText(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Name), text) || strings.Contains(strings.ToLower(t.Description), text) {
		return true
	}
	for _, lst := range [][]string{t.Tags, t.UseCases} {
		for _, s := range lst {
			if strings.Contains(strings.ToLower(s), text) {
				return true
			}
		}
	}
	return false
}

// RatingOr 返回评分，没有评分时返回 or
func (t *Tool) RatingOr(or float64) float64 {
	if t.Rating == nil {
		return or
	}
	return *t.Rating
}
