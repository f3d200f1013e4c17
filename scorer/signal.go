package scorer

import (
	"strings"

	"github.com/bagaking/goulp/jsonex"

	"github.com/bagaking/toolscout/catalog"
)

// Signal 命中的匹配维度，可组合
type Signal uint8

const (
	SignalName Signal = 1 << iota
	SignalDescription
	SignalCategory
	SignalTags
	SignalUseCases

	SignalNone Signal = 0
)

const (
	WeightName        = 3 // 任一关键词命中即可，只计一次
	WeightDescription = 2 // 每个关键词计一次
	WeightCategory    = 2 // 任一关键词命中即可，只计一次
	WeightTag         = 1 // 每个关键词计一次
	WeightUseCase     = 1 // 每个关键词计一次
)

var signalLabels = []struct {
	Signal
	label string
}{
	{SignalName, "name"},
	{SignalDescription, "description"},
	{SignalCategory, "category"},
	{SignalTags, "tags"},
	{SignalUseCases, "use cases"},
}

func (s Signal) Has(o Signal) bool {
	return s&o != 0
}

// Labels 按固定顺序返回命中的维度名
func (s Signal) Labels() []string {
	ret := make([]string, 0, len(signalLabels))
	for _, sl := range signalLabels {
		if s.Has(sl.Signal) {
			ret = append(ret, sl.label)
		}
	}
	return ret
}

func (s Signal) String() string {
	return strings.Join(s.Labels(), "|")
}

// MarshalJSON 输出命中的维度名列表
func (s Signal) MarshalJSON() ([]byte, error) {
	str, err := jsonex.MarshalToString(s.Labels())
	return []byte(str), err
}

// lowered 工具各字段的小写形式，每次打分只计算一次
type lowered struct {
	name        string
	description string
	categories  []string
	tags        []string
	useCases    []string
}

func lowerAll(lst []string) []string {
	ret := make([]string, len(lst))
	for i, s := range lst {
		ret[i] = strings.ToLower(s)
	}
	return ret
}

func lowerTool(t *catalog.Tool) lowered {
	return lowered{
		name:        strings.ToLower(t.Name),
		description: strings.ToLower(t.Description),
		categories:  lowerAll(t.AllCategories()),
		tags:        lowerAll(t.Tags),
		useCases:    lowerAll(t.UseCases),
	}
}

func anyContains(lst []string, kw string) bool {
	for _, s := range lst {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// ScoreTool 计算单个工具对关键词集合的得分和命中维度
func ScoreTool(t *catalog.Tool, keywords []string) (int, Signal) {
	if t == nil || len(keywords) == 0 {
		return 0, SignalNone
	}
	lt := lowerTool(t)

	score, sig := 0, SignalNone
	for _, kw := range keywords {
		if strings.Contains(lt.name, kw) {
			sig |= SignalName
		}
		if strings.Contains(lt.description, kw) {
			sig |= SignalDescription
			score += WeightDescription
		}
		if anyContains(lt.categories, kw) {
			sig |= SignalCategory
		}
		if anyContains(lt.tags, kw) {
			sig |= SignalTags
			score += WeightTag
		}
		if anyContains(lt.useCases, kw) {
			sig |= SignalUseCases
			score += WeightUseCase
		}
	}
	if sig.Has(SignalName) {
		score += WeightName
	}
	if sig.Has(SignalCategory) {
		score += WeightCategory
	}
	return score, sig
}
