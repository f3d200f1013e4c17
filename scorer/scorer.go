// Package scorer ranks catalog tools against a free-text query.
//
// The scoring is a plain keyword heuristic: each keyword is matched as a
// substring against the tool's name, description, categories, tags and use
// cases, and the weights of the matched signals are summed. Score is pure and
// deterministic, so it is safe to call from any number of goroutines over the
// same catalog.
package scorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/khicago/got/util/typer"
	"github.com/khicago/irr"

	"github.com/bagaking/toolscout/catalog"
)

type (
	// Match 一个入选的工具
	Match struct {
		Tool          *catalog.Tool `json:"tool"`
		Score         int           `json:"score"`
		Signals       Signal        `json:"signals"`
		Padded        bool          `json:"padded,omitempty"`
		Justification string        `json:"justification"`
	}

	Result struct {
		Keywords []string `json:"keywords"`
		Matches  []Match  `json:"matches"`
	}

	options struct {
		minResults int
	}

	Option func(*options)
)

var ErrNoMatchesFound = irr.Error("no matches found")

const PaddedJustification = "Suggested to round out the list"

// WithMinResults 开启补齐：命中数少于 n 时，用未命中的工具按目录顺序补到 limit 个。
// 开启后 Score 不会返回 ErrNoMatchesFound
func WithMinResults(n int) Option {
	return func(o *options) {
		o.minResults = n
	}
}

// Score 返回与 query 最相关的前 limit 个工具，limit <= 0 表示不限制。
// 同分时保持 tools 的原始顺序
func Score(query string, tools []*catalog.Tool, limit int, opts ...Option) (*Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	ret := &Result{Keywords: Keywords(query)}
	for _, t := range tools {
		score, sig := ScoreTool(t, ret.Keywords)
		if score <= 0 {
			continue
		}
		ret.Matches = append(ret.Matches, Match{
			Tool:          t,
			Score:         score,
			Signals:       sig,
			Justification: Justify(sig),
		})
	}
	sort.SliceStable(ret.Matches, func(i, j int) bool {
		return ret.Matches[i].Score > ret.Matches[j].Score
	})

	scored := len(ret.Matches)
	if limit > 0 && scored > limit {
		ret.Matches = ret.Matches[:limit]
	}

	if o.minResults > 0 && scored < o.minResults {
		ret.pad(tools, limit)
		return ret, nil
	}
	if len(ret.Matches) == 0 {
		return ret, irr.Wrap(ErrNoMatchesFound, "query= %q, keywords= %v", query, ret.Keywords)
	}
	return ret, nil
}

func (r *Result) pad(tools []*catalog.Tool, limit int) {
	target := typer.IfThen(limit > 0, limit, len(tools))
	for _, t := range tools {
		if len(r.Matches) >= target {
			return
		}
		if t == nil || r.Contains(t.ID) {
			continue
		}
		r.Matches = append(r.Matches, Match{
			Tool:          t,
			Padded:        true,
			Justification: PaddedJustification,
		})
	}
}

// Contains 判断结果中是否已经有该工具
func (r *Result) Contains(id string) bool {
	return typer.SliceFirstMatch(r.Matches, func(m Match) bool {
		return m.Tool.ID == id
	}) >= 0
}

func (r *Result) Empty() bool {
	return r == nil || len(r.Matches) == 0
}

func (r *Result) Tools() []*catalog.Tool {
	return typer.SliceMap(r.Matches, func(m Match) *catalog.Tool { return m.Tool })
}

func (r *Result) Justifications() []string {
	return typer.SliceMap(r.Matches, func(m Match) string { return m.Justification })
}

// Justify 根据命中维度生成可读的推荐理由
func Justify(sig Signal) string {
	labels := sig.Labels()
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("Matches your request by %s", labels[0])
	default:
		return fmt.Sprintf("Matches your request by %s and %s",
			strings.Join(labels[:len(labels)-1], ", "), labels[len(labels)-1])
	}
}
