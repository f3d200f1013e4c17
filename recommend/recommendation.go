package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khicago/got/util/typer"

	"github.com/bagaking/toolscout/scorer"
	"github.com/bagaking/toolscout/utils"
)

type Recommendation struct {
	Surface   string `json:"surface"`
	Query     string `json:"query"`
	RequestID string `json:"request_id,omitempty"`
	*scorer.Result
}

const (
	MsgNoMatches   = "Sorry, no tools match your request. Try describing the task in other words."
	MsgUnavailable = "Recommendations are unavailable right now."
)

func newRecommendation(ctx context.Context, surface, query string, result *scorer.Result) *Recommendation {
	rec := &Recommendation{
		Surface: surface,
		Query:   query,
		Result:  result,
	}
	if id, ok := utils.ExtractRequestID(ctx); ok {
		rec.RequestID = id
	}
	return rec
}

func (r *Recommendation) ToolIDs() []string {
	return typer.SliceMap(r.Matches, func(m scorer.Match) string { return m.Tool.ID })
}

func (r *Recommendation) PaddedCount() int {
	return len(typer.SliceFilter(r.Matches, func(m scorer.Match) bool { return m.Padded }))
}

// Text 每个工具一行，带上推荐理由
func (r *Recommendation) Text() string {
	sb := strings.Builder{}
	for i, m := range r.Matches {
		sb.WriteString(fmt.Sprintf("%d. %s (%s) - %s\n", i+1, m.Tool.Name, m.Tool.Pricing, m.Justification))
	}
	return sb.String()
}

// Message 给用户看的回复
func (r *Recommendation) Message() string {
	if r.Empty() {
		return MsgNoMatches
	}
	head := typer.IfThen(r.Surface == SurfaceStack,
		"Here is a stack for your project:\n",
		"Here are the tools that fit your request best:\n")
	return head + r.Text()
}

// ErrorMessage 把推荐失败转换成给用户看的提示，不再向上抛出
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, scorer.ErrNoMatchesFound):
		return MsgNoMatches
	default:
		return MsgUnavailable
	}
}
