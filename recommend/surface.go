package recommend

import (
	"context"

	"github.com/bagaking/goulp/jsonex"
	"github.com/bagaking/goulp/wlog"
	"github.com/khicago/irr"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/scorer"
	"github.com/bagaking/toolscout/utils"
)

type (
	// Surface 一个调用打分器的展示入口
	Surface interface {
		Name() string
		Recommend(ctx context.Context, query string) (*Recommendation, error)
	}

	// Assistant 助手输入框，结果为空时返回 scorer.ErrNoMatchesFound
	Assistant struct {
		catalog *catalog.Catalog
		limit   int
	}

	// StackGenerator 工具栈生成器，命中不足 MinResults 时用目录中的其它工具补齐，从不失败
	StackGenerator struct {
		catalog    *catalog.Catalog
		limit      int
		minResults int
	}
)

const (
	SurfaceAssistant = "assistant"
	SurfaceStack     = "stack"

	DefaultAssistantLimit  = 3
	DefaultStackLimit      = 5
	DefaultStackMinResults = 3
)

var (
	_ Surface = &Assistant{}
	_ Surface = &StackGenerator{}
)

// NewAssistant limit <= 0 时使用 DefaultAssistantLimit
func NewAssistant(c *catalog.Catalog, limit int) *Assistant {
	if limit <= 0 {
		limit = DefaultAssistantLimit
	}
	return &Assistant{catalog: c, limit: limit}
}

func (a *Assistant) Name() string {
	return SurfaceAssistant
}

func (a *Assistant) Recommend(ctx context.Context, query string) (*Recommendation, error) {
	ctx = utils.InjectSurfaceLogKey(ctx, a.Name())
	log := wlog.ByCtx(ctx, "assistant.recommend")

	result, err := scorer.Score(query, a.catalog.Tools(), a.limit)
	if err != nil {
		log.WithError(err).Infof("assistant found nothing for %q", query)
		return nil, irr.Wrap(err, "assistant")
	}
	rec := newRecommendation(ctx, a.Name(), query, result)
	log.Debugf("assistant picks %s", jsonex.MustMarshalToString(rec.ToolIDs()))
	return rec, nil
}

// NewStackGenerator limit / minResults <= 0 时使用默认值
func NewStackGenerator(c *catalog.Catalog, limit, minResults int) *StackGenerator {
	if limit <= 0 {
		limit = DefaultStackLimit
	}
	if minResults <= 0 {
		minResults = DefaultStackMinResults
	}
	return &StackGenerator{catalog: c, limit: limit, minResults: minResults}
}

func (s *StackGenerator) Name() string {
	return SurfaceStack
}

func (s *StackGenerator) Recommend(ctx context.Context, query string) (*Recommendation, error) {
	ctx = utils.InjectSurfaceLogKey(ctx, s.Name())
	log := wlog.ByCtx(ctx, "stack.recommend")

	result, err := scorer.Score(query, s.catalog.Tools(), s.limit, scorer.WithMinResults(s.minResults))
	if err != nil { // 补齐模式下不会发生
		return nil, irr.Wrap(err, "stack generator")
	}
	rec := newRecommendation(ctx, s.Name(), query, result)
	log.Debugf("stack picks %s, padded %d", jsonex.MustMarshalToString(rec.ToolIDs()), rec.PaddedCount())
	return rec, nil
}
