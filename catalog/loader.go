package catalog

import (
	"context"
	_ "embed"
	"os"

	"github.com/bagaking/goulp/wlog"
	"github.com/khicago/irr"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yml
var defaultCatalog []byte

type (
	// document catalog 文件的结构
	document struct {
		Categories []*Category `yaml:"categories"`
		Tools      []*Tool     `yaml:"tools"`
		Stacks     []*Stack    `yaml:"stacks"`
	}

	// Loader 链式加载 catalog，第一个错误会被记住，之后的步骤都直接跳过
	Loader struct {
		doc document
		err error
	}
)

var ErrLoadCatalog = irr.Error("load catalog failed")

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) Error() error {
	return l.err
}

// LoadDefault 加载内置的 catalog
func (l *Loader) LoadDefault(ctx context.Context) *Loader {
	return l.load(ctx, "<default>", defaultCatalog)
}

// LoadFile 从 yaml 文件加载，内容追加在已加载内容之后
func (l *Loader) LoadFile(ctx context.Context, path string) *Loader {
	if l.err != nil {
		return l
	}
	data, err := os.ReadFile(path)
	if err != nil {
		l.err = irr.Wrap(ErrLoadCatalog, "read %s, err= %v", path, err)
		return l
	}
	return l.load(ctx, path, data)
}

// LoadBytes 从 yaml 数据加载
func (l *Loader) LoadBytes(ctx context.Context, data []byte) *Loader {
	return l.load(ctx, "<bytes>", data)
}

func (l *Loader) load(ctx context.Context, source string, data []byte) *Loader {
	if l.err != nil {
		return l
	}
	log := wlog.ByCtx(ctx, "catalog.load")

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		l.err = irr.Wrap(ErrLoadCatalog, "unmarshal %s, err= %v", source, err)
		return l
	}
	l.doc.Categories = append(l.doc.Categories, doc.Categories...)
	l.doc.Tools = append(l.doc.Tools, doc.Tools...)
	l.doc.Stacks = append(l.doc.Stacks, doc.Stacks...)

	log.Debugf("loaded %d tools, %d categories, %d stacks from %s", len(doc.Tools), len(doc.Categories), len(doc.Stacks), source)
	return l
}

// Build 校验所有已加载的内容并生成 Catalog
func (l *Loader) Build() (*Catalog, error) {
	if l.err != nil {
		return nil, l.err
	}
	c, err := New(l.doc.Tools, l.doc.Categories, l.doc.Stacks...)
	if err != nil {
		return nil, irr.Wrap(err, "build catalog failed")
	}
	return c, nil
}

// MustLoadDefault 加载内置 catalog，失败时 panic，内置数据在测试中保证有效
func MustLoadDefault(ctx context.Context) *Catalog {
	c, err := NewLoader().LoadDefault(ctx).Build()
	if err != nil {
		panic(err)
	}
	return c
}
