package main

import (
	"context"
	"os"

	"github.com/bagaking/goulp/wlog"
	"github.com/khicago/got/util/typer"
	"gopkg.in/yaml.v2"

	"github.com/bagaking/toolscout/catalog"
	"github.com/bagaking/toolscout/recommend"
	"github.com/bagaking/toolscout/utils"
)

type (
	Conf struct {
		LogDir   string `yaml:"log_dir"`
		LogLevel string `yaml:"log_level"`

		// CatalogPath 为空时使用内置的 catalog
		CatalogPath string `yaml:"catalog_path"`

		Assistant AssistantConf `yaml:"assistant"`
		Stack     StackConf     `yaml:"stack"`
	}

	AssistantConf struct {
		Limit int `yaml:"limit"`
	}

	StackConf struct {
		Limit      int `yaml:"limit"`
		MinResults int `yaml:"min_results"`
	}
)

const DefaultConfigPath = "./conf.yml"

func DefaultConf() Conf {
	return Conf{
		LogDir:    utils.DefaultLogDir,
		LogLevel:  "info",
		Assistant: AssistantConf{Limit: recommend.DefaultAssistantLimit},
		Stack: StackConf{
			Limit:      recommend.DefaultStackLimit,
			MinResults: recommend.DefaultStackMinResults,
		},
	}
}

// LoadConf 读取配置，文件不存在或格式错误时使用默认配置
func LoadConf(ctx context.Context, path string) Conf {
	log := wlog.ByCtx(ctx, "load_conf")
	path = typer.Or(path, utils.EnvConfPath.Read(DefaultConfigPath))

	c := DefaultConf()
	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Warnf("Failed to read config file %s, use default", path)
		return c.withEnv()
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		log.WithError(err).Warnf("Failed to unmarshal config %s, use default", path)
		return DefaultConf().withEnv()
	}
	return c.withDefaults().withEnv()
}

// withEnv 环境变量优先于配置文件
func (c Conf) withEnv() Conf {
	c.LogLevel = utils.EnvLogLevel.Read(c.LogLevel)
	return c
}

// withDefaults 未配置的字段使用默认值
func (c Conf) withDefaults() Conf {
	d := DefaultConf()
	c.LogDir = typer.Or(c.LogDir, d.LogDir)
	c.LogLevel = typer.Or(c.LogLevel, d.LogLevel)
	c.Assistant.Limit = typer.Or(c.Assistant.Limit, d.Assistant.Limit)
	c.Stack.Limit = typer.Or(c.Stack.Limit, d.Stack.Limit)
	c.Stack.MinResults = typer.Or(c.Stack.MinResults, d.Stack.MinResults)
	return c
}

// LoadCatalog 加载 catalog，CatalogPath 的内容追加在内置数据之后
func (c Conf) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	l := catalog.NewLoader().LoadDefault(ctx)
	if c.CatalogPath != "" {
		l = l.LoadFile(ctx, c.CatalogPath)
	}
	return l.Build()
}

func (c Conf) NewAssistant(cat *catalog.Catalog) *recommend.Assistant {
	return recommend.NewAssistant(cat, c.Assistant.Limit)
}

func (c Conf) NewStackGenerator(cat *catalog.Catalog) *recommend.StackGenerator {
	return recommend.NewStackGenerator(cat, c.Stack.Limit, c.Stack.MinResults)
}
