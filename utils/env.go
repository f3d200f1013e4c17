package utils

import (
	"os"
)

type (
	EnvKey string
)

const (
	EnvConfPath EnvKey = "TOOLSCOUT_CONF"
	EnvLogLevel EnvKey = "TOOLSCOUT_LOG_LEVEL"
)

// Read 读取环境变量，为空时返回第一个 or
func (ek EnvKey) Read(or ...string) string {
	v := os.Getenv(string(ek))
	if v != "" {
		return v
	}
	if len(or) > 0 {
		return or[0]
	}
	return ""
}
