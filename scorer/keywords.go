package scorer

import (
	"strings"
	"unicode/utf8"

	"github.com/khicago/got/util/typer"
)

// MinKeywordLen 长度不超过这个值的词不参与匹配
const MinKeywordLen = 2

// Keywords 将 query 转小写，按空白切分，丢掉过短的词，并按首次出现顺序去重
func Keywords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= MinKeywordLen || typer.SliceContains(ret, f) {
			continue
		}
		ret = append(ret, f)
	}
	return ret
}
