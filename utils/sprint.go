package utils

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Card 终端里带边框的卡片，Lines 会带行号输出
type Card struct {
	Title string
	Lines []string
}

// SPrintWithFrameCard 把 content 按行渲染成带边框的卡片，maxWidth <= 0 表示不限宽
func SPrintWithFrameCard(title, content string, maxWidth int) string {
	return Card{Title: title, Lines: strings.Split(content, "\n")}.Render(maxWidth)
}

// SPrintCards 渲染多张卡片，卡片之间空一行
func SPrintCards(cards []Card, maxWidth int) string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Render(maxWidth))
	}
	return strings.Join(out, "\n\n")
}

func (c Card) Render(maxWidth int) string {
	lines := c.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}

	maxLength := runewidth.StringWidth(c.Title)
	for _, line := range lines {
		if l := runewidth.StringWidth(line); l > maxLength {
			maxLength = l
		}
	}
	if maxWidth > 0 && maxLength > maxWidth {
		maxLength = maxWidth
	}
	title := runewidth.Truncate(c.Title, maxLength, "…")

	lineNumberWidth := len(fmt.Sprintf("%d", len(lines)))
	border := strings.Repeat("═", maxLength+lineNumberWidth+5)

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("╔%s╗\n║ %s%s ║\n╠%s╣\n",
		border,
		title,
		strings.Repeat(" ", maxLength+lineNumberWidth+3-runewidth.StringWidth(title)), // 3 = ' | '
		border,
	))
	for i, line := range lines {
		lineNumber := fmt.Sprintf("%*d", lineNumberWidth, i+1)
		for _, wrapped := range wrapText(line, maxLength) {
			sb.WriteString(fmt.Sprintf("║ %s | %s%s ║\n", lineNumber, wrapped, strings.Repeat(" ", maxLength-runewidth.StringWidth(wrapped))))
			lineNumber = strings.Repeat(" ", lineNumberWidth) // 折行后的行号用空格填充
		}
	}
	sb.WriteString(fmt.Sprintf("╚%s╝", border))
	return sb.String()
}

func wrapText(text string, maxWidth int) []string {
	if runewidth.StringWidth(text) <= maxWidth {
		return []string{text}
	}
	var wrapped []string
	var current strings.Builder
	currentWidth := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > maxWidth {
			wrapped = append(wrapped, current.String())
			current.Reset()
			currentWidth = 0
		}
		current.WriteRune(r)
		currentWidth += rw
	}
	return append(wrapped, current.String())
}
