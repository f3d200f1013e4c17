package history

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type (
	Role string

	// Message 对话中的一条消息
	Message struct {
		// Identity 发出消息的 surface，用户消息为空
		Identity string `json:"identity,omitempty"`
		Content  string `json:"content"`
		Role     `json:"role"`
	}

	// History 表示 assistant 的对话记录
	History struct {
		*Queue[*Message]
	}
)

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	MaxAssistantMsgLength = 6 * 1024

	// MaxMessages 超出后从最早的消息开始丢弃
	MaxMessages = 64
)

// NewHistory 创建一个新的 History 实例
func NewHistory() *History {
	return &History{
		Queue: NewQueue[*Message](),
	}
}

// EnqueueUserMsg 将用户消息入队
func (h *History) EnqueueUserMsg(question string) {
	h.enqueue(&Message{
		Content: question,
		Role:    RoleUser,
	})
}

// EnqueueAssistantMsg 将助手消息入队，过长的内容会被截断
func (h *History) EnqueueAssistantMsg(answer string, identity string) {
	if len(answer) > MaxAssistantMsgLength {
		// 在字符边界截断，不切开多字节字符
		cut := MaxAssistantMsgLength - 64
		for cut > 0 && !utf8.RuneStart(answer[cut]) {
			cut--
		}
		answer = answer[:cut] + fmt.Sprintf("... (truncated, longer than %d)", MaxAssistantMsgLength)
	}
	h.enqueue(&Message{
		Content:  answer,
		Role:     RoleAssistant,
		Identity: identity,
	})
}

func (h *History) enqueue(msg *Message) {
	h.Queue.Enqueue(msg)
	for h.Len() > MaxMessages {
		h.Dequeue()
	}
}

// Transcript 渲染整段对话
func (h *History) Transcript() string {
	sb := strings.Builder{}
	for i, msg := range h.All() {
		who := string(msg.Role)
		if msg.Identity != "" {
			who += "-" + msg.Identity
		}
		sb.WriteString(fmt.Sprintf("--- %d. [%s] ---\n%s\n\n", i, who, msg.Content))
	}
	return sb.String()
}
