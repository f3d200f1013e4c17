package history

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	if q.Dequeue() != 0 {
		t.Fatalf("empty queue should return zero value")
	}

	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	if q.Len() != 3 {
		t.Fatalf("len= %d", q.Len())
	}
	if v := q.Dequeue(); v != 1 {
		t.Fatalf("dequeue= %d", v)
	}
	if all := q.All(); len(all) != 2 || all[0] != 2 || all[1] != 3 {
		t.Fatalf("all= %v", all)
	}
	q.Clear()
	if q.Len() != 0 {
		t.Fatalf("clear failed")
	}
}

func last(h *History) *Message {
	all := h.All()
	return all[len(all)-1]
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	h.EnqueueUserMsg("blog writing tool")
	h.EnqueueAssistantMsg(strings.Repeat("x", MaxAssistantMsgLength+10), "assistant")

	if h.Len() != 2 {
		t.Fatalf("len= %d", h.Len())
	}
	msg := last(h)
	if msg.Role != RoleAssistant || len(msg.Content) > MaxAssistantMsgLength {
		t.Fatalf("assistant message not truncated, len= %d", len(msg.Content))
	}
	if !strings.HasSuffix(msg.Content, "truncated, longer than 6144)") {
		t.Fatalf("missing truncation marker")
	}

	out := h.Transcript()
	if !strings.Contains(out, "[user]") || !strings.Contains(out, "[assistant-assistant]") {
		t.Fatalf("transcript:\n%s", out)
	}
}

func TestHistory_TruncateMultiByte(t *testing.T) {
	// 3 字节的汉字，6144-64 不是 3 的倍数时会落在字符中间
	for _, prefix := range []string{"", "a", "ab"} {
		h := NewHistory()
		answer := prefix + strings.Repeat("推荐工具", MaxAssistantMsgLength/4)
		h.EnqueueAssistantMsg(answer, "assistant")

		got := last(h).Content
		if !utf8.ValidString(got) {
			t.Fatalf("prefix %q: truncated content is not valid utf8", prefix)
		}
		if len(got) > MaxAssistantMsgLength || !strings.Contains(got, "... (truncated") {
			t.Fatalf("prefix %q: len= %d", prefix, len(got))
		}
		body := strings.TrimSuffix(got, fmt.Sprintf("... (truncated, longer than %d)", MaxAssistantMsgLength))
		if !strings.HasPrefix(answer, body) {
			t.Fatalf("prefix %q: kept content is not a prefix of the answer", prefix)
		}
	}
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory()
	for i := 0; i < MaxMessages; i++ {
		h.EnqueueUserMsg(fmt.Sprintf("q%d", i))
		h.EnqueueAssistantMsg(fmt.Sprintf("a%d", i), "assistant")
	}
	if h.Len() != MaxMessages {
		t.Fatalf("len= %d", h.Len())
	}
	// 只保留最近的消息
	if first := h.All()[0]; first.Content != fmt.Sprintf("q%d", MaxMessages/2) {
		t.Fatalf("first= %s", first.Content)
	}
	if msg := last(h); msg.Content != fmt.Sprintf("a%d", MaxMessages-1) {
		t.Fatalf("last= %s", msg.Content)
	}

	h.Clear()
	if h.Len() != 0 || h.Transcript() != "" {
		t.Fatalf("clear failed")
	}
}
