package recommend

import (
	"context"

	"github.com/bagaking/goulp/wlog"
	"github.com/google/uuid"

	"github.com/bagaking/toolscout/history"
	"github.com/bagaking/toolscout/utils"
)

type (
	State string

	// Flow 一个输入框的提交流程: idle -> computing -> result | error
	// Flow 属于单个会话，不要在多个 goroutine 间共享；Surface 本身可以共享
	Flow struct {
		surface Surface
		state   State
		result  *Recommendation
		err     error
		history *history.History
	}
)

const (
	StateIdle      State = "idle"
	StateComputing State = "computing"
	StateResult    State = "result"
	StateError     State = "error"
)

func NewFlow(s Surface) *Flow {
	return &Flow{
		surface: s,
		state:   StateIdle,
		history: history.NewHistory(),
	}
}

// Submit 同步执行一次推荐，错误会被记录在 flow 中并转换为用户提示
func (f *Flow) Submit(ctx context.Context, query string) *Flow {
	requestID := uuid.NewString()
	ctx = utils.InjectRequestID(ctx, requestID)
	log := wlog.ByCtx(ctx, "flow.submit")

	f.state, f.result, f.err = StateComputing, nil, nil
	f.history.EnqueueUserMsg(query)

	rec, err := f.surface.Recommend(ctx, query)
	if err != nil {
		f.state, f.err = StateError, err
		log.WithError(err).Infof("%s flow ends with error", f.surface.Name())
	} else {
		f.state, f.result = StateResult, rec
		log.Infof("%s flow ends with %d picks", f.surface.Name(), len(rec.Matches))
	}
	f.history.EnqueueAssistantMsg(f.Message(), f.surface.Name())
	return f
}

func (f *Flow) State() State {
	return f.state
}

func (f *Flow) Result() *Recommendation {
	return f.result
}

func (f *Flow) Err() error {
	return f.err
}

// Message 当前状态下给用户看的内容
func (f *Flow) Message() string {
	switch f.state {
	case StateResult:
		return f.result.Message()
	case StateError:
		return ErrorMessage(f.err)
	default:
		return ""
	}
}

func (f *Flow) History() *history.History {
	return f.history
}

// Reset 回到 idle，对话记录保留
func (f *Flow) Reset() {
	f.state, f.result, f.err = StateIdle, nil, nil
}
