package mock

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rendau/txtlocal/adapters/logger"
	"github.com/rendau/txtlocal/adapters/sms"
	"github.com/rendau/txtlocal/tools"
)

const maxQueueLen = 100

type St struct {
	lg      logger.Lite
	testing bool

	q  []sms.SendReqSt
	mu sync.Mutex
}

func New(lg logger.Lite, testing bool) *St {
	return &St{
		lg:      lg,
		testing: testing,
		q:       make([]sms.SendReqSt, 0),
	}
}

// SendMessage never reaches a provider, it answers with a success reply
// carrying one mock-<uuid> id per number.
func (m *St) SendMessage(ctx context.Context, message string, numbers []string, params url.Values) (*sms.RepSt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep := &sms.RepSt{
		Status:      sms.StatusSuccess,
		NumMessages: sms.Value(strconv.Itoa(len(numbers))),
		Messages:    make([]sms.MessageIdSt, 0, len(numbers)),
	}

	for _, n := range numbers {
		msgId := sms.MessageIdSt{Id: sms.Value("mock-" + uuid.New().String())}
		if tools.ValidatePhone(n) {
			msgId.Recipient = sms.Value(n)
		}
		rep.Messages = append(rep.Messages, msgId)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.testing {
		m.lg.Infow("Sms sent", "numbers", numbers, "msg", message, "params", params)
		return rep, nil
	}

	if len(m.q) > maxQueueLen {
		m.q = make([]sms.SendReqSt, 0)
	}

	m.q = append(m.q, sms.SendReqSt{
		Message: message,
		Numbers: append([]string(nil), numbers...),
		Params:  params,
	})

	return rep, nil
}

func (m *St) PullAll() []sms.SendReqSt {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := m.q

	m.q = make([]sms.SendReqSt, 0)

	return q
}

func (m *St) Clean() {
	_ = m.PullAll()
}
