package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/rendau/txtlocal/adapters/client/httpc"
	"github.com/rendau/txtlocal/adapters/logger"
	"github.com/rendau/txtlocal/errs"
)

const (
	ErrPageNotFound = errs.Err("page_not_found")
)

type St struct {
	lg logger.Lite

	requests  []*RequestSt
	responses map[string]ResponseSt
	mu        sync.Mutex
}

type RequestSt struct {
	Opts httpc.OptionsSt
	Raw  []byte
	Form url.Values
}

type ResponseSt struct {
	Obj any
	Raw []byte
	Err error
}

func New(lg logger.Lite) *St {
	return &St{
		lg: lg,

		requests:  []*RequestSt{},
		responses: map[string]ResponseSt{},
	}
}

func (c *St) SetResponse(path string, response ResponseSt) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(response.Raw) == 0 && response.Obj != nil {
		var err error

		response.Raw, err = json.Marshal(response.Obj)
		if err != nil {
			c.lg.Errorw("Fail to marshal json", err)
		}
	}

	c.responses[path] = response
}

func (c *St) GetOptions() httpc.OptionsSt {
	return httpc.OptionsSt{}
}

func (c *St) Send(ctx context.Context, reqBody []byte, opts httpc.OptionsSt) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	request := &RequestSt{
		Opts: opts,
		Raw:  reqBody,
	}

	if opts.Headers.Get("Content-Type") == httpc.ContentTypeForm {
		request.Form, _ = url.ParseQuery(string(reqBody))
	}

	c.requests = append(c.requests, request)

	response, ok := c.responses[opts.Path]
	if !ok {
		c.lg.Infow("Httpc-mock, path not found", "path", opts.Path)
		return nil, ErrPageNotFound
	}

	if response.Err != nil {
		return nil, response.Err
	}

	return response.Raw, nil
}

func (c *St) SendForm(ctx context.Context, form url.Values, opts httpc.OptionsSt) ([]byte, error) {
	opts.Headers = cloneHeaders(opts.Headers)
	opts.Headers.Set("Content-Type", httpc.ContentTypeForm)

	return c.Send(ctx, []byte(form.Encode()), opts)
}

func (c *St) GetRequests() []*RequestSt {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*RequestSt, len(c.requests))
	copy(result, c.requests)

	return result
}

// GetRequest returns the first request sent to path.
func (c *St) GetRequest(path string) (*RequestSt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, req := range c.requests {
		if req.Opts.Path == path {
			return req, true
		}
	}

	return nil, false
}

func (c *St) Clean() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests = []*RequestSt{}
	c.responses = map[string]ResponseSt{}
}

func cloneHeaders(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}

	return h.Clone()
}
