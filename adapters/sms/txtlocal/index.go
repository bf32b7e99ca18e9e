package txtlocal

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/rendau/txtlocal/adapters/client/httpc"
	"github.com/rendau/txtlocal/adapters/logger"
	"github.com/rendau/txtlocal/adapters/sms"
	"github.com/rendau/txtlocal/errs"
	"github.com/rendau/txtlocal/tools"
)

type St struct {
	lg    logger.Lite
	httpc httpc.HttpC

	mu     sync.RWMutex
	auth   CredsSt
	format string
	sender string
}

// New returns a client for the Textlocal send API. Requests go to the
// BaseUrl of hc, or to ApiUrl when hc has none.
func New(lg logger.Lite, hc httpc.HttpC, creds *CredsSt) (*St, error) {
	s := &St{
		lg:    lg,
		httpc: hc,
	}

	if err := s.SetAuth(creds); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *St) SetAuth(creds *CredsSt) error {
	auth, err := creds.Normalized()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.auth = auth
	s.mu.Unlock()

	return nil
}

func (s *St) SetFormat(format string) error {
	v, err := normalizeFormat(format)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.format = v
	s.mu.Unlock()

	return nil
}

func (s *St) SetSender(sender string) *St {
	s.mu.Lock()
	s.sender = sender
	s.mu.Unlock()

	return s
}

func (s *St) Format() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.format
}

func (s *St) Sender() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sender
}

// SendMessage makes one POST to the send endpoint. A reply classified as
// failure is returned together with a *FailRepErr holding the same reply.
// Transport errors are returned as is.
func (s *St) SendMessage(ctx context.Context, message string, numbers []string, params url.Values) (*sms.RepSt, error) {
	form, err := s.buildForm(message, numbers, params)
	if err != nil {
		return nil, err
	}

	format := form.Get("format")

	opts := httpc.OptionsSt{
		Method:     http.MethodPost,
		Path:       SendPath,
		Headers:    http.Header{"Accept": {acceptHeader(format)}},
		LogPrefix:  "txtlocal: ",
		RetryCount: -1,
	}
	if s.httpc.GetOptions().BaseUrl == "" {
		opts.BaseUrl = ApiUrl
	}

	repBody, err := s.httpc.SendForm(ctx, form, opts)
	if err != nil {
		return nil, err
	}

	rep, err := decodeStatus(repBody, format)
	if err != nil {
		s.lg.Errorw("Fail to decode txtlocal response", err, "format", format, "rep_body", string(repBody))
		return rep, errs.ErrWithDesc{Err: errs.BadResponse, Desc: err.Error()}
	}

	if err = decodeDetails(rep, format); err != nil {
		s.lg.Debugw("Txtlocal response details are partially decoded", "error", err, "rep_body", string(repBody))
	}

	if IsFailResponse(rep) {
		s.lg.Warnw("Txtlocal fail response",
			"status", rep.Status,
			"errors", rep.Errors,
			"numbers", form.Get("numbers"),
		)
		return rep, &FailRepErr{Rep: rep}
	}

	return rep, nil
}

func IsFailResponse(rep *sms.RepSt) bool {
	return rep == nil || rep.Status != sms.StatusSuccess
}

func (s *St) buildForm(message string, numbers []string, params url.Values) (url.Values, error) {
	s.mu.RLock()
	auth, format, sender := s.auth, s.format, s.sender
	s.mu.RUnlock()

	if auth.Kind() == CredsKindNone {
		return nil, errs.InvalidCredentials
	}

	form := httpc.Object2UrlValues(&auth)

	if format != "" {
		form.Set("format", format)
	}

	form.Set("message", encodeURIComponent(message))
	form.Set("numbers", strings.Join(numbers, ","))

	for k, vs := range params {
		form[k] = append([]string(nil), vs...)
	}

	if _, ok := params["format"]; ok {
		v, err := normalizeFormat(params.Get("format"))
		if err != nil {
			return nil, err
		}
		form.Set("format", v)
	}

	if form.Get("sender") == "" && sender != "" {
		form.Set("sender", encodeURIComponent(sender))
	}

	return form, nil
}

func normalizeFormat(format string) (string, error) {
	v := strings.ToLower(format)
	if !tools.SliceHasValue(formats, v) {
		return "", errs.InvalidFormat
	}

	return v, nil
}

func acceptHeader(format string) string {
	if format == FormatXml {
		return httpc.ContentTypeXml
	}

	return httpc.ContentTypeJson
}

// decodeStatus reads only the status, the body is kept in Raw even on error.
func decodeStatus(repBody []byte, format string) (*sms.RepSt, error) {
	rep := &sms.RepSt{Raw: repBody}

	var err error
	if format == FormatXml {
		st := struct {
			Status string `xml:"status"`
		}{}
		err = xml.Unmarshal(repBody, &st)
		rep.Status = st.Status
	} else {
		st := struct {
			Status sms.Value `json:"status"`
		}{}
		err = json.Unmarshal(repBody, &st)
		rep.Status = st.Status.String()
	}

	return rep, err
}

// decodeDetails fills the typed fields as far as the body allows. Status and
// Raw are never changed by it.
func decodeDetails(rep *sms.RepSt, format string) error {
	status, raw := rep.Status, rep.Raw

	var err error
	if format == FormatXml {
		err = xml.Unmarshal(raw, rep)
	} else {
		err = json.Unmarshal(raw, rep)
	}

	rep.Status, rep.Raw = status, raw

	return err
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ),
// the provider expects message and sender pre-escaped this way.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case strings.IndexByte("-_.!~*'()", c) >= 0:
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}

	return b.String()
}
