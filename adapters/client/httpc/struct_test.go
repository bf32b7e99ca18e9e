package httpc

import (
	"net/http"
	"strconv"
	"testing"
	"time"
)

func TestOptionsStGetMergedWith(t *testing.T) {
	base := OptionsSt{
		BaseUrl:       "https://api.txtlocal.com",
		BaseHeaders:   http.Header{"User-Agent": {"txtlocal-cli"}},
		Method:        "GET",
		LogFlags:      LogRequest,
		RetryCount:    2,
		RetryInterval: time.Second,
		Timeout:       10 * time.Second,
	}

	got := base.GetMergedWith(OptionsSt{
		Method:     "POST",
		Path:       "send",
		LogFlags:   -1,
		RetryCount: -1,
		Timeout:    -1,
	})

	if got.BaseUrl != base.BaseUrl {
		t.Errorf("BaseUrl = %q, want %q", got.BaseUrl, base.BaseUrl)
	}
	if got.BaseHeaders.Get("User-Agent") != "txtlocal-cli" {
		t.Errorf("BaseHeaders = %v", got.BaseHeaders)
	}
	if got.Method != "POST" || got.Path != "send" {
		t.Errorf("Method/Path = %q/%q", got.Method, got.Path)
	}
	if got.LogFlags != 0 {
		t.Errorf("LogFlags = %d, want 0", got.LogFlags)
	}
	if got.RetryCount != 0 {
		t.Errorf("RetryCount = %d, want 0", got.RetryCount)
	}
	if got.RetryInterval != time.Second {
		t.Errorf("RetryInterval = %v, want 1s", got.RetryInterval)
	}
	if got.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", got.Timeout)
	}

	got = got.GetMergedWith(OptionsSt{BaseUrl: "-", Method: "-"})
	if got.BaseUrl != "" || got.Method != "" {
		t.Errorf("BaseUrl/Method = %q/%q, want empty", got.BaseUrl, got.Method)
	}
}

func TestOptionsStUri(t *testing.T) {
	tests := []struct {
		opts OptionsSt
		want string
	}{
		{opts: OptionsSt{BaseUrl: "https://api.txtlocal.com", Path: "send"}, want: "https://api.txtlocal.com/send"},
		{opts: OptionsSt{BaseUrl: "https://api.txtlocal.com/", Path: "/send"}, want: "https://api.txtlocal.com/send"},
		{opts: OptionsSt{Path: "https://example.com/x"}, want: "https://example.com/x"},
	}
	for i, tt := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			if got := tt.opts.Uri(); got != tt.want {
				t.Errorf("Uri() = %v, want %v", got, tt.want)
			}
		})
	}
}
