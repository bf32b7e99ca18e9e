package tools

import (
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		v    string
		want string
	}{
		{v: "447000000000", want: "447000000000"},
		{v: "+447000000000", want: "447000000000"},
		{v: "+44 (700) 000-0000", want: "447000000000"},
		{v: "", want: ""},
	}
	for i, tt := range tests {
		t.Run("Case-"+strconv.Itoa(i+1), func(t *testing.T) {
			if got := NormalizePhone(tt.v); got != tt.want {
				t.Errorf("NormalizePhone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{v: "447000000000", want: true},
		{v: "07000000000", want: false},
		{v: "44700a000000", want: false},
		{v: "12345", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			if got := ValidatePhone(tt.v); got != tt.want {
				t.Errorf("ValidatePhone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSliceHasValue(t *testing.T) {
	sl := []string{"json", "xml"}

	if !SliceHasValue(sl, "xml") {
		t.Error("SliceHasValue(xml) = false, want true")
	}
	if SliceHasValue(sl, "XML") {
		t.Error("SliceHasValue(XML) = true, want false")
	}
}

func TestStopSignal(t *testing.T) {
	ch, stop := StopSignal()
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess: %v", err)
	}
	if err = proc.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Signal: %v", err)
	}

	select {
	case sig := <-ch:
		if sig != syscall.SIGTERM {
			t.Errorf("signal = %v, want %v", sig, syscall.SIGTERM)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("signal is not delivered")
	}

	for i := 0; i < 3; i++ {
		_, stopN := StopSignal()
		stopN()
	}
}

func TestSetViperDefaultsFromObj(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetViperDefaultsFromObj(struct {
		ApiKey   string `mapstructure:"apikey"`
		LogLevel string `mapstructure:"log_level"`
		skipped  string
		NoTag    string
	}{
		LogLevel: "warn",
		skipped:  "x",
		NoTag:    "y",
	})

	if !viper.IsSet("apikey") {
		t.Error("apikey default is not registered")
	}
	if got := viper.GetString("log_level"); got != "warn" {
		t.Errorf("log_level = %q, want warn", got)
	}
	if viper.IsSet("notag") {
		t.Error("untagged field must not be registered")
	}
}
