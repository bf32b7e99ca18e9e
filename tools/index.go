package tools

import (
	"os"
	"os/signal"
	"reflect"
	"regexp"
	"strings"
	"syscall"

	"github.com/spf13/viper"
)

var (
	phoneRegexp = regexp.MustCompile(`^[1-9][0-9]{6,30}$`)
)

// NormalizePhone strips whitespace, dashes and a leading '+'.
func NormalizePhone(p string) string {
	p = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')':
			return -1
		}
		return r
	}, p)

	return strings.TrimPrefix(p, "+")
}

func ValidatePhone(v string) bool {
	return phoneRegexp.MatchString(v)
}

func SliceHasValue[T comparable](sl []T, v T) bool {
	for _, x := range sl {
		if x == v {
			return true
		}
	}

	return false
}

// StopSignal subscribes to interrupt and terminate signals. The returned
// func unsubscribes and must be called once the channel is no longer read.
func StopSignal() (<-chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return ch, func() { signal.Stop(ch) }
}

func SetViperDefaultsFromObj(obj any) {
	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("mapstructure")
		if fieldTag == "" {
			continue
		}

		tagName = strings.SplitN(fieldTag, ",", 2)[0]

		viper.SetDefault(tagName, v.FieldByIndex(field.Index).Interface())
	}
}
