package httpc

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Object2UrlValues encodes `form` tagged fields, nil pointers are skipped.
func Object2UrlValues(obj interface{}) url.Values {
	result := url.Values{}

	v := reflect.Indirect(reflect.ValueOf(obj))
	fields := reflect.VisibleFields(v.Type())

	var fieldTag string
	var tagName string
	var omitEmpty bool
	var fValue reflect.Value
	var fType reflect.Type

	for _, field := range fields {
		if field.Anonymous || !field.IsExported() {
			continue
		}

		fieldTag = field.Tag.Get("form")
		if fieldTag == "" || fieldTag == "-" {
			continue
		}

		tagParts := strings.SplitN(fieldTag, ",", 2)
		tagName = tagParts[0]
		omitEmpty = len(tagParts) > 1 && tagParts[1] == "omitempty"
		fValue = v.FieldByIndex(field.Index)
		fType = field.Type

		if fType.Kind() == reflect.Pointer {
			if fValue.IsNil() {
				continue
			}

			fValue = fValue.Elem()
			fType = fType.Elem()
		}

		if omitEmpty && fValue.IsZero() {
			continue
		}

		switch fType.Kind() {
		case reflect.Slice, reflect.Array:
			strSlice := make([]string, fValue.Len())
			for i := 0; i < len(strSlice); i++ {
				strSlice[i] = fmt.Sprintf("%v", fValue.Index(i).Interface())
			}
			result[tagName] = strSlice
		default:
			result.Set(tagName, fmt.Sprintf("%v", fValue.Interface()))
		}
	}

	return result
}
