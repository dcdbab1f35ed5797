package client

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// BuildQueryString renders the `q` tagged fields of opts as a query string.
// Zero values are skipped unless the field also carries `required:"true"`,
// in which case an error is returned.
func BuildQueryString(opts any) (*url.URL, error) {
	optsValue := reflect.ValueOf(opts)
	if optsValue.Kind() == reflect.Ptr {
		optsValue = optsValue.Elem()
	}

	if optsValue.Kind() != reflect.Struct {
		return nil, fmt.Errorf("Options type is not a struct.")
	}

	optsType := optsValue.Type()
	params := url.Values{}

	for i := 0; i < optsValue.NumField(); i++ {
		v := optsValue.Field(i)
		f := optsType.Field(i)
		qTag := f.Tag.Get("q")

		if qTag == "" {
			continue
		}

		name := strings.Split(qTag, ",")[0]

		if isZero(v) {
			if requiredTag := f.Tag.Get("required"); requiredTag == "true" {
				return &url.URL{}, fmt.Errorf("Required query parameter [%s] not set.", f.Name)
			}
			continue
		}

		for v.Kind() == reflect.Ptr {
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.String:
			params.Add(name, v.String())
		case reflect.Int, reflect.Int32, reflect.Int64:
			params.Add(name, strconv.FormatInt(v.Int(), 10))
		case reflect.Bool:
			params.Add(name, strconv.FormatBool(v.Bool()))
		case reflect.Slice:
			var values []string
			for j := 0; j < v.Len(); j++ {
				values = append(values, fmt.Sprint(v.Index(j).Interface()))
			}
			if sliceFormat := f.Tag.Get("format"); sliceFormat == "comma-separated" {
				params.Add(name, strings.Join(values, ","))
			} else {
				params[name] = append(params[name], values...)
			}
		}
	}

	return &url.URL{RawQuery: params.Encode()}, nil
}

var t time.Time

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr:
		return v.IsNil()
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0)
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(t) {
			return v.Interface().(time.Time).IsZero()
		}
		z := true
		for i := 0; i < v.NumField(); i++ {
			z = z && isZero(v.Field(i))
		}
		return z
	}
	z := reflect.Zero(v.Type())
	return v.Interface() == z.Interface()
}
