package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetURLFields checks which query parameters are set and which of them
// can be used directly in a gorm query.
//
// The first return value is the list of field names that gorm can filter
// for directly with a struct query. Fields tagged with filterField:"false"
// need custom filtering in the controller and are excluded from it.
//
// The second return value is the list of all field names that are set in
// the query string, including empty values. This is used to filter for
// unset values, e.g. transactions without a category.
func GetURLFields(u *url.URL, filter any) ([]any, []string) {
	queryFields := make([]any, 0)
	setFields := make([]string, 0)

	query := u.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.Type().NumField(); i++ {
		field := val.Type().Field(i)

		param := strings.Split(field.Tag.Get("form"), ",")[0]
		if param == "" || param == "-" {
			continue
		}

		if _, ok := query[param]; !ok {
			continue
		}

		setFields = append(setFields, field.Name)

		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}

	return queryFields, setFields
}

// GetBodyFields returns the names of all fields of the struct passed in
// that are set in the request body.
//
// This is needed for PATCH requests: a field that is set to its zero
// value must be distinguishable from a field that is not part of the
// request at all. The request body is restored so that it can be bound
// again afterwards.
func GetBodyFields(c *gin.Context, pattern any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, ErrInvalidBody
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, ErrInvalidBody
	}

	fields := make([]any, 0)
	val := reflect.Indirect(reflect.ValueOf(pattern))
	for i := 0; i < val.Type().NumField(); i++ {
		field := val.Type().Field(i)

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}

		if _, ok := raw[name]; ok {
			fields = append(fields, field.Name)
		}
	}

	return fields, nil
}
