package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hitaloss/business/internal/domain"
)

// decodeTarget is implemented by every command that accepts a request body.
type decodeTarget interface {
	SetDecodeError(err error)
}

var integralPattern = regexp.MustCompile(`\.0*$`)

// decodeBody fills the exported, json-tagged pointer fields of dst from a
// JSON object body. Problems are recorded on dst rather than returned so
// they are reported after the permission checks.
func decodeBody(c echo.Context, dst decodeTarget) {
	if err := decode(c.Request(), dst); err != nil {
		dst.SetDecodeError(err)
	}
}

func decode(req *http.Request, dst any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	contentType := req.Header.Get(echo.HeaderContentType)
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != echo.MIMEApplicationJSON {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType,
			fmt.Sprintf("Unsupported media type %q in request.", contentType))
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "JSON parse error - "+err.Error())
	}
	object, ok := payload.(map[string]any)
	if !ok {
		return domain.NewValidationError(domain.NonFieldErrors,
			fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", jsonTypeName(payload)))
	}

	verr := &domain.ValidationError{}
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" || field.Type.Kind() != reflect.Pointer {
			continue
		}
		raw, present := object[name]
		if !present {
			continue
		}
		if raw == nil {
			verr.Add(name, "This field may not be null.")
			continue
		}

		value, msg := coerce(raw, field.Type.Elem().Kind())
		if msg != "" {
			verr.Add(name, msg)
			continue
		}
		target := reflect.New(field.Type.Elem())
		target.Elem().Set(value.Convert(field.Type.Elem()))
		rv.Field(i).Set(target)
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// coerce converts a decoded JSON value to kind with the same leniency as
// browsable form input: numeric strings are numbers, "yes"/"no" are
// booleans, and so on. It returns a user-facing message on failure.
func coerce(raw any, kind reflect.Kind) (reflect.Value, string) {
	switch kind {
	case reflect.String:
		switch v := raw.(type) {
		case string:
			return reflect.ValueOf(strings.TrimSpace(v)), ""
		case float64:
			return reflect.ValueOf(strconv.FormatFloat(v, 'f', -1, 64)), ""
		}
		return reflect.Value{}, "Not a valid string."

	case reflect.Float64:
		switch v := raw.(type) {
		case float64:
			return reflect.ValueOf(v), ""
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return reflect.ValueOf(f), ""
			}
		}
		return reflect.Value{}, "A valid number is required."

	case reflect.Int:
		var text string
		switch v := raw.(type) {
		case float64:
			text = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			text = strings.TrimSpace(v)
		default:
			return reflect.Value{}, "A valid integer is required."
		}
		n, err := strconv.ParseInt(integralPattern.ReplaceAllString(text, ""), 10, 64)
		if err != nil {
			return reflect.Value{}, "A valid integer is required."
		}
		return reflect.ValueOf(int(n)), ""

	case reflect.Bool:
		switch v := raw.(type) {
		case bool:
			return reflect.ValueOf(v), ""
		case float64:
			if v == 1 || v == 0 {
				return reflect.ValueOf(v == 1), ""
			}
		case string:
			switch strings.ToLower(strings.TrimSpace(v)) {
			case "true", "t", "yes", "y", "on", "1":
				return reflect.ValueOf(true), ""
			case "false", "f", "no", "n", "off", "0":
				return reflect.ValueOf(false), ""
			}
		}
		return reflect.Value{}, "Must be a valid boolean."
	}
	return reflect.Value{}, "Invalid value."
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case []any:
		return "list"
	case string:
		return "str"
	case float64:
		return "float"
	case bool:
		return "bool"
	case nil:
		return "NoneType"
	}
	return "object"
}
