package util

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// ValidationError represents dimension validation errors with detailed information.
type ValidationError struct {
	Field   string `json:"field"`   // Field that failed validation
	Value   any    `json:"value"`   // Value that was provided
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// RequireNumber extracts the named field from a params map and widens it to
// float64. It returns a *ValidationError when the field is missing or not a
// numeric type. JSON decoding commonly produces float64 for every number;
// plain Go integers are accepted too.
func RequireNumber(params map[string]any, field string) (float64, error) {
	raw, exists := params[field]
	if !exists {
		return 0, &ValidationError{
			Field:   field,
			Message: "required field is missing",
		}
	}

	v, ok := toFloat(raw)
	if !ok {
		return 0, &ValidationError{
			Field:   field,
			Value:   raw,
			Message: fmt.Sprintf("expected type number, got %T", raw),
		}
	}

	return v, nil
}

// CheckDimension validates a single named dimension: it must be a finite,
// non-negative number.
func CheckDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Value: v, Message: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Value: v, Message: "must be non-negative"}
	}
	return nil
}

// ValidateDimensions checks every exported numeric field of a shape struct
// against the dimension invariant (finite, non-negative). Non-struct shapes
// and non-numeric fields are skipped. This is the safety net for shapes built
// as struct literals, which bypass the validating constructors.
func ValidateDimensions(shape any) error {
	v := reflect.ValueOf(shape)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv, ok := numericField(v.Field(i))
		if !ok {
			continue
		}
		if err := CheckDimension(fieldName(field), fv); err != nil {
			return err
		}
	}

	return nil
}

// Dimensions returns the exported numeric fields of a shape struct keyed by
// their json tag (or lowercased field name). Intended for structured logging
// and diagnostics; returns an empty map for non-struct shapes.
func Dimensions(shape any) map[string]float64 {
	dims := make(map[string]float64)

	v := reflect.ValueOf(shape)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return dims
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return dims
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv, ok := numericField(v.Field(i))
		if !ok {
			continue
		}
		dims[fieldName(field)] = fv
	}

	return dims
}

// fieldName resolves the logging/validation name of a struct field: the json
// tag when present, otherwise the lowercased field name.
func fieldName(field reflect.StructField) string {
	if tag := field.Tag.Get("json"); tag != "" && tag != "-" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			return parts[0]
		}
	}
	return strings.ToLower(field.Name)
}

// numericField extracts a float64 from a reflect value if it holds any
// numeric kind.
func numericField(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	default:
		return 0, false
	}
}

// toFloat widens any Go numeric value to float64.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
