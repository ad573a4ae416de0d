package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Schema is implemented by every request body that maps to a collection.
type Schema interface {
	// Collection returns the name of the collection the record belongs to.
	Collection() string

	// Document converts the validated record to a store document,
	// applying defaults for omitted optional fields.
	Document() Document
}

// SchemaInfo describes one record schema.
type SchemaInfo struct {
	Name       string      `json:"name"`
	Collection string      `json:"collection"`
	Fields     []FieldInfo `json:"fields"`
}

// FieldInfo describes a single schema field.
type FieldInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Nullable    bool   `json:"nullable"`
	Constraints string `json:"constraints,omitempty"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default"`
}

var schemaFactories = []struct {
	name string
	new  func() Schema
}{
	{"Product", func() Schema { return &ProductRequest{} }},
	{"Review", func() Schema { return &ReviewRequest{} }},
	{"Collection", func() Schema { return &CollectionRequest{} }},
	{"Athlete", func() Schema { return &AthleteRequest{} }},
	{"Newsletter", func() Schema { return &NewsletterRequest{} }},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := jsonName(fld)
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewSchema returns an empty record for the given collection.
func NewSchema(collection string) (Schema, error) {
	for _, f := range schemaFactories {
		if s := f.new(); s.Collection() == collection {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown collection %q", collection)
}

// Schemas describes every record schema, in a stable order.
func Schemas() []SchemaInfo {
	infos := make([]SchemaInfo, 0, len(schemaFactories))
	for _, f := range schemaFactories {
		infos = append(infos, describe(f.name, f.new()))
	}
	return infos
}

// Decode unmarshals a JSON object into dst and validates it.
// Keys bind only when they equal a field's JSON name exactly; any other key
// is ignored. An explicit null is accepted only on fields tagged
// nullable:"true". Any failure is returned as a *ValidationError.
func Decode(data []byte, dst Schema) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return decodeError(err)
	}

	bindErr := bind(raw, dst)
	err := Validate(dst)
	if bindErr == nil {
		return err
	}

	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		bindErr.merge(verr)
	}
	return bindErr
}

// bind assigns each exactly named key of raw to its field in dst.
func bind(raw map[string]json.RawMessage, dst Schema) *ValidationError {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()

	var fields []FieldError
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := jsonName(sf)
		value, ok := raw[name]
		if !ok || name == "-" {
			continue
		}

		loc := []string{"body", name}
		value = bytes.TrimSpace(value)
		if bytes.Equal(value, []byte("null")) {
			if sf.Tag.Get("nullable") != "true" {
				msg, errType := expectation(sf.Type)
				fields = append(fields, FieldError{Loc: loc, Msg: msg, Type: errType})
			}
			continue
		}

		if fe := bindValue(value, v.Field(i), loc); fe != nil {
			fields = append(fields, *fe)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func bindValue(data json.RawMessage, field reflect.Value, loc []string) *FieldError {
	if t := field.Type(); t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Int {
		return bindInt(data, field, loc)
	}

	if err := json.Unmarshal(data, field.Addr().Interface()); err != nil {
		t := field.Type()
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			t = typeErr.Type
		}
		msg, errType := expectation(t)
		return &FieldError{Loc: loc, Msg: msg, Type: errType}
	}
	return nil
}

// maxExactFloatInt is the largest magnitude at which every float64 whole
// number is an exact integer.
const maxExactFloatInt = 1 << 53

// bindInt accepts JSON integers and floats without a fractional part.
func bindInt(data json.RawMessage, field reflect.Value, loc []string) *FieldError {
	invalid := &FieldError{Loc: loc, Msg: "Input should be a valid integer", Type: ErrTypeIntType}

	var n json.Number
	if len(data) == 0 || data[0] == '"' || json.Unmarshal(data, &n) != nil {
		return invalid
	}

	i, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || math.Abs(f) > maxExactFloatInt {
			return invalid
		}
		if f != math.Trunc(f) {
			return &FieldError{
				Loc:  loc,
				Msg:  "Input should be a valid integer, got a number with a fractional part",
				Type: ErrTypeIntFromFloat,
			}
		}
		i = int64(f)
	}

	value := int(i)
	field.Set(reflect.ValueOf(&value))
	return nil
}

// Validate checks the field rules of an already decoded record.
func Validate(s Schema) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %s: %w", s.Collection(), err)
	}

	verr := &ValidationError{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, fieldError(fe))
	}
	return verr
}

func fieldError(fe validator.FieldError) FieldError {
	loc := []string{"body", fe.Field()}
	switch fe.Tag() {
	case "required":
		return FieldError{Loc: loc, Msg: "Field required", Type: ErrTypeMissing}
	case "gte":
		return FieldError{
			Loc:  loc,
			Msg:  "Input should be greater than or equal to " + fe.Param(),
			Type: ErrTypeGreaterThanEqual,
		}
	case "lte":
		return FieldError{
			Loc:  loc,
			Msg:  "Input should be less than or equal to " + fe.Param(),
			Type: ErrTypeLessThanEqual,
		}
	default:
		return FieldError{Loc: loc, Msg: fe.Error(), Type: fe.Tag()}
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		msg, errType := expectation(typeErr.Type)
		return NewValidationError(loc, msg, errType)
	}
	return NewValidationError([]string{"body"}, "JSON decode error", ErrTypeJSONInvalid)
}

func expectation(t reflect.Type) (string, string) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "Input should be a valid string", ErrTypeStringType
	case reflect.Float32, reflect.Float64:
		return "Input should be a valid number", ErrTypeFloatType
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "Input should be a valid integer", ErrTypeIntType
	case reflect.Bool:
		return "Input should be a valid boolean", ErrTypeBoolType
	case reflect.Slice:
		return "Input should be a valid list", ErrTypeListType
	default:
		return "Input should be a valid dictionary", ErrTypeDictType
	}
}

func describe(name string, s Schema) SchemaInfo {
	// Document on an empty record yields the defaults of optional fields.
	defaults := s.Document()

	t := reflect.TypeOf(s).Elem()
	fields := make([]FieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fieldName := jsonName(sf)
		required, constraints := splitRules(sf.Tag.Get("validate"))

		info := FieldInfo{
			Name:        fieldName,
			Type:        typeName(sf.Type),
			Required:    required,
			Nullable:    sf.Tag.Get("nullable") == "true",
			Constraints: constraints,
			Description: sf.Tag.Get("doc"),
		}
		if !required {
			info.Default = defaults[fieldName]
		}
		fields = append(fields, info)
	}

	return SchemaInfo{Name: name, Collection: s.Collection(), Fields: fields}
}

func splitRules(tag string) (bool, string) {
	required := false
	var rest []string
	for _, rule := range strings.Split(tag, ",") {
		switch rule {
		case "":
		case "required":
			required = true
		case "omitempty":
		default:
			rest = append(rest, rule)
		}
	}
	return required, strings.Join(rest, ",")
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice:
		return "array[" + typeName(t.Elem()) + "]"
	default:
		return t.Kind().String()
	}
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return sf.Name
	}
	return name
}
