// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// schema.go validates raw JSON category and product descriptors. Descriptors
// are hand-authored, so the schema is strict: unknown fields are rejected to
// catch typos early, and every violation in a file is reported at once.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// idPattern is the shape every category and product id must have:
// lowercase ASCII words separated by single dashes.
var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under JSON field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("catalogid", func(fl validator.FieldLevel) bool {
		return idPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// LocalizedInput is a partial locale mapping as authored in a descriptor.
// Either locale may be omitted; present values must be non-empty. Defaulting
// of absent locales happens later, in the loader.
type LocalizedInput struct {
	RU *string `json:"ru" validate:"omitempty,min=1"`
	KK *string `json:"kk" validate:"omitempty,min=1"`
}

// get returns the declared value for a locale, or nil. Safe on nil input.
func (in *LocalizedInput) get(loc Locale) *string {
	if in == nil {
		return nil
	}
	switch loc {
	case LocaleRU:
		return in.RU
	case LocaleKK:
		return in.KK
	}
	return nil
}

// SEOInput is the optional per-locale metadata override block.
type SEOInput struct {
	RU *SEOText `json:"ru"`
	KK *SEOText `json:"kk"`
}

// CategoryDescriptor is the validated form of a _category_info.json file.
type CategoryDescriptor struct {
	ID    string          `json:"id" validate:"required,catalogid"`
	Slug  *LocalizedInput `json:"slug"`
	Name  *LocalizedInput `json:"name"`
	Blurb *LocalizedInput `json:"blurb"`
	Order *int            `json:"order"`
}

// ProductDescriptor is the validated form of a product_<id>_info.json file.
type ProductDescriptor struct {
	ID          string          `json:"id" validate:"required,catalogid"`
	CategoryID  string          `json:"categoryId" validate:"required,catalogid"`
	Slug        *LocalizedInput `json:"slug" validate:"required"`
	Name        *LocalizedInput `json:"name" validate:"required"`
	Short       *LocalizedInput `json:"short"`
	Description *LocalizedInput `json:"description"`
	Price       *float64        `json:"price" validate:"required,gte=0"`
	Currency    string          `json:"currency"`
	Volume      string          `json:"volume"`
	SEO         *SEOInput       `json:"seo"`
	Images      []string        `json:"images"`
	Order       *int            `json:"order"`
}

// DecodeCategoryDescriptor parses and validates raw category descriptor
// JSON. Pure: no filesystem access. Returns *SchemaError on any violation.
func DecodeCategoryDescriptor(data []byte, file string) (*CategoryDescriptor, error) {
	var desc CategoryDescriptor
	if err := decodeStrict(data, &desc); err != nil {
		return nil, &SchemaError{File: file, Issues: []FieldIssue{{Message: err.Error()}}}
	}
	if err := checkFields(&desc, file); err != nil {
		return nil, err
	}
	return &desc, nil
}

// DecodeProductDescriptor parses and validates raw product descriptor JSON.
// Pure: no filesystem access. Returns *SchemaError on any violation.
func DecodeProductDescriptor(data []byte, file string) (*ProductDescriptor, error) {
	var desc ProductDescriptor
	if err := decodeStrict(data, &desc); err != nil {
		return nil, &SchemaError{File: file, Issues: []FieldIssue{{Message: err.Error()}}}
	}
	if err := checkFields(&desc, file); err != nil {
		return nil, err
	}
	return &desc, nil
}

// decodeStrict unmarshals JSON rejecting unknown fields at any depth.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A descriptor is a single JSON object; trailing content is a typo.
	if dec.More() {
		return errors.New("unexpected trailing content after descriptor object")
	}
	return nil
}

// checkFields runs field rules and converts every violation into one
// SchemaError listing them all.
func checkFields(v any, file string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", file, err)
	}
	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{
			Path:    fieldPath(fe.Namespace()),
			Message: violationMessage(fe),
		})
	}
	return &SchemaError{File: file, Issues: issues}
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the JSON path ("slug.ru", "price", ...).
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "catalogid":
		return "must be lowercase, ASCII, dashed"
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "gte":
		return "must be a non-negative number"
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}
