package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ValidationRule defines a single validation rule
type ValidationRule struct {
	Field         string           // Field name to validate
	Required      bool             // Whether the field is required
	Type          string           // string, number, integer, boolean, uuid, email, url, array, object
	MinLength     int              // Minimum length for strings
	MaxLength     int              // Maximum length for strings
	Pattern       string           // Regex pattern for validation
	Min           *float64         // Minimum value for numbers
	Max           *float64         // Maximum value for numbers
	AllowedValues []string         // List of allowed values
	Sanitize      bool             // Trim and strip control characters
	Fields        []ValidationRule // Rules for the members of an object
	Custom        func(any) error  // Custom validation function
}

// ValidationConfig holds validation rules for an endpoint
type ValidationConfig struct {
	Rules              []ValidationRule
	MaxBodySize        int64 // Maximum request body size in bytes
	AllowUnknownFields bool  // Whether to allow fields not in rules
}

// Common regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	PhoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,18}$`)
	URLRegex   = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)
	SlugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// ValidationError is one failed field. Nested fields use dotted paths, e.g. "customer.email".
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidateInput checks the JSON body against config before the handler binds it.
// Sanitized values are written back so the handler sees the cleaned body.
func ValidateInput(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.MaxBodySize > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
					"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", config.MaxBodySize),
				})
				return
			}
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.MaxBodySize)
		}

		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
			return
		}

		errs := validateFields(body, config.Rules, config.AllowUnknownFields, "")
		if len(errs) > 0 {
			logger.FromContext(c.Request.Context()).Debug("request validation failed",
				zap.String("path", c.FullPath()),
				zap.Strings("fields", lo.Map(errs, func(e ValidationError, _ int) string { return e.Field })),
			)
			c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrors{Errors: errs})
			return
		}

		bodyBytes, _ := json.Marshal(body)
		c.Set("validatedBody", body)
		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Request.ContentLength = int64(len(bodyBytes))

		c.Next()
	}
}

func fieldPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}

// validateFields validates data according to rules. Object rules with Fields are
// validated recursively.
func validateFields(data map[string]any, rules []ValidationRule, allowUnknown bool, prefix string) []ValidationError {
	var errs []ValidationError
	fail := func(field, msg string) {
		errs = append(errs, ValidationError{Field: fieldPath(prefix, field), Message: msg})
	}
	known := make(map[string]bool, len(rules))

	for _, rule := range rules {
		known[rule.Field] = true
		value, exists := data[rule.Field]

		if rule.Required && (!exists || value == nil || value == "") {
			fail(rule.Field, fmt.Sprintf("%s is required", rule.Field))
			continue
		}
		if !exists || value == nil {
			continue
		}

		var err error
		switch rule.Type {
		case "string":
			if err = validateString(value, rule); err == nil && rule.Sanitize {
				data[rule.Field] = sanitizeString(value.(string))
			}
		case "number":
			err = validateNumber(value, rule, false)
		case "integer":
			err = validateNumber(value, rule, true)
		case "boolean":
			if _, ok := value.(bool); !ok {
				err = fmt.Errorf("must be a boolean")
			}
		case "uuid":
			err = validateUUID(value)
		case "email":
			if err = validateEmail(value); err == nil && rule.MaxLength > 0 && utf8.RuneCountInString(value.(string)) > rule.MaxLength {
				err = fmt.Errorf("must be at most %d characters long", rule.MaxLength)
			}
		case "url":
			err = validateURL(value)
		case "array":
			if _, ok := value.([]any); !ok {
				err = fmt.Errorf("must be an array")
			}
		case "object":
			obj, ok := value.(map[string]any)
			if !ok {
				err = fmt.Errorf("must be an object")
			} else if len(rule.Fields) > 0 {
				errs = append(errs, validateFields(obj, rule.Fields, allowUnknown, fieldPath(prefix, rule.Field))...)
			}
		}
		if err != nil {
			fail(rule.Field, err.Error())
			continue
		}

		if rule.Custom != nil {
			if err := rule.Custom(value); err != nil {
				fail(rule.Field, err.Error())
			}
		}
	}

	if !allowUnknown {
		for field := range data {
			if !known[field] {
				fail(field, "unknown field")
			}
		}
	}

	return errs
}

func validateString(value any, rule ValidationRule) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	length := utf8.RuneCountInString(strings.TrimSpace(str))
	if rule.MinLength > 0 && length < rule.MinLength {
		return fmt.Errorf("must be at least %d characters long", rule.MinLength)
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return fmt.Errorf("must be at most %d characters long", rule.MaxLength)
	}

	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			logger.Log.Error("Invalid regex pattern", zap.String("pattern", rule.Pattern), zap.Error(err))
			return fmt.Errorf("invalid validation pattern")
		}
		if !regex.MatchString(str) {
			return fmt.Errorf("invalid format")
		}
	}

	if len(rule.AllowedValues) > 0 && !lo.Contains(rule.AllowedValues, str) {
		return fmt.Errorf("must be one of: %s", strings.Join(rule.AllowedValues, ", "))
	}

	return nil
}

// JSON numbers decode as float64
func validateNumber(value any, rule ValidationRule, integer bool) error {
	num, ok := value.(float64)
	if !ok {
		return fmt.Errorf("must be a number")
	}
	if integer && num != float64(int64(num)) {
		return fmt.Errorf("must be a whole number")
	}
	if rule.Min != nil && num < *rule.Min {
		return fmt.Errorf("must be at least %v", *rule.Min)
	}
	if rule.Max != nil && num > *rule.Max {
		return fmt.Errorf("must be at most %v", *rule.Max)
	}
	return nil
}

func validateUUID(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if _, err := uuid.Parse(str); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}

func validateEmail(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !EmailRegex.MatchString(str) {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

func validateURL(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !URLRegex.MatchString(str) {
		return fmt.Errorf("must be a valid URL")
	}
	return nil
}

// sanitizeString trims the input and strips control characters other than newlines.
// HTML escaping happens when values are rendered.
func sanitizeString(input string) string {
	input = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
	return strings.TrimSpace(input)
}

func float64Ptr(f float64) *float64 {
	return &f
}
