package helper

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"autismcare_backend/internals/helpers/dbtime"
)

// NonFieldErrors is the key for errors not tied to one field.
const NonFieldErrors = "non_field_errors"

// ReadOnlyFields are never accepted in a write payload.
var ReadOnlyFields = []string{"id", "created_at", "updated_at", "is_deleted"}

var (
	ratioRe    = regexp.MustCompile(`^\d+\s*:\s*\d+$`)
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
)

var validate = NewValidator()

// NewValidator returns a validator that reports json field names and knows
// the custom tags used by the DTOs (ratio, username).
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("ratio", func(fl validator.FieldLevel) bool {
		return ratioRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// BindAndValidate decodes the JSON body into dst, rejects read-only fields
// and runs struct validation. A nil FieldErrors means dst is ready to use.
func BindAndValidate(c *fiber.Ctx, dst any) FieldErrors {
	fe := FieldErrors{}
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		fe.Add(NonFieldErrors, "No data provided.")
		return fe
	}

	var raw map[string]any
	if err := sonic.Unmarshal(body, &raw); err != nil {
		fe.Add(NonFieldErrors, "Invalid JSON body.")
		return fe
	}
	for _, k := range ReadOnlyFields {
		if _, ok := raw[k]; ok {
			fe.Add(k, "This field is read-only.")
		}
	}
	if !fe.Empty() {
		return fe
	}

	if err := sonic.Unmarshal(body, dst); err != nil {
		fe.Add(NonFieldErrors, "Invalid value type in request body.")
		return fe
	}
	if fe = ValidateStruct(dst); fe != nil {
		return fe
	}
	return nil
}

// ValidateStruct runs the validator and converts failures to FieldErrors.
func ValidateStruct(dst any) FieldErrors {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	fe := FieldErrors{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fe.Add(NonFieldErrors, err.Error())
		return fe
	}
	for _, e := range verrs {
		fe.Add(e.Field(), messageFor(e))
	}
	return fe
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", e.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", e.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", e.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice (%s).", fmt.Sprint(e.Value()), e.Param())
	case "datetime":
		if e.Param() == dbtime.DateLayout {
			return "Date has wrong format. Use YYYY-MM-DD."
		}
		return "Datetime has wrong format. Use RFC3339."
	case "ratio":
		return "Enter a ratio such as 1:4."
	case "username":
		return "Enter a valid username. Letters, digits and @/./+/-/_ only."
	default:
		return "Invalid value."
	}
}
