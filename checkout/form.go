package checkout

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/Kariqs/amana-storefront/models"
	"github.com/go-playground/validator/v10"
)

// Form is the delivery information collected at checkout.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid checkout form: " + strings.Join(parts, "; ")
}

var messages = map[string]map[string]string{
	"name":    {"required": "Full name is required"},
	"email":   {"required": "Email is required", "email": "Please enter a valid email"},
	"phone":   {"required": "Phone number is required", "phone": "Please enter a valid phone number"},
	"address": {"required": "Address is required"},
	"city":    {"required": "City is required"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		n := len(digits(fl.Field().String()))
		return n >= 10 && n <= 11
	})
	return v
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize trims surrounding whitespace from every field.
func (f Form) Normalize() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Address: strings.TrimSpace(f.Address),
		City:    strings.TrimSpace(f.City),
	}
}

// Validate returns nil or the FieldErrors of the normalized form.
func Validate(f Form) error {
	err := validate.Struct(f.Normalize())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		out[fe.Field()] = msg
	}
	return out
}

func (f Form) ToAddress() models.Address {
	return models.Address{Name: f.Name, Email: f.Email, Phone: f.Phone, Address: f.Address, City: f.City}
}

// Prefill returns a form seeded from the logged-in profile.
func Prefill(user *models.User) Form {
	if user == nil {
		return Form{}
	}
	return Form{Name: user.Name, Email: user.Email, Phone: user.Phone, Address: user.Address, City: user.City}
}
