package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,is-phone"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5,is-bcrypt-len"`
	UserType string `json:"userType" validate:"omitempty,is-user-role"`
}

type imageForm struct {
	URL string `json:"url" validate:"required,url"`
}

type listingForm struct {
	City         string      `form:"city" json:"city" validate:"required"`
	PropertyType string      `json:"propertyType" validate:"required,is-property-type"`
	Price        float64     `json:"price" validate:"gt=0"`
	Images       []imageForm `json:"images" validate:"dive"`
}

func TestValidate_ValidSignup(t *testing.T) {
	v := New()
	err := v.Validate(signupForm{
		Name:     "Laith",
		Phone:    "09123456789",
		Email:    "laith@example.com",
		Password: "secret",
		UserType: "REALTOR",
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsFieldsByJSONName(t *testing.T) {
	v := New()
	err := v.Validate(signupForm{
		Phone:    "12345",
		Email:    "nope",
		Password: "abc",
		UserType: "LANDLORD",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "This field is required", verr.Errors["name"])
	assert.Equal(t, "phone must be a valid number", verr.Errors["phone"])
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.Contains(t, verr.Errors["password"], "at least 5")
	assert.Equal(t, "Must be one of: BUYER, REALTOR, ADMIN", verr.Errors["userType"])
}

func TestValidate_PasswordLengthCountsBytes(t *testing.T) {
	v := New()
	form := signupForm{Name: "Laith", Phone: "09123456789", Email: "laith@example.com"}

	// 36 кириллических символов = 72 байта, ровно на границе
	form.Password = strings.Repeat("я", 36)
	assert.NoError(t, v.Validate(form))

	form.Password = strings.Repeat("я", 40)
	err := v.Validate(form)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be at most 72 bytes long", verr.Errors["password"])

	form.Password = strings.Repeat("a", 73)
	assert.Error(t, v.Validate(form))
}

func TestValidate_PhonePattern(t *testing.T) {
	v := New()
	base := signupForm{Name: "A", Email: "a@example.com", Password: "secret"}

	for phone, ok := range map[string]bool{
		"09123456789":  true,
		"09001234567":  true,
		"09312345678":  true,
		"09412345678":  false,
		"0912345678":   false,
		"091234567890": false,
		"19123456789":  false,
		"0912345678a":  false,
	} {
		form := base
		form.Phone = phone
		err := v.Validate(form)
		if ok {
			assert.NoError(t, err, phone)
		} else {
			assert.Error(t, err, phone)
		}
	}
}

func TestValidate_NestedPathsAndPropertyType(t *testing.T) {
	v := New()
	err := v.Validate(listingForm{
		City:         "Toronto",
		PropertyType: "CASTLE",
		Price:        0,
		Images:       []imageForm{{URL: "https://cdn.example.com/a.jpg"}, {URL: ""}},
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Must be one of: RESIDENTIAL, CONDO", verr.Errors["propertyType"])
	assert.Equal(t, "Must be greater than 0", verr.Errors["price"])
	assert.Equal(t, "This field is required", verr.Errors["images[1].url"])
	assert.NotContains(t, verr.Errors, "images[0].url")
	assert.Contains(t, verr.Error(), "field 'images[1].url'")
}
