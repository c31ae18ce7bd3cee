package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentInput struct {
	Kind     string `validate:"required,payment_kind"`
	Provider string `validate:"required,payment_provider"`
}

type registerInput struct {
	Password string `validate:"required,password"`
}

func TestPaymentTags(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   paymentInput
		wantTag string
	}{
		{name: "valid", input: paymentInput{Kind: "job_boost", Provider: "paystack"}},
		{name: "unknown kind", input: paymentInput{Kind: "lifetime", Provider: "stripe"}, wantTag: "payment_kind"},
		{name: "unknown provider", input: paymentInput{Kind: "subscription", Provider: "paypal"}, wantTag: "payment_provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
			assert.NotEqual(t, "is invalid", ValidationMessage(verrs[0]))
		})
	}
}

func TestPasswordTag(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng!Pass", true},
		{"weak", false},
		{"nouppercase1!", false},
		{"NoDigits!!", false},
		{"NoSpecial123", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := v.Struct(registerInput{Password: tt.password})
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}
