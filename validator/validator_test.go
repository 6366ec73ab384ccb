package validator_test

import (
	"errors"
	"testing"

	"github.com/andyle182810/cinemadash/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type producerInput struct {
	Name            string  `json:"name"             validate:"notblank,max=100"`
	Email           string  `json:"email"            validate:"required,email"`
	Region          string  `json:"region"           validate:"omitempty,max=50"`
	ExperienceYears int     `json:"experience_years" validate:"gte=0,lte=80"`
	Phone           *string `json:"phone"            validate:"omitempty,min=7"`
}

type movieInput struct {
	Title         string              `json:"title"         validate:"notblank"`
	Certification string              `json:"certification" validate:"oneof=U UA A S"`
	Budget        decimal.Decimal     `json:"budget"        validate:"gt=0"`
	Rating        decimal.NullDecimal `json:"imdb_rating"   validate:"omitempty,gte=0,lte=10"`
	ReleaseDate   string              `json:"release_date"  validate:"omitempty,datetime=2006-01-02"`
}

func validProducer() producerInput {
	return producerInput{
		Name:            "Yash Raj",
		Email:           "yrf@example.com",
		Region:          "Mumbai",
		ExperienceYears: 40,
		Phone:           nil,
	}
}

func asValidationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	return validationErrs
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	require.NoError(t, validator.New().Validate(validProducer()))
}

func TestValidate_BlankNameIsRequired(t *testing.T) {
	t.Parallel()

	input := validProducer()
	input.Name = "   "

	errs := asValidationErrors(t, validator.New().Validate(input))

	require.Len(t, errs, 1)
	require.Equal(t, "name", errs[0].Field)
	require.Equal(t, "notblank", errs[0].Tag)
	require.Equal(t, "name is required", errs[0].Message)
}

func TestValidate_InvalidEmail(t *testing.T) {
	t.Parallel()

	input := validProducer()
	input.Email = "not-an-email"

	errs := asValidationErrors(t, validator.New().Validate(input))

	require.Equal(t, "email must be a valid email address", errs[0].Message)
	require.Equal(t, "not-an-email", errs[0].Value)
}

func TestValidate_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()

	input := validProducer()
	input.Email = ""
	input.ExperienceYears = 120

	err := validator.New().Validate(input)

	require.EqualError(t, err, "email is required; experience_years must be less than or equal to 80")
	require.Equal(t, []string{"email", "experience_years"}, asValidationErrors(t, err).Fields())
}

func TestValidate_OptionalPointerChecksOnlyWhenSet(t *testing.T) {
	t.Parallel()

	input := validProducer()
	short := "123"
	input.Phone = &short

	errs := asValidationErrors(t, validator.New().Validate(input))

	require.Equal(t, "phone must be at least 7", errs[0].Message)
}

func TestValidate_Decimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		budget    decimal.Decimal
		rating    decimal.NullDecimal
		wantField string
	}{
		{
			name:      "valid",
			budget:    decimal.NewFromInt(250000000),
			rating:    decimal.NewNullDecimal(decimal.RequireFromString("8.1")),
			wantField: "",
		},
		{
			name:      "unset rating is skipped",
			budget:    decimal.NewFromInt(1),
			rating:    decimal.NullDecimal{},
			wantField: "",
		},
		{
			name:      "zero budget",
			budget:    decimal.Zero,
			rating:    decimal.NullDecimal{},
			wantField: "budget",
		},
		{
			name:      "rating above ten",
			budget:    decimal.NewFromInt(1),
			rating:    decimal.NewNullDecimal(decimal.RequireFromString("10.5")),
			wantField: "imdb_rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := movieInput{
				Title:         "Lagaan",
				Certification: "U",
				Budget:        tt.budget,
				Rating:        tt.rating,
				ReleaseDate:   "2001-06-15",
			}

			err := validator.New().Validate(input)
			if tt.wantField == "" {
				require.NoError(t, err)

				return
			}

			require.Equal(t, []string{tt.wantField}, asValidationErrors(t, err).Fields())
		})
	}
}

func TestValidate_OneOfAndDatetimeMessages(t *testing.T) {
	t.Parallel()

	input := movieInput{
		Title:         "Lagaan",
		Certification: "PG",
		Budget:        decimal.NewFromInt(1),
		Rating:        decimal.NullDecimal{},
		ReleaseDate:   "15/06/2001",
	}

	errs := asValidationErrors(t, validator.New().Validate(input))

	require.Len(t, errs, 2)
	require.Equal(t, "certification must be one of [U UA A S]", errs[0].Message)
	require.Equal(t, "release_date must be a date in the form 2006-01-02", errs[1].Message)
}

func TestValidate_NonStructIsRejected(t *testing.T) {
	t.Parallel()

	err := validator.New().Validate("not a struct")

	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.False(t, errors.As(err, &validationErrs))
}
