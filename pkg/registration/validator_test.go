package registration_test

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/clock"
	"github.com/dmitrymomot/signup/pkg/registration"
	"github.com/dmitrymomot/signup/pkg/validator"
)

var today = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func newValidator() *registration.Validator {
	return registration.New(
		registration.WithClock(clock.Fixed(today)),
		registration.WithLocation(time.UTC),
	)
}

func validInput() registration.FormInput {
	return registration.FormInput{
		Name:          "Alice",
		Birthdate:     "2000-01-01",
		AcceptTerms:   true,
		FavoriteColor: "blue",
	}
}

func TestValidate_Success(t *testing.T) {
	values, err := newValidator().Validate(validInput())
	require.NoError(t, err)

	assert.Equal(t, "Alice", values.Name())
	assert.Equal(t, "2000-01-01", values.Birthdate())
	assert.True(t, values.AcceptTerms())
	assert.Equal(t, "blue", values.FavoriteColor())
	assert.Equal(t, validInput(), values.Input())
}

func TestValidate_Name(t *testing.T) {
	v := newValidator()

	t.Run("rejects names shorter than 3 UTF-16 units", func(t *testing.T) {
		for _, name := range []string{"", "A", "Al", "李四", "\u00e9e", "👍"} {
			in := validInput()
			in.Name = name

			_, err := v.Validate(in)
			require.Error(t, err, "name %q", name)
			assert.Equal(t,
				registration.FieldErrors{registration.FieldName: {registration.MsgNameTooShort}},
				registration.ErrorMap(err), "name %q", name)
		}
	})

	t.Run("accepts any content of 3 or more UTF-16 units", func(t *testing.T) {
		for _, name := range []string{"Bob", "   ", "123", "a-b", "Zoë", "李小龍", "👍👍", "e\u0301e"} {
			in := validInput()
			in.Name = name

			_, err := v.Validate(in)
			assert.NoError(t, err, "name %q", name)
		}
	})
}

func TestValidate_Birthdate(t *testing.T) {
	v := newValidator()

	validate := func(birthdate string) registration.FieldErrors {
		in := validInput()
		in.Birthdate = birthdate
		_, err := v.Validate(in)
		return registration.ErrorMap(err)
	}

	t.Run("empty value reports required and age messages", func(t *testing.T) {
		errs := validate("")
		assert.Equal(t, []string{registration.MsgBirthdateRequired, registration.MsgUnderAge}, errs[registration.FieldBirthdate])
		assert.Equal(t, []string{registration.FieldBirthdate}, errs.Fields())
	})

	t.Run("unparsable value reports the age message only", func(t *testing.T) {
		for _, value := range []string{"not-a-date", " ", "2000-02-30"} {
			errs := validate(value)
			assert.Equal(t, []string{registration.MsgUnderAge}, errs[registration.FieldBirthdate], "value %q", value)
		}
	})

	t.Run("approximate age boundary", func(t *testing.T) {
		assert.Nil(t, validate("2008-10-13"), "6575 days is 18 approximate years")
		assert.Equal(t,
			[]string{registration.MsgUnderAge},
			validate("2008-10-14")[registration.FieldBirthdate],
			"the true 18th birthday is still 17 approximate years")
	})

	t.Run("under age", func(t *testing.T) {
		for _, value := range []string{"2010-01-01", "2026-10-14", "2026-01-01T08:00:00Z"} {
			assert.True(t, validate(value).Has(registration.FieldBirthdate), "value %q", value)
		}
	})

	t.Run("other date spellings", func(t *testing.T) {
		for _, value := range []string{"1990-05-17T10:00:00+02:00", "05/17/1990", "May 17, 1990", " 1990-05-17 ", "2000", "2000-05"} {
			assert.Nil(t, validate(value), "value %q", value)
		}
	})

	t.Run("year and month precision", func(t *testing.T) {
		assert.Nil(t, validate("2008-10"), "2008-10-01 is 6587 days back")
		assert.True(t, validate("2009").Has(registration.FieldBirthdate), "2009-01-01 is 17 approximate years back")
	})

	t.Run("far future dates pass through absolute difference", func(t *testing.T) {
		assert.Nil(t, validate("2050-01-01"))
	})
}

func TestValidate_AcceptTerms(t *testing.T) {
	in := validInput()
	in.AcceptTerms = false

	_, err := newValidator().Validate(in)
	assert.Equal(t,
		registration.FieldErrors{registration.FieldAcceptTerms: {registration.MsgTermsNotAccepted}},
		registration.ErrorMap(err))
}

func TestValidate_FavoriteColor(t *testing.T) {
	in := validInput()
	in.FavoriteColor = ""

	_, err := newValidator().Validate(in)
	assert.Equal(t,
		registration.FieldErrors{registration.FieldFavoriteColor: {registration.MsgFavoriteColorRequired}},
		registration.ErrorMap(err))
}

func TestValidate_EndToEnd(t *testing.T) {
	v := newValidator()

	t.Run("short name fails only on name", func(t *testing.T) {
		values, err := v.Validate(registration.FormInput{
			Name:          "Al",
			Birthdate:     "2000-01-01",
			AcceptTerms:   true,
			FavoriteColor: "blue",
		})
		require.Error(t, err)
		assert.Equal(t, registration.FormValues{}, values)

		errs := registration.ErrorMap(err)
		assert.Equal(t, []string{registration.FieldName}, errs.Fields())
		assert.Equal(t, "Name must be at least 3 characters long.", errs.Get(registration.FieldName))
	})

	t.Run("valid record is returned as is", func(t *testing.T) {
		values, err := v.Validate(validInput())
		require.NoError(t, err)
		assert.Equal(t, validInput(), values.Input())
	})

	t.Run("independent failures are reported together", func(t *testing.T) {
		_, err := v.Validate(registration.FormInput{
			Name:          "Alice",
			Birthdate:     "",
			AcceptTerms:   false,
			FavoriteColor: "",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := registration.ErrorMap(err)
		assert.Equal(t, []string{
			registration.FieldBirthdate,
			registration.FieldAcceptTerms,
			registration.FieldFavoriteColor,
		}, errs.Fields())
		assert.Equal(t, "Birthdate is required", errs.Get(registration.FieldBirthdate))
		assert.Equal(t, "You must accept the terms.", errs.Get(registration.FieldAcceptTerms))
		assert.Equal(t, "Please select a favorite color.", errs.Get(registration.FieldFavoriteColor))
	})

	t.Run("every rule fails", func(t *testing.T) {
		_, err := v.Validate(registration.FormInput{})

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 5)
		assert.Equal(t, registration.FieldOrder, verrs.Fields())
	})
}

func TestValidate_Location(t *testing.T) {
	lateEvening := time.Date(2026, time.October, 13, 23, 0, 0, 0, time.UTC)
	in := validInput()
	in.Birthdate = "2008-10-13"

	utc := registration.New(registration.WithClock(clock.Fixed(lateEvening)), registration.WithLocation(time.UTC))
	_, err := utc.Validate(in)
	assert.Error(t, err, "still October 13 in UTC")

	ahead := registration.New(registration.WithClock(clock.Fixed(lateEvening)), registration.WithLocation(time.FixedZone("UTC+3", 3*3600)))
	_, err = ahead.Validate(in)
	assert.NoError(t, err, "already October 14 at UTC+3")
}

func TestNew_Defaults(t *testing.T) {
	v := registration.New(registration.WithClock(nil), registration.WithLocation(nil))

	_, err := v.Validate(validInput())
	assert.NoError(t, err, "system clock must be used when nil is passed")

	_, err = registration.Validate(validInput())
	assert.NoError(t, err)
}

func TestValidate_Concurrent(t *testing.T) {
	v := newValidator()

	var wg sync.WaitGroup
	results := make([]int, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := validInput()
			if i%2 == 1 {
				in.Name = "Al"
			}
			_, err := v.Validate(in)
			results[i] = len(validator.ExtractValidationErrors(err))
		}()
	}
	wg.Wait()

	for i, n := range results {
		assert.Equal(t, i%2, n, "goroutine %d", i)
	}
}

func TestFormValues_MarshalJSON(t *testing.T) {
	values, err := newValidator().Validate(validInput())
	require.NoError(t, err)

	data, err := json.Marshal(values)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","birthdate":"2000-01-01","acceptTerms":true,"favoriteColor":"blue"}`, string(data))
}
