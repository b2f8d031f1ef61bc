package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"impilo/registry/internal/models"
)

func baseFields() map[string]string {
	return map[string]string{
		"fullName":        "Jane Doe",
		"email":           "jane@x.com",
		"phone":           "+27831234567",
		"dob":             "1998-05-12",
		"gender":          "Female",
		"modelType":       "InHouse",
		"bio":             "Cape Town based model.",
		"allergiesOrSkin": "None",
	}
}

func featuredFields() map[string]string {
	f := baseFields()
	f["modelType"] = "Featured"
	delete(f, "bio")
	delete(f, "allergiesOrSkin")
	f["portfolio"] = "https://portfolio.example.com/jane"
	f["agency"] = "Elite"
	return f
}

func TestValidateSubmission_RequiredFields(t *testing.T) {
	for _, name := range []string{"fullName", "email", "phone", "dob", "gender", "modelType"} {
		t.Run("missing "+name, func(t *testing.T) {
			fields := baseFields()
			delete(fields, name)

			_, err := ValidateSubmission(fields, nil)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestValidateSubmission_Category(t *testing.T) {
	t.Run("unknown category rejected", func(t *testing.T) {
		fields := baseFields()
		fields["modelType"] = "Runway"

		_, err := ValidateSubmission(fields, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("InHouse requires bio", func(t *testing.T) {
		fields := baseFields()
		delete(fields, "bio")

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "InHouse requires bio")
	})

	t.Run("InHouse requires allergies info", func(t *testing.T) {
		fields := baseFields()
		delete(fields, "allergiesOrSkin")

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "InHouse requires allergies/skin info")
	})

	t.Run("Featured requires portfolio", func(t *testing.T) {
		fields := featuredFields()
		delete(fields, "portfolio")

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "Featured model requires portfolio link")
	})

	t.Run("Featured requires agency", func(t *testing.T) {
		fields := featuredFields()
		delete(fields, "agency")

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "Featured model requires agency name")
	})

	t.Run("InHouse ignores featured-only input", func(t *testing.T) {
		fields := baseFields()
		fields["portfolio"] = "https://portfolio.example.com"
		fields["agency"] = "Elite"

		out, err := ValidateSubmission(fields, nil)
		require.NoError(t, err)
		assert.Empty(t, out.Portfolio)
		assert.Empty(t, out.Agency)
		assert.Equal(t, models.CategoryInHouse, out.ModelType)
	})
}

func TestValidateSubmission_VisualArts(t *testing.T) {
	t.Run("blank entries dropped, order kept", func(t *testing.T) {
		out, err := ValidateSubmission(baseFields(), []string{"painting", "", "  ", "dance"})
		require.NoError(t, err)
		assert.Equal(t, []string{"painting", "dance"}, out.VisualArts)
	})

	t.Run("forced empty for Featured", func(t *testing.T) {
		out, err := ValidateSubmission(featuredFields(), []string{"painting"})
		require.NoError(t, err)
		assert.Empty(t, out.VisualArts)
		assert.NotNil(t, out.VisualArts)
	})

	t.Run("nil input yields empty list for InHouse", func(t *testing.T) {
		out, err := ValidateSubmission(baseFields(), nil)
		require.NoError(t, err)
		assert.Empty(t, out.VisualArts)
	})
}

func TestValidateSubmission_Measurements(t *testing.T) {
	t.Run("absent measurements stay nil", func(t *testing.T) {
		out, err := ValidateSubmission(baseFields(), nil)
		require.NoError(t, err)
		assert.Nil(t, out.Height)
		assert.Nil(t, out.Hips)
	})

	t.Run("present measurements parse", func(t *testing.T) {
		fields := baseFields()
		fields["height"] = "176.5"
		fields["waist"] = "61"

		out, err := ValidateSubmission(fields, nil)
		require.NoError(t, err)
		require.NotNil(t, out.Height)
		assert.InDelta(t, 176.5, *out.Height, 0.001)
		require.NotNil(t, out.Waist)
		assert.InDelta(t, 61, *out.Waist, 0.001)
	})

	t.Run("non-numeric measurement rejected", func(t *testing.T) {
		fields := baseFields()
		fields["weight"] = "sixty"

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "weight must be a number")
	})
}

func TestValidateSubmission_DOB(t *testing.T) {
	t.Run("date-only format accepted", func(t *testing.T) {
		out, err := ValidateSubmission(baseFields(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1998, out.DOB.Year())
	})

	t.Run("rfc3339 accepted", func(t *testing.T) {
		fields := baseFields()
		fields["dob"] = "1998-05-12T00:00:00Z"

		_, err := ValidateSubmission(fields, nil)
		require.NoError(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		fields := baseFields()
		fields["dob"] = "12/05/98"

		_, err := ValidateSubmission(fields, nil)
		require.EqualError(t, err, "dob must be a valid date")
	})
}
