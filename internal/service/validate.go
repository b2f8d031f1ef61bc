package service

import (
	"strconv"
	"strings"
	"time"

	"impilo/registry/internal/models"
)

// ValidatedSubmission is the typed result of a successful validation pass.
// Category-conditional fields for the other category are already zeroed.
type ValidatedSubmission struct {
	FullName  string
	Email     string
	Phone     string
	DOB       time.Time
	Gender    string
	ModelType models.Category

	Bio             string
	AllergiesOrSkin string
	VisualArts      []string

	Portfolio string
	Agency    string

	Height *float64
	Weight *float64
	Bust   *float64
	Waist  *float64
	Hips   *float64

	Shoe      string
	HairColor string
	EyeColor  string

	Facebook  string
	Instagram string
	TikTok    string
}

var requiredFields = []string{"fullName", "email", "phone", "dob", "gender", "modelType"}

var measurementFields = []string{"height", "weight", "bust", "waist", "hips"}

// ValidateSubmission checks the raw field map and returns the typed
// submission. Fail-fast: the first missing or malformed field decides the
// error, nothing is aggregated.
func ValidateSubmission(fields map[string]string, visualArts []string) (ValidatedSubmission, error) {
	for _, name := range requiredFields {
		if strings.TrimSpace(fields[name]) == "" {
			return ValidatedSubmission{}, validationErrorf("Missing required field: %s", name)
		}
	}

	category := models.Category(fields["modelType"])
	if !models.ValidCategory(category) {
		return ValidatedSubmission{}, validationErrorf("modelType must be 'Featured' or 'InHouse'")
	}

	dob, err := parseDOB(fields["dob"])
	if err != nil {
		return ValidatedSubmission{}, validationErrorf("dob must be a valid date")
	}

	out := ValidatedSubmission{
		FullName:  fields["fullName"],
		Email:     fields["email"],
		Phone:     fields["phone"],
		DOB:       dob,
		Gender:    fields["gender"],
		ModelType: category,
		Shoe:      fields["shoe"],
		HairColor: fields["hairColor"],
		EyeColor:  fields["eyeColor"],
		Facebook:  fields["facebook"],
		Instagram: fields["instagram"],
		TikTok:    fields["tiktok"],
	}

	switch category {
	case models.CategoryInHouse:
		if fields["bio"] == "" {
			return ValidatedSubmission{}, validationErrorf("InHouse requires bio")
		}
		if fields["allergiesOrSkin"] == "" {
			return ValidatedSubmission{}, validationErrorf("InHouse requires allergies/skin info")
		}
		out.Bio = fields["bio"]
		out.AllergiesOrSkin = fields["allergiesOrSkin"]
		out.VisualArts = normalizeVisualArts(visualArts)
	case models.CategoryFeatured:
		if fields["portfolio"] == "" {
			return ValidatedSubmission{}, validationErrorf("Featured model requires portfolio link")
		}
		if fields["agency"] == "" {
			return ValidatedSubmission{}, validationErrorf("Featured model requires agency name")
		}
		out.Portfolio = fields["portfolio"]
		out.Agency = fields["agency"]
		out.VisualArts = []string{}
	}

	for _, name := range measurementFields {
		value, err := parseMeasurement(fields[name])
		if err != nil {
			return ValidatedSubmission{}, validationErrorf("%s must be a number", name)
		}
		switch name {
		case "height":
			out.Height = value
		case "weight":
			out.Weight = value
		case "bust":
			out.Bust = value
		case "waist":
			out.Waist = value
		case "hips":
			out.Hips = value
		}
	}

	return out, nil
}

// normalizeVisualArts drops blank entries while preserving order.
func normalizeVisualArts(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseMeasurement treats empty as absent; anything present must parse.
func parseMeasurement(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parseDOB(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
