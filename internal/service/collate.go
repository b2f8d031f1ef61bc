package service

import "impilo/registry/internal/cdn"

// UploadField declares one named file slot on the submission form and how
// many uploads it accepts.
type UploadField struct {
	Name     string
	MaxCount int
}

const extraImagesField = "extraImages"

// UploadFields is the fixed per-field upload table. Single-image slots
// accept a few uploads but only the first becomes the canonical asset.
var UploadFields = []UploadField{
	{Name: "profileImage", MaxCount: 3},
	{Name: "fullBodyImage", MaxCount: 3},
	{Name: "fullDress", MaxCount: 3},
	{Name: "fullShorts", MaxCount: 3},
	{Name: "fullJeans", MaxCount: 3},
	{Name: "closeForward", MaxCount: 3},
	{Name: "closeLeft", MaxCount: 3},
	{Name: "closeRight", MaxCount: 3},
	{Name: "sportswear", MaxCount: 3},
	{Name: "summerwear", MaxCount: 3},
	{Name: "swimwear", MaxCount: 3},
	{Name: extraImagesField, MaxCount: 10},
}

// AssetSet holds the canonical content-delivery URL per asset slot. Absent
// slots are nil; extra images keep upload order.
type AssetSet struct {
	ProfileImage  *string
	FullBodyImage *string
	FullDress     *string
	FullShorts    *string
	FullJeans     *string
	CloseForward  *string
	CloseLeft     *string
	CloseRight    *string
	Sportswear    *string
	Summerwear    *string
	Swimwear      *string
	ExtraImages   []string
}

// CollateAssets maps raw storage URLs, keyed by form field, onto the asset
// set. Singular fields read index 0 only; a slot with no uploads stays nil.
// The per-field cap bounds the output even if more locations slip through.
func CollateAssets(locator cdn.Locator, locationsByField map[string][]string) AssetSet {
	first := func(field string) *string {
		locs := locationsByField[field]
		if len(locs) == 0 {
			return nil
		}
		return locator.PublicURLPtr(locs[0])
	}

	extras := make([]string, 0)
	for i, loc := range locationsByField[extraImagesField] {
		if i >= maxCountFor(extraImagesField) {
			break
		}
		if loc == "" {
			continue
		}
		extras = append(extras, locator.PublicURL(loc))
	}

	return AssetSet{
		ProfileImage:  first("profileImage"),
		FullBodyImage: first("fullBodyImage"),
		FullDress:     first("fullDress"),
		FullShorts:    first("fullShorts"),
		FullJeans:     first("fullJeans"),
		CloseForward:  first("closeForward"),
		CloseLeft:     first("closeLeft"),
		CloseRight:    first("closeRight"),
		Sportswear:    first("sportswear"),
		Summerwear:    first("summerwear"),
		Swimwear:      first("swimwear"),
		ExtraImages:   extras,
	}
}

func maxCountFor(field string) int {
	for _, f := range UploadFields {
		if f.Name == field {
			return f.MaxCount
		}
	}
	return 0
}
