package models

import "time"

type Category string

const (
	CategoryFeatured Category = "Featured"
	CategoryInHouse  Category = "InHouse"
)

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

// Registration is the persisted application. Fields belonging to the other
// category are nil, never empty strings, so the record shape identifies
// which variant it is.
type Registration struct {
	ID        string             `json:"id"`
	FullName  string             `json:"fullName"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	DOB       time.Time          `json:"dob"`
	Gender    string             `json:"gender"`
	ModelType Category           `json:"modelType"`
	Status    RegistrationStatus `json:"status"`

	// InHouse only.
	Bio             *string  `json:"bio"`
	AllergiesOrSkin *string  `json:"allergiesOrSkin"`
	VisualArts      []string `json:"visualArts"`

	// Featured only.
	Portfolio *string `json:"portfolio"`
	Agency    *string `json:"agency"`

	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Bust   *float64 `json:"bust"`
	Waist  *float64 `json:"waist"`
	Hips   *float64 `json:"hips"`

	Shoe      *string `json:"shoe"`
	HairColor *string `json:"hairColor"`
	EyeColor  *string `json:"eyeColor"`

	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	TikTok    *string `json:"tiktok"`

	ProfileImage  *string  `json:"profileImage"`
	FullBodyImage *string  `json:"fullBodyImage"`
	FullDress     *string  `json:"fullDress"`
	FullShorts    *string  `json:"fullShorts"`
	FullJeans     *string  `json:"fullJeans"`
	CloseForward  *string  `json:"closeForward"`
	CloseLeft     *string  `json:"closeLeft"`
	CloseRight    *string  `json:"closeRight"`
	Sportswear    *string  `json:"sportswear"`
	Summerwear    *string  `json:"summerwear"`
	Swimwear      *string  `json:"swimwear"`
	ExtraImages   []string `json:"extraImages"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ValidCategory(c Category) bool {
	return c == CategoryFeatured || c == CategoryInHouse
}

func ValidStatus(s RegistrationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
