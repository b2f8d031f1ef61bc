package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"impilo/registry/internal/cdn"
	"impilo/registry/internal/config"
	"impilo/registry/internal/ids"
	"impilo/registry/internal/models"
)

type SubmitInput struct {
	// Fields holds the first value of every text field by form name.
	Fields map[string]string
	// VisualArts holds every submitted visualArts value, in order.
	VisualArts []string
	// Files holds the uploaded file headers by form field name.
	Files map[string][]*multipart.FileHeader
}

type IntakeService struct {
	regs    RegistrationStore
	store   ObjectPutter
	locator cdn.Locator
	cfg     *config.AppConfig
	log     zerolog.Logger
}

func NewIntakeService(regs RegistrationStore, store ObjectPutter, locator cdn.Locator, cfg *config.AppConfig, log zerolog.Logger) *IntakeService {
	return &IntakeService{
		regs:    regs,
		store:   store,
		locator: locator,
		cfg:     cfg,
		log:     log,
	}
}

// Submit runs the intake pipeline: validate, check duplicates, store the
// uploads, collate asset URLs, persist the pending registration. Validation
// failures surface before anything is written.
func (s *IntakeService) Submit(ctx context.Context, input SubmitInput) (models.Registration, error) {
	validated, err := ValidateSubmission(input.Fields, input.VisualArts)
	if err != nil {
		return models.Registration{}, err
	}

	if err := s.checkUploadLimits(input.Files); err != nil {
		return models.Registration{}, err
	}

	exists, err := s.regs.ExistsByEmailOrPhone(ctx, validated.Email, validated.Phone)
	if err != nil {
		return models.Registration{}, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		return models.Registration{}, validationErrorf("a registration with this email or phone already exists")
	}

	locations, err := s.storeUploads(ctx, input.Files)
	if err != nil {
		return models.Registration{}, err
	}

	assets := CollateAssets(s.locator, locations)
	reg := buildRegistration(validated, assets)

	if err := s.regs.Create(ctx, reg); err != nil {
		return models.Registration{}, fmt.Errorf("save registration: %w", err)
	}

	s.log.Info().
		Str("registration_id", reg.ID).
		Str("model_type", string(reg.ModelType)).
		Msg("registration created")

	return reg, nil
}

// checkUploadLimits rejects submissions before any object is written when a
// field carries too many files, an unknown field appears, or a file exceeds
// the size ceiling.
func (s *IntakeService) checkUploadLimits(files map[string][]*multipart.FileHeader) error {
	for field, headers := range files {
		max := maxCountFor(field)
		if max == 0 {
			return validationErrorf("unexpected file field: %s", field)
		}
		if len(headers) > max {
			return validationErrorf("too many files for %s: at most %d allowed", field, max)
		}
		for _, header := range headers {
			if header.Size > s.cfg.Upload.MaxFileSize {
				return validationErrorf("file %s exceeds the size limit", header.Filename)
			}
		}
	}
	return nil
}

func (s *IntakeService) storeUploads(ctx context.Context, files map[string][]*multipart.FileHeader) (map[string][]string, error) {
	locations := make(map[string][]string, len(files))
	for field, headers := range files {
		for _, header := range headers {
			loc, err := s.storeOne(ctx, header)
			if err != nil {
				return nil, fmt.Errorf("store %s: %w", field, err)
			}
			locations[field] = append(locations[field], loc)
		}
	}
	return locations, nil
}

func (s *IntakeService) storeOne(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.store.Put(ctx, file, header.Size, header.Filename, contentType)
}

// buildRegistration maps the validated fields and collated assets into the
// entity shape. The opposite category's fields stay nil.
func buildRegistration(v ValidatedSubmission, assets AssetSet) models.Registration {
	now := time.Now().UTC()

	reg := models.Registration{
		ID:        ids.New(),
		FullName:  v.FullName,
		Email:     v.Email,
		Phone:     v.Phone,
		DOB:       v.DOB,
		Gender:    v.Gender,
		ModelType: v.ModelType,
		Status:    models.StatusPending,

		VisualArts: v.VisualArts,

		Height: v.Height,
		Weight: v.Weight,
		Bust:   v.Bust,
		Waist:  v.Waist,
		Hips:   v.Hips,

		Shoe:      optional(v.Shoe),
		HairColor: optional(v.HairColor),
		EyeColor:  optional(v.EyeColor),

		Facebook:  optional(v.Facebook),
		Instagram: optional(v.Instagram),
		TikTok:    optional(v.TikTok),

		ProfileImage:  assets.ProfileImage,
		FullBodyImage: assets.FullBodyImage,
		FullDress:     assets.FullDress,
		FullShorts:    assets.FullShorts,
		FullJeans:     assets.FullJeans,
		CloseForward:  assets.CloseForward,
		CloseLeft:     assets.CloseLeft,
		CloseRight:    assets.CloseRight,
		Sportswear:    assets.Sportswear,
		Summerwear:    assets.Summerwear,
		Swimwear:      assets.Swimwear,
		ExtraImages:   assets.ExtraImages,

		CreatedAt: now,
		UpdatedAt: now,
	}

	switch v.ModelType {
	case models.CategoryInHouse:
		reg.Bio = optional(v.Bio)
		reg.AllergiesOrSkin = optional(v.AllergiesOrSkin)
	case models.CategoryFeatured:
		reg.Portfolio = optional(v.Portfolio)
		reg.Agency = optional(v.Agency)
	}

	return reg
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
