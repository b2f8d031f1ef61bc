package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"impilo/registry/internal/models"
)

const registrationColumns = `
	id, full_name, email, phone, dob, gender, model_type, status,
	bio, allergies_or_skin, visual_arts, portfolio, agency,
	height, weight, bust, waist, hips, shoe, hair_color, eye_color,
	facebook, instagram, tiktok,
	profile_image, full_body_image, full_dress, full_shorts, full_jeans,
	close_forward, close_left, close_right, sportswear, summerwear, swimwear,
	extra_images, created_at, updated_at`

type RegistrationRepository struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{pool: pool}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg models.Registration) error {
	const query = `
		INSERT INTO registrations (
			id, full_name, email, phone, dob, gender, model_type, status,
			bio, allergies_or_skin, visual_arts, portfolio, agency,
			height, weight, bust, waist, hips, shoe, hair_color, eye_color,
			facebook, instagram, tiktok,
			profile_image, full_body_image, full_dress, full_shorts, full_jeans,
			close_forward, close_left, close_right, sportswear, summerwear, swimwear,
			extra_images, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21,
			$22, $23, $24,
			$25, $26, $27, $28, $29,
			$30, $31, $32, $33, $34, $35,
			$36, $37, $38
		)
	`

	_, err := r.pool.Exec(ctx, query,
		reg.ID, reg.FullName, reg.Email, reg.Phone, reg.DOB, reg.Gender, reg.ModelType, reg.Status,
		reg.Bio, reg.AllergiesOrSkin, reg.VisualArts, reg.Portfolio, reg.Agency,
		reg.Height, reg.Weight, reg.Bust, reg.Waist, reg.Hips, reg.Shoe, reg.HairColor, reg.EyeColor,
		reg.Facebook, reg.Instagram, reg.TikTok,
		reg.ProfileImage, reg.FullBodyImage, reg.FullDress, reg.FullShorts, reg.FullJeans,
		reg.CloseForward, reg.CloseLeft, reg.CloseRight, reg.Sportswear, reg.Summerwear, reg.Swimwear,
		reg.ExtraImages, reg.CreatedAt, reg.UpdatedAt,
	)
	return err
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (models.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1`, registrationColumns)

	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Registration{}, ErrNotFound
		}
		return models.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context, limit, offset int) ([]models.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`, registrationColumns)

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status models.RegistrationStatus) (models.Registration, error) {
	query := fmt.Sprintf(`
		UPDATE registrations
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, registrationColumns)

	reg, err := scanRegistration(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Registration{}, ErrNotFound
		}
		return models.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RegistrationRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM registrations WHERE email = $1 OR phone = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, email, phone).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *RegistrationRepository) CountByStatus(ctx context.Context, status models.RegistrationStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations WHERE status = $1`, status).Scan(&count)
	return count, err
}

func scanRegistration(row pgx.Row) (models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID, &reg.FullName, &reg.Email, &reg.Phone, &reg.DOB, &reg.Gender, &reg.ModelType, &reg.Status,
		&reg.Bio, &reg.AllergiesOrSkin, &reg.VisualArts, &reg.Portfolio, &reg.Agency,
		&reg.Height, &reg.Weight, &reg.Bust, &reg.Waist, &reg.Hips, &reg.Shoe, &reg.HairColor, &reg.EyeColor,
		&reg.Facebook, &reg.Instagram, &reg.TikTok,
		&reg.ProfileImage, &reg.FullBodyImage, &reg.FullDress, &reg.FullShorts, &reg.FullJeans,
		&reg.CloseForward, &reg.CloseLeft, &reg.CloseRight, &reg.Sportswear, &reg.Summerwear, &reg.Swimwear,
		&reg.ExtraImages, &reg.CreatedAt, &reg.UpdatedAt,
	)
	return reg, err
}
