package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"impilo/registry/internal/cdn"
	"impilo/registry/internal/config"
	"impilo/registry/internal/models"
	"impilo/registry/internal/repository"
)

type fakePutter struct {
	puts int
}

func (f *fakePutter) Put(ctx context.Context, reader io.Reader, size int64, filename, contentType string) (string, error) {
	f.puts++
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.internal/impilo-registrations/%d-%s", f.puts, filename), nil
}

type IntakeSuite struct {
	suite.Suite
	regs   *repository.RegistrationMemory
	putter *fakePutter
	svc    *IntakeService
	ctx    context.Context
}

func (s *IntakeSuite) SetupTest() {
	s.regs = repository.NewRegistrationMemory()
	s.putter = &fakePutter{}
	cfg := &config.AppConfig{}
	cfg.Upload.MaxFileSize = 1 << 20
	s.svc = NewIntakeService(s.regs, s.putter, cdn.NewLocator("https://cdn.example.com"), cfg, zerolog.Nop())
	s.ctx = context.Background()
}

func TestIntakeSuite(t *testing.T) {
	suite.Run(t, new(IntakeSuite))
}

// formFiles builds real multipart file headers the way an HTTP handler
// receives them.
func (s *IntakeSuite) formFiles(filesByField map[string][]string) map[string][]*multipart.FileHeader {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, names := range filesByField {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			s.Require().NoError(err)
			_, err = part.Write([]byte("fake image bytes"))
			s.Require().NoError(err)
		}
	}
	s.Require().NoError(writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	s.Require().NoError(err)
	return form.File
}

func (s *IntakeSuite) TestSubmitInHouse() {
	reg, err := s.svc.Submit(s.ctx, SubmitInput{
		Fields:     baseFields(),
		VisualArts: []string{"painting", ""},
		Files:      s.formFiles(map[string][]string{"profileImage": {"me.jpg"}}),
	})
	s.Require().NoError(err)

	s.Equal(models.StatusPending, reg.Status)
	s.Equal(models.CategoryInHouse, reg.ModelType)
	s.NotEmpty(reg.ID)
	s.False(reg.CreatedAt.IsZero())

	s.Require().NotNil(reg.Bio)
	s.Require().NotNil(reg.AllergiesOrSkin)
	s.Equal([]string{"painting"}, reg.VisualArts)

	// Opposite category's fields are absent, not blank.
	s.Nil(reg.Portfolio)
	s.Nil(reg.Agency)

	s.Require().NotNil(reg.ProfileImage)
	s.Contains(*reg.ProfileImage, "https://cdn.example.com/")
	s.NotContains(*reg.ProfileImage, "storage.internal")

	stored, err := s.regs.GetByID(s.ctx, reg.ID)
	s.Require().NoError(err)
	s.Equal(reg.Email, stored.Email)
}

func (s *IntakeSuite) TestSubmitFeatured() {
	reg, err := s.svc.Submit(s.ctx, SubmitInput{
		Fields:     featuredFields(),
		VisualArts: []string{"painting"},
	})
	s.Require().NoError(err)

	s.Require().NotNil(reg.Portfolio)
	s.Require().NotNil(reg.Agency)
	s.Nil(reg.Bio)
	s.Nil(reg.AllergiesOrSkin)
	s.Empty(reg.VisualArts)
	s.Nil(reg.ProfileImage)
	s.Empty(reg.ExtraImages)
}

func (s *IntakeSuite) TestValidationBlocksPersistence() {
	fields := baseFields()
	delete(fields, "email")

	_, err := s.svc.Submit(s.ctx, SubmitInput{Fields: fields})
	s.Require().Error(err)
	s.True(IsValidationError(err))

	regs, err := s.regs.List(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Empty(regs)
	s.Zero(s.putter.puts)
}

func (s *IntakeSuite) TestDuplicateEmailRejected() {
	_, err := s.svc.Submit(s.ctx, SubmitInput{Fields: baseFields()})
	s.Require().NoError(err)

	fields := baseFields()
	fields["phone"] = "+27000000000"

	_, err = s.svc.Submit(s.ctx, SubmitInput{Fields: fields})
	s.Require().Error(err)
	s.True(IsValidationError(err))

	regs, err := s.regs.List(s.ctx, 10, 0)
	s.Require().NoError(err)
	s.Len(regs, 1)
}

func (s *IntakeSuite) TestTooManyFilesRejected() {
	files := s.formFiles(map[string][]string{
		"profileImage": {"1.jpg", "2.jpg", "3.jpg", "4.jpg"},
	})

	_, err := s.svc.Submit(s.ctx, SubmitInput{Fields: baseFields(), Files: files})
	s.Require().Error(err)
	s.True(IsValidationError(err))
	s.Zero(s.putter.puts)
}

func (s *IntakeSuite) TestUnknownFileFieldRejected() {
	files := s.formFiles(map[string][]string{"selfie": {"1.jpg"}})

	_, err := s.svc.Submit(s.ctx, SubmitInput{Fields: baseFields(), Files: files})
	s.Require().Error(err)
	s.True(IsValidationError(err))
}

func (s *IntakeSuite) TestOversizedFileRejected() {
	s.svc.cfg.Upload.MaxFileSize = 4

	files := s.formFiles(map[string][]string{"profileImage": {"big.jpg"}})

	_, err := s.svc.Submit(s.ctx, SubmitInput{Fields: baseFields(), Files: files})
	s.Require().Error(err)
	s.True(IsValidationError(err))
	s.Zero(s.putter.puts)
}

func (s *IntakeSuite) TestExtraImagesCollatedInOrder() {
	files := s.formFiles(map[string][]string{
		"extraImages": {"x1.jpg", "x2.jpg"},
	})

	reg, err := s.svc.Submit(s.ctx, SubmitInput{Fields: baseFields(), Files: files})
	s.Require().NoError(err)
	s.Require().Len(reg.ExtraImages, 2)
	s.Contains(reg.ExtraImages[0], "x1.jpg")
	s.Contains(reg.ExtraImages[1], "x2.jpg")
}
