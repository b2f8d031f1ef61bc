package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"impilo/registry/internal/models"
)

type RegistrationMemorySuite struct {
	suite.Suite
	store *RegistrationMemory
	ctx   context.Context
}

func (s *RegistrationMemorySuite) SetupTest() {
	s.store = NewRegistrationMemory()
	s.ctx = context.Background()
}

func TestRegistrationMemorySuite(t *testing.T) {
	suite.Run(t, new(RegistrationMemorySuite))
}

func (s *RegistrationMemorySuite) newRegistration(id, email, phone string, createdAt time.Time) models.Registration {
	return models.Registration{
		ID:        id,
		FullName:  "Test Model",
		Email:     email,
		Phone:     phone,
		ModelType: models.CategoryFeatured,
		Status:    models.StatusPending,
		CreatedAt: createdAt,
	}
}

func (s *RegistrationMemorySuite) TestCreateAndGet() {
	reg := s.newRegistration("a", "a@x.com", "+1", time.Now())
	s.Require().NoError(s.store.Create(s.ctx, reg))

	found, err := s.store.GetByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("a@x.com", found.Email)

	_, err = s.store.GetByID(s.ctx, "zzz")
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *RegistrationMemorySuite) TestListNewestFirst() {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("a", "a@x.com", "+1", t1)))
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("b", "b@x.com", "+2", t2)))

	regs, err := s.store.List(s.ctx, 100, 0)
	s.Require().NoError(err)
	s.Require().Len(regs, 2)
	s.Equal("b", regs[0].ID)
	s.Equal("a", regs[1].ID)
}

func (s *RegistrationMemorySuite) TestListPagination() {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		reg := s.newRegistration(id, id+"@x.com", "+"+id, base.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(s.store.Create(s.ctx, reg))
	}

	page, err := s.store.List(s.ctx, 2, 0)
	s.Require().NoError(err)
	s.Len(page, 2)

	rest, err := s.store.List(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Len(rest, 1)

	none, err := s.store.List(s.ctx, 2, 10)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RegistrationMemorySuite) TestUpdateStatus() {
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("a", "a@x.com", "+1", time.Now())))

	updated, err := s.store.UpdateStatus(s.ctx, "a", models.StatusApproved)
	s.Require().NoError(err)
	s.Equal(models.StatusApproved, updated.Status)

	_, err = s.store.UpdateStatus(s.ctx, "missing", models.StatusApproved)
	s.Require().ErrorIs(err, ErrNotFound)
}

func (s *RegistrationMemorySuite) TestDelete() {
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("a", "a@x.com", "+1", time.Now())))

	s.Require().NoError(s.store.Delete(s.ctx, "a"))
	_, err := s.store.GetByID(s.ctx, "a")
	s.Require().ErrorIs(err, ErrNotFound)

	s.Require().ErrorIs(s.store.Delete(s.ctx, "a"), ErrNotFound)
}

func (s *RegistrationMemorySuite) TestExistsByEmailOrPhone() {
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("a", "jane@x.com", "+27831234567", time.Now())))

	exists, err := s.store.ExistsByEmailOrPhone(s.ctx, "JANE@X.COM", "+0")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.ExistsByEmailOrPhone(s.ctx, "other@x.com", "+27831234567")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.ExistsByEmailOrPhone(s.ctx, "other@x.com", "+0")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RegistrationMemorySuite) TestCountByStatus() {
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("a", "a@x.com", "+1", time.Now())))
	s.Require().NoError(s.store.Create(s.ctx, s.newRegistration("b", "b@x.com", "+2", time.Now())))
	_, err := s.store.UpdateStatus(s.ctx, "b", models.StatusApproved)
	s.Require().NoError(err)

	pending, err := s.store.CountByStatus(s.ctx, models.StatusPending)
	s.Require().NoError(err)
	s.Equal(1, pending)
}
