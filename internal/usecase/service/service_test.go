package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/reservly/booking-platform/internal/audit"
	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/service"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
	"github.com/reservly/booking-platform/internal/validators"
)

// fakeRepository is an in-memory domain.Repository for use case tests.
type fakeRepository struct {
	services          map[uint]*models.Service
	appointmentCounts map[uint]int64
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		services:          map[uint]*models.Service{},
		appointmentCounts: map[uint]int64{},
	}
}

func (f *fakeRepository) addService(s models.Service) *models.Service {
	stored := s
	f.services[stored.ID] = &stored
	return &stored
}

func (f *fakeRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepository) ListByCompany(ctx context.Context, companyID uint, status models.ServiceStatus) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range f.services {
		if s.CompanyID != companyID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepository) CountAppointments(ctx context.Context, serviceID uint) (int64, error) {
	return f.appointmentCounts[serviceID], nil
}

func (f *fakeRepository) Save(ctx context.Context, service *models.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, service *models.Service) error {
	delete(f.services, service.ID)
	return nil
}

func nopAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func companyActor() authz.Actor {
	return authz.Actor{UserID: 10, Role: models.RoleCompany, CompanyID: 1}
}

func seedService(repo *fakeRepository, id uint) *models.Service {
	return repo.addService(models.Service{
		ID:          id,
		CompanyID:   1,
		Name:        "Haircut",
		Price:       50,
		DurationMin: 30,
		Status:      models.ServiceActive,
	})
}

func TestArchiveService(t *testing.T) {
	tests := []struct {
		name         string
		appointments int64
	}{
		{name: "without appointment history", appointments: 0},
		{name: "with appointment history", appointments: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			seedService(repo, 1)
			repo.appointmentCounts[1] = tt.appointments
			uc := NewArchiveService(repo, nopAudit())

			svc, err := uc.Execute(context.Background(), companyActor(), 1)

			assert.NoError(t, err)
			assert.Equal(t, models.ServiceArchived, svc.Status)
			assert.Equal(t, models.ServiceArchived, repo.services[1].Status)
		})
	}
}

func TestArchiveServiceScope(t *testing.T) {
	repo := newFakeRepository()
	seedService(repo, 1)
	uc := NewArchiveService(repo, nopAudit())

	t.Run("foreign company is forbidden", func(t *testing.T) {
		actor := authz.Actor{UserID: 20, Role: models.RoleCompany, CompanyID: 2}

		_, err := uc.Execute(context.Background(), actor, 1)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
		assert.Equal(t, models.ServiceActive, repo.services[1].Status)
	})

	t.Run("admin may archive any service", func(t *testing.T) {
		actor := authz.Actor{UserID: 99, Role: models.RoleAdmin}

		svc, err := uc.Execute(context.Background(), actor, 1)

		assert.NoError(t, err)
		assert.Equal(t, models.ServiceArchived, svc.Status)
	})

	t.Run("unknown service is not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), companyActor(), 42)

		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})
}

func TestDeleteService(t *testing.T) {
	t.Run("with appointments is a conflict", func(t *testing.T) {
		repo := newFakeRepository()
		seedService(repo, 1)
		repo.appointmentCounts[1] = 2
		uc := NewDeleteService(repo, nopAudit())

		err := uc.Execute(context.Background(), companyActor(), 1)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeHasAppointments))
		assert.Contains(t, repo.services, uint(1))
	})

	t.Run("without appointments removes the service", func(t *testing.T) {
		repo := newFakeRepository()
		seedService(repo, 1)
		uc := NewDeleteService(repo, nopAudit())

		err := uc.Execute(context.Background(), companyActor(), 1)

		assert.NoError(t, err)
		assert.NotContains(t, repo.services, uint(1))
	})

	t.Run("foreign company is forbidden", func(t *testing.T) {
		repo := newFakeRepository()
		seedService(repo, 1)
		uc := NewDeleteService(repo, nopAudit())
		actor := authz.Actor{UserID: 20, Role: models.RoleCompany, CompanyID: 2}

		err := uc.Execute(context.Background(), actor, 1)

		assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
		assert.Contains(t, repo.services, uint(1))
	})

	t.Run("unknown service is not found", func(t *testing.T) {
		repo := newFakeRepository()
		uc := NewDeleteService(repo, nopAudit())

		err := uc.Execute(context.Background(), companyActor(), 42)

		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})
}

func TestListServices(t *testing.T) {
	repo := newFakeRepository()
	seedService(repo, 1)
	repo.addService(models.Service{
		ID:          2,
		CompanyID:   1,
		Name:        "Beard trim",
		Price:       25,
		DurationMin: 30,
		Status:      models.ServiceActive,
	})
	repo.addService(models.Service{
		ID:          3,
		CompanyID:   2,
		Name:        "Massage",
		Price:       80,
		DurationMin: 60,
		Status:      models.ServiceActive,
	})

	listUC := NewListServices(repo)
	archiveUC := NewArchiveService(repo, nopAudit())

	_, err := archiveUC.Execute(context.Background(), companyActor(), 2)
	assert.NoError(t, err)

	t.Run("active listing excludes the archived service", func(t *testing.T) {
		services, err := listUC.Execute(context.Background(), 1, "active")

		assert.NoError(t, err)
		assert.Len(t, services, 1)
		assert.Equal(t, uint(1), services[0].ID)
	})

	t.Run("empty status shows everything in scope", func(t *testing.T) {
		services, err := listUC.Execute(context.Background(), 1, "")

		assert.NoError(t, err)
		assert.Len(t, services, 2)
	})

	t.Run("archived listing shows only the archived service", func(t *testing.T) {
		services, err := listUC.Execute(context.Background(), 1, "archived")

		assert.NoError(t, err)
		assert.Len(t, services, 1)
		assert.Equal(t, uint(2), services[0].ID)
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		_, err := listUC.Execute(context.Background(), 1, "retired")

		var fields validators.FieldErrors
		assert.ErrorAs(t, err, &fields)
		assert.Contains(t, fields, "status")
	})
}
