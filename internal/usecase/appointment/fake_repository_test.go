package appointment

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/models"
)

// fakeRepository is an in-memory domain.Repository for use case tests.
type fakeRepository struct {
	companies    map[uint]*models.Company
	services     map[uint]*models.Service
	users        map[uint]*models.User
	appointments map[uint]*models.Appointment

	nextID uint
}

var _ domain.Repository = (*fakeRepository)(nil)

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		companies:    map[uint]*models.Company{},
		services:     map[uint]*models.Service{},
		users:        map[uint]*models.User{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepository) addCompany(c models.Company) *models.Company {
	stored := c
	f.companies[stored.ID] = &stored
	return &stored
}

func (f *fakeRepository) addService(s models.Service) *models.Service {
	stored := s
	f.services[stored.ID] = &stored
	return &stored
}

func (f *fakeRepository) addAppointment(ap models.Appointment) *models.Appointment {
	stored := ap
	if stored.ID == 0 {
		stored.ID = f.nextID
		f.nextID++
	}
	f.appointments[stored.ID] = &stored
	return &stored
}

func (f *fakeRepository) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepository) GetCompanyByUserID(ctx context.Context, userID uint) (*models.Company, error) {
	for _, c := range f.companies {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) GetService(ctx context.Context, companyID, serviceID uint) (*models.Service, error) {
	s, ok := f.services[serviceID]
	if !ok || s.CompanyID != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepository) GetOrCreateWalkInUser(ctx context.Context, name, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	u := &models.User{
		ID:    f.nextID,
		Name:  name,
		Email: email,
		Role:  models.RoleUser,
	}
	f.nextID++
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) CountActiveAt(ctx context.Context, companyID, serviceID uint, date, timeOfDay string) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.CompanyID == companyID &&
			ap.ServiceID == serviceID &&
			ap.AppointmentDate == date &&
			ap.AppointmentTime == timeOfDay &&
			!domain.Status(ap.Status).Terminal() {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepository) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *ap
	return &copied, nil
}

func (f *fakeRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepository) ListActiveTimes(ctx context.Context, companyID, serviceID uint, date string) ([]string, error) {
	var times []string
	for _, ap := range f.appointments {
		if ap.CompanyID == companyID &&
			ap.ServiceID == serviceID &&
			ap.AppointmentDate == date &&
			!domain.Status(ap.Status).Terminal() {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByCompanyAndDate(ctx context.Context, companyID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CompanyID == companyID && ap.AppointmentDate == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListByCompanyAndMonth(ctx context.Context, companyID uint, month string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CompanyID == companyID && strings.HasPrefix(ap.AppointmentDate, month) {
			out = append(out, *ap)
		}
	}
	return out, nil
}
