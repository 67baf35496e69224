package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservly/booking-platform/internal/authz"
	domain "github.com/reservly/booking-platform/internal/domain/appointment"
	"github.com/reservly/booking-platform/internal/httperr"
	"github.com/reservly/booking-platform/internal/models"
)

func seedAppointment(repo *fakeRepository, status domain.Status) *models.Appointment {
	company, service := seedActiveTarget(repo)
	return repo.addAppointment(models.Appointment{
		CompanyID:       company.ID,
		UserID:          7,
		ServiceID:       service.ID,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "10:00",
		Status:          string(status),
	})
}

func companyActor() authz.Actor {
	return authz.Actor{UserID: 10, Role: models.RoleCompany, CompanyID: 1}
}

func TestAcceptAppointment(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusPending)
	uc := NewAcceptAppointment(repo, nopAudit())

	got, err := uc.Execute(context.Background(), companyActor(), ap.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), got.Status)

	stored, _ := repo.GetAppointmentByID(context.Background(), ap.ID)
	assert.Equal(t, string(domain.StatusScheduled), stored.Status)
}

func TestAcceptRequiresPending(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusScheduled)
	uc := NewAcceptAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusScheduled)
	uc := NewCompleteAppointment(repo, nopAudit())

	got, err := uc.Execute(context.Background(), companyActor(), ap.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
	assert.NotNil(t, got.CompletedAt)
}

func TestCompleteRequiresScheduled(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusPending)
	uc := NewCompleteAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestCancelAppointmentByOwner(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusPending)
	uc := NewCancelAppointment(repo, nopAudit())

	owner := authz.Actor{UserID: 7, Role: models.RoleUser}
	got, err := uc.Execute(context.Background(), owner, ap.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)
}

func TestCancelTwiceIsConflict(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusPending)
	uc := NewCancelAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), ap.ID)
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), companyActor(), ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestTransitionAuthorization(t *testing.T) {
	tests := []struct {
		name     string
		actor    authz.Actor
		wantCode string
	}{
		{"foreign user", authz.Actor{UserID: 99, Role: models.RoleUser}, httperr.CodeForbidden},
		{"foreign company", authz.Actor{UserID: 50, Role: models.RoleCompany, CompanyID: 42}, httperr.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			ap := seedAppointment(repo, domain.StatusPending)
			uc := NewCancelAppointment(repo, nopAudit())

			_, err := uc.Execute(context.Background(), tt.actor, ap.ID)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestTransitionAdminBypassesOwnership(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusPending)
	uc := NewCancelAppointment(repo, nopAudit())

	admin := authz.Actor{UserID: 1, Role: models.RoleAdmin}
	_, err := uc.Execute(context.Background(), admin, ap.ID)
	assert.NoError(t, err)
}

func TestTransitionUnknownAppointment(t *testing.T) {
	repo := newFakeRepository()
	uc := NewCancelAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), 404)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestRescheduleMovesSlot(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusScheduled)
	uc := NewRescheduleAppointment(repo, nopAudit())

	got, err := uc.Execute(context.Background(), companyActor(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		Time:          "14:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "14:00", got.AppointmentTime)
	assert.Equal(t, "2025-03-10", got.AppointmentDate)
	assert.Equal(t, string(domain.StatusScheduled), got.Status)
}

func TestRescheduleIntoTakenSlot(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusScheduled)
	repo.addAppointment(models.Appointment{
		CompanyID:       ap.CompanyID,
		UserID:          8,
		ServiceID:       ap.ServiceID,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "14:00",
		Status:          string(domain.StatusPending),
	})
	uc := NewRescheduleAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		Time:          "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotNotAvailable))
}

func TestRescheduleNotesOnlySkipsSlotCheck(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusScheduled)
	uc := NewRescheduleAppointment(repo, nopAudit())

	// Same slot stays legal even though the tuple is occupied by the
	// appointment itself.
	got, err := uc.Execute(context.Background(), companyActor(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		Notes:         "bring id",
	})

	assert.NoError(t, err)
	assert.Equal(t, "bring id", got.Notes)
	assert.Equal(t, "10:00", got.AppointmentTime)
}

func TestRescheduleTerminalFails(t *testing.T) {
	repo := newFakeRepository()
	ap := seedAppointment(repo, domain.StatusCompleted)
	uc := NewRescheduleAppointment(repo, nopAudit())

	_, err := uc.Execute(context.Background(), companyActor(), RescheduleAppointmentInput{
		AppointmentID: ap.ID,
		Time:          "14:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepository()
	company, service := seedActiveTarget(repo)
	repo.addAppointment(models.Appointment{
		CompanyID:       company.ID,
		UserID:          7,
		ServiceID:       service.ID,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "10:00",
		Status:          string(domain.StatusPending),
	})
	repo.addAppointment(models.Appointment{
		CompanyID:       company.ID,
		UserID:          8,
		ServiceID:       service.ID,
		AppointmentDate: "2025-03-10",
		AppointmentTime: "15:30",
		Status:          string(domain.StatusCancelled),
	})
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		CompanyID: company.ID,
		ServiceID: service.ID,
		Date:      "2025-03-10",
	})

	assert.NoError(t, err)
	assert.Len(t, slots, 15)

	times := make(map[string]bool, len(slots))
	for _, s := range slots {
		times[s.Time] = true
	}
	assert.False(t, times["10:00"], "pending booking blocks the slot")
	assert.True(t, times["15:30"], "cancelled booking frees the slot")
}
