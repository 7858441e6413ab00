package doctor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragenda/agenda-api/internal/model"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type fakeDoctorRepo struct {
	doctors map[uuid.UUID]*model.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{}}
}

func (f *fakeDoctorRepo) Create(ctx context.Context, d *model.Doctor) error {
	d.ID = uuid.New()
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return d, nil
}

func (f *fakeDoctorRepo) Update(ctx context.Context, d *model.Doctor) error {
	f.doctors[d.ID] = d
	return nil
}

func (f *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.doctors, id)
	return nil
}

func (f *fakeDoctorRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	var out []*model.Doctor
	for _, d := range f.doctors {
		if d.ClinicID == clinicID {
			out = append(out, d)
		}
	}
	return out, nil
}

func validDoctor() *model.Doctor {
	return &model.Doctor{
		ClinicID:                uuid.New(),
		Name:                    "Dr. Chen",
		Specialty:               "Cardiology",
		AvailableFromWeekDay:    1,
		AvailableToWeekDay:      5,
		AvailableFromTime:       "08:00:00",
		AvailableToTime:         "17:00:00",
		AppointmentPriceInCents: 15000,
	}
}

func TestCreateDoctor(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewService(repo)

	d := validDoctor()
	require.NoError(t, svc.CreateDoctor(context.Background(), d))
	assert.Len(t, repo.doctors, 1)
}

func TestCreateDoctorWeekdayOutOfRange(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	for _, day := range []int{-1, 7, 42} {
		d := validDoctor()
		d.AvailableToWeekDay = day
		err := svc.CreateDoctor(context.Background(), d)
		require.Error(t, err, "day %d", day)
		assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
	}
}

func TestCreateDoctorInvertedWindow(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	d := validDoctor()
	d.AvailableFromWeekDay = 5
	d.AvailableToWeekDay = 1
	err := svc.CreateDoctor(context.Background(), d)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))

	d = validDoctor()
	d.AvailableFromTime = "17:00:00"
	d.AvailableToTime = "08:00:00"
	err = svc.CreateDoctor(context.Background(), d)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
}

func TestCreateDoctorNegativePrice(t *testing.T) {
	svc := NewService(newFakeDoctorRepo())

	d := validDoctor()
	d.AppointmentPriceInCents = -1
	err := svc.CreateDoctor(context.Background(), d)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
}
