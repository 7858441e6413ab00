package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dragenda/agenda-api/internal/model"
	apperrors "github.com/dragenda/agenda-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*model.Appointment
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New()
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	return a, nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context, clinicID uuid.UUID, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if a.ClinicID == clinicID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeDoctorRepo struct{ doctors map[uuid.UUID]*model.Doctor }

func (f *fakeDoctorRepo) Create(ctx context.Context, d *model.Doctor) error { return nil }
func (f *fakeDoctorRepo) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor", nil)
	}
	return d, nil
}
func (f *fakeDoctorRepo) Update(ctx context.Context, d *model.Doctor) error { return nil }
func (f *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) error    { return nil }
func (f *fakeDoctorRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Doctor, error) {
	return nil, nil
}

type fakePatientRepo struct{ patients map[uuid.UUID]*model.Patient }

func (f *fakePatientRepo) Create(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, apperrors.NotFound("patient", nil)
	}
	return p, nil
}
func (f *fakePatientRepo) Update(ctx context.Context, p *model.Patient) error { return nil }
func (f *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakePatientRepo) List(ctx context.Context, clinicID uuid.UUID) ([]*model.Patient, error) {
	return nil, nil
}

type fixture struct {
	svc      *Service
	repo     *fakeAppointmentRepo
	clinicID uuid.UUID
	doctor   *model.Doctor
	patient  *model.Patient
}

func newFixture() *fixture {
	clinicID := uuid.New()
	doctor := &model.Doctor{Base: model.Base{ID: uuid.New()}, ClinicID: clinicID}
	patient := &model.Patient{Base: model.Base{ID: uuid.New()}, ClinicID: clinicID}

	repo := &fakeAppointmentRepo{appointments: map[uuid.UUID]*model.Appointment{}}
	svc := NewService(
		repo,
		&fakeDoctorRepo{doctors: map[uuid.UUID]*model.Doctor{doctor.ID: doctor}},
		&fakePatientRepo{patients: map[uuid.UUID]*model.Patient{patient.ID: patient}},
	)
	return &fixture{svc: svc, repo: repo, clinicID: clinicID, doctor: doctor, patient: patient}
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture()

	a := &model.Appointment{
		ClinicID:  f.clinicID,
		DoctorID:  f.doctor.ID,
		PatientID: f.patient.ID,
		Date:      time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, f.svc.CreateAppointment(context.Background(), a))
	assert.Len(t, f.repo.appointments, 1)
}

func TestCreateAppointmentDoctorFromOtherClinic(t *testing.T) {
	f := newFixture()
	f.doctor.ClinicID = uuid.New()

	a := &model.Appointment{
		ClinicID:  f.clinicID,
		DoctorID:  f.doctor.ID,
		PatientID: f.patient.ID,
		Date:      time.Now(),
	}
	err := f.svc.CreateAppointment(context.Background(), a)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
	assert.Empty(t, f.repo.appointments)
}

func TestCreateAppointmentPatientFromOtherClinic(t *testing.T) {
	f := newFixture()
	f.patient.ClinicID = uuid.New()

	a := &model.Appointment{
		ClinicID:  f.clinicID,
		DoctorID:  f.doctor.ID,
		PatientID: f.patient.ID,
		Date:      time.Now(),
	}
	err := f.svc.CreateAppointment(context.Background(), a)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
	assert.Empty(t, f.repo.appointments)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	f := newFixture()

	a := &model.Appointment{
		ClinicID:  f.clinicID,
		DoctorID:  uuid.New(),
		PatientID: f.patient.ID,
		Date:      time.Now(),
	}
	err := f.svc.CreateAppointment(context.Background(), a)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestCreateAppointmentMissingDate(t *testing.T) {
	f := newFixture()

	a := &model.Appointment{
		ClinicID:  f.clinicID,
		DoctorID:  f.doctor.ID,
		PatientID: f.patient.ID,
	}
	err := f.svc.CreateAppointment(context.Background(), a)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrBadRequest))
}
