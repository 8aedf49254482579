package services_test

import (
	"context"
	"testing"

	"hospital-records/internal/models"
	"hospital-records/internal/services"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"
)

func TestPatientService_CreateThenGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	doctors := services.NewDoctorService(db, testQueryTimeout)
	patients := services.NewPatientService(db, testQueryTimeout)

	doctorID, err := doctors.Create(ctx, doctorInput())
	require.NoError(t, err)

	in := models.PatientInput{
		Name:     randomdata.SillyName(),
		Ailment:  randomdata.SillyName(),
		DoctorID: doctorID,
	}
	id, err := patients.Create(ctx, in)
	require.NoError(t, err)

	got, err := patients.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.Patient{ID: id, Name: in.Name, Ailment: in.Ailment, DoctorID: in.DoctorID}, got)
}

func TestPatientService_GetMissing(t *testing.T) {
	patients := services.NewPatientService(newTestDB(t), testQueryTimeout)

	_, err := patients.Get(context.Background(), 1)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestPatientService_ListJoinsDoctorName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	doctors := services.NewDoctorService(db, testQueryTimeout)
	patients := services.NewPatientService(db, testQueryTimeout)

	doc := doctorInput()
	doctorID, err := doctors.Create(ctx, doc)
	require.NoError(t, err)

	assigned, err := patients.Create(ctx, models.PatientInput{Name: "Assigned", DoctorID: doctorID})
	require.NoError(t, err)
	unassigned, err := patients.Create(ctx, models.PatientInput{Name: "Unassigned"})
	require.NoError(t, err)
	dangling, err := patients.Create(ctx, models.PatientInput{Name: "Dangling", DoctorID: doctorID + 100})
	require.NoError(t, err)

	list, err := patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	require.Equal(t, assigned, list[0].ID)
	require.NotNil(t, list[0].DoctorName)
	require.Equal(t, doc.Name, *list[0].DoctorName)

	require.Equal(t, unassigned, list[1].ID)
	require.Nil(t, list[1].DoctorName)

	require.Equal(t, dangling, list[2].ID)
	require.Equal(t, doctorID+100, list[2].DoctorID)
	require.Nil(t, list[2].DoctorName)
}

func TestPatientService_NullTextReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	patients := services.NewPatientService(db, testQueryTimeout)

	res, err := db.ExecContext(ctx, `INSERT INTO patients (name) VALUES (?)`, "Legacy")
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	got, err := patients.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "", got.Ailment)
	require.Equal(t, models.UnassignedDoctorID, got.DoctorID)

	list, err := patients.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "", list[0].Ailment)
}

func TestPatientService_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	patients := services.NewPatientService(newTestDB(t), testQueryTimeout)

	id, err := patients.Create(ctx, models.PatientInput{Name: randomdata.SillyName(), Ailment: "Flu"})
	require.NoError(t, err)

	require.NoError(t, patients.Update(ctx, id, models.PatientInput{Name: "Renamed", Ailment: "Cold", DoctorID: 3}))
	got, err := patients.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, models.Patient{ID: id, Name: "Renamed", Ailment: "Cold", DoctorID: 3}, got)

	require.NoError(t, patients.Update(ctx, id+1, models.PatientInput{Name: "Nobody"}))

	require.NoError(t, patients.Delete(ctx, id))
	_, err = patients.Get(ctx, id)
	require.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, patients.Delete(ctx, id))
}
