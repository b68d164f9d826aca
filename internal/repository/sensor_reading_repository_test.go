package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(db, "postgres"), mock
}

func readingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "sensor_id", "greenhouse_id", "value", "unit", "quality", "timestamp", "created_at",
	})
}

func TestGetLatestBySensorID_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSensorReadingRepository(db)
	sensorID := uuid.New()
	greenhouseID := uuid.New()
	ts := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	rows := readingRows().
		AddRow(uuid.New(), sensorID, greenhouseID, 22.5, "celsius", "good", ts, ts)

	mock.ExpectQuery(`ORDER BY timestamp DESC LIMIT 1`).
		WithArgs(sensorID).
		WillReturnRows(rows)

	reading, err := repo.GetLatestBySensorID(context.Background(), sensorID)

	require.NoError(t, err)
	require.NotNil(t, reading)
	assert.Equal(t, sensorID, reading.SensorID)
	assert.Equal(t, 22.5, reading.Value)
	assert.Equal(t, ts, reading.Timestamp)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestBySensorID_NoReadings(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSensorReadingRepository(db)
	sensorID := uuid.New()

	mock.ExpectQuery(`ORDER BY timestamp DESC LIMIT 1`).
		WithArgs(sensorID).
		WillReturnRows(readingRows())

	reading, err := repo.GetLatestBySensorID(context.Background(), sensorID)

	require.NoError(t, err, "a sensor without readings is not an error")
	assert.Nil(t, reading)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySensorSince_PassesWindowAndLimit(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSensorReadingRepository(db)
	sensorID := uuid.New()
	greenhouseID := uuid.New()
	since := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	rows := readingRows().
		AddRow(uuid.New(), sensorID, greenhouseID, 23.0, "celsius", "good", since.Add(2*time.Hour), since.Add(2*time.Hour)).
		AddRow(uuid.New(), sensorID, greenhouseID, 22.0, "celsius", "good", since.Add(time.Hour), since.Add(time.Hour))

	mock.ExpectQuery(`WHERE sensor_id = \$1 AND timestamp >= \$2`).
		WithArgs(sensorID, since, 100).
		WillReturnRows(rows)

	readings, err := repo.GetBySensorSince(context.Background(), sensorID, since, 100)

	require.NoError(t, err)
	assert.Len(t, readings, 2)
	assert.Equal(t, 23.0, readings[0].Value, "newest first")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DefaultsQualityAndID(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewSensorReadingRepository(db)

	mock.ExpectExec(`INSERT INTO sensor_readings`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	reading := &models.SensorReading{
		SensorID:     uuid.New(),
		GreenhouseID: uuid.New(),
		Value:        18.2,
		Unit:         "celsius",
		Timestamp:    time.Now(),
	}
	err := repo.Create(context.Background(), reading)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, reading.ID)
	assert.Equal(t, models.QualityGood, reading.Quality)

	assert.NoError(t, mock.ExpectationsWereMet())
}
