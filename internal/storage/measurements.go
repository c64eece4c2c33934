// ABOUTME: SQL for body measurements.
// ABOUTME: Every statement is scoped to the owning user.
package storage

import (
	"context"
	"database/sql"

	"github.com/harperreed/fitness/internal/models"
)

const measurementColumns = `id, user_id, record_date, weight, height, created_at`

func (d *DB) insertMeasurement(ctx context.Context, tx DBTX, m *models.Measurement) (int64, error) {
	return d.insert(ctx, tx,
		`INSERT INTO measurements (user_id, record_date, weight, height, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.UserID, formatDate(m.RecordDate), m.Weight, nullFloat(m.Height), formatTimestamp(m.CreatedAt))
}

func (d *DB) updateMeasurement(ctx context.Context, tx DBTX, m *models.Measurement) error {
	return d.execOne(ctx, tx,
		`UPDATE measurements SET record_date = ?, weight = ?, height = ? WHERE id = ? AND user_id = ?`,
		formatDate(m.RecordDate), m.Weight, nullFloat(m.Height), m.ID, m.UserID)
}

func (d *DB) deleteMeasurement(ctx context.Context, tx DBTX, m *models.Measurement) error {
	found, err := d.exists(ctx, tx, `SELECT COUNT(*) FROM measurements WHERE id = ? AND user_id = ?`, m.ID, m.UserID)
	if err != nil || !found {
		return err
	}
	_, err = tx.ExecContext(ctx, d.dialect.rebind(`DELETE FROM measurements WHERE id = ? AND user_id = ?`), m.ID, m.UserID)
	return err
}

// FindMeasurement retrieves one measurement owned by userID.
func (d *DB) FindMeasurement(ctx context.Context, userID, id int64) (*models.Measurement, error) {
	row := d.db.QueryRowContext(ctx,
		d.dialect.rebind(`SELECT `+measurementColumns+` FROM measurements WHERE id = ? AND user_id = ?`), id, userID)
	m, err := scanMeasurement(row)
	if err != nil {
		return nil, queryErr("measurement", err)
	}
	return m, nil
}

// ListMeasurementsByUser returns the user's measurements, oldest first.
func (d *DB) ListMeasurementsByUser(ctx context.Context, userID int64) ([]models.Measurement, error) {
	rows, err := d.db.QueryContext(ctx,
		d.dialect.rebind(`SELECT `+measurementColumns+` FROM measurements WHERE user_id = ? ORDER BY record_date ASC, id ASC`), userID)
	if err != nil {
		return nil, queryErr("measurement", err)
	}
	defer func() { _ = rows.Close() }()

	measurements := []models.Measurement{}
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, queryErr("measurement", err)
		}
		measurements = append(measurements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, queryErr("measurement", err)
	}
	return measurements, nil
}

func scanMeasurement(s scanner) (*models.Measurement, error) {
	var (
		m         models.Measurement
		date      string
		height    sql.NullFloat64
		createdAt string
	)
	if err := s.Scan(&m.ID, &m.UserID, &date, &m.Weight, &height, &createdAt); err != nil {
		return nil, err
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	m.RecordDate = d
	m.Height = floatPtr(height)
	m.CreatedAt = parseTimestamp(createdAt)
	return &m, nil
}
