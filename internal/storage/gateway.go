// ABOUTME: Persistence gateway: save, update and delete for any entity.
// ABOUTME: Each call runs in its own unit-of-work and is logged and counted.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/observability"
)

// Save inserts a new entity and assigns its generated id.
func (d *DB) Save(ctx context.Context, e models.Entity) (err error) {
	started := time.Now()
	kind := kindOf(e)
	defer func() { err = d.finish(ctx, "save", kind, started, err) }()

	var id int64
	err = WithTx(ctx, d.db, nil, func(ctx context.Context, tx DBTX) error {
		var err error
		id, err = d.insertEntity(ctx, tx, e)
		return err
	})
	if err != nil {
		return err
	}
	setID(e, id)
	return nil
}

// SaveAll inserts every entity in a single unit-of-work. Either all rows
// are stored and all ids assigned, or nothing is stored and no id changes.
func (d *DB) SaveAll(ctx context.Context, es ...models.Entity) (err error) {
	started := time.Now()
	defer func() { err = d.finish(ctx, "save_all", "batch", started, err) }()

	ids := make([]int64, len(es))
	err = WithTx(ctx, d.db, nil, func(ctx context.Context, tx DBTX) error {
		for i, e := range es {
			id, err := d.insertEntity(ctx, tx, e)
			if err != nil {
				return fmt.Errorf("record %d (%s): %w", i+1, kindOf(e), err)
			}
			ids[i] = id
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i, e := range es {
		setID(e, ids[i])
	}
	return nil
}

func (d *DB) insertEntity(ctx context.Context, tx DBTX, e models.Entity) (int64, error) {
	switch v := e.(type) {
	case *models.User:
		return d.insertUser(ctx, tx, v)
	case *models.Workout:
		return d.insertWorkout(ctx, tx, v)
	case *models.Measurement:
		return d.insertMeasurement(ctx, tx, v)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedEntity, e)
	}
}

func setID(e models.Entity, id int64) {
	switch v := e.(type) {
	case *models.User:
		v.ID = id
	case *models.Workout:
		v.ID = id
	case *models.Measurement:
		v.ID = id
	}
}

// Update writes an existing entity. A row that no longer exists yields
// ErrNotFound wrapped in a PersistenceError.
func (d *DB) Update(ctx context.Context, e models.Entity) (err error) {
	started := time.Now()
	kind := kindOf(e)
	defer func() { err = d.finish(ctx, "update", kind, started, err) }()

	return WithTx(ctx, d.db, nil, func(ctx context.Context, tx DBTX) error {
		switch v := e.(type) {
		case *models.User:
			return d.updateUser(ctx, tx, v)
		case *models.Workout:
			return d.updateWorkout(ctx, tx, v)
		case *models.Measurement:
			return d.updateMeasurement(ctx, tx, v)
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedEntity, e)
		}
	})
}

// Delete removes an entity, resolving it again by id and owner.
// Deleting a row that is already gone is not an error.
func (d *DB) Delete(ctx context.Context, e models.Entity) (err error) {
	started := time.Now()
	kind := kindOf(e)
	defer func() { err = d.finish(ctx, "delete", kind, started, err) }()

	return WithTx(ctx, d.db, nil, func(ctx context.Context, tx DBTX) error {
		switch v := e.(type) {
		case *models.User:
			return d.deleteUser(ctx, tx, v)
		case *models.Workout:
			return d.deleteWorkout(ctx, tx, v)
		case *models.Measurement:
			return d.deleteMeasurement(ctx, tx, v)
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedEntity, e)
		}
	})
}

func (d *DB) finish(ctx context.Context, op, kind string, started time.Time, err error) error {
	observability.ObserveGatewayOp(op, kind, started, err)
	if err == nil {
		d.log.Debug(ctx, "gateway operation committed", "op", op, "kind", kind, "elapsed", time.Since(started))
		return nil
	}
	if errors.Is(err, ErrNotFound) {
		d.log.Warn(ctx, "gateway target missing", "op", op, "kind", kind)
	} else {
		d.log.Error(ctx, "gateway operation failed", "op", op, "kind", kind, "error", err)
	}
	return persistErr(op, kind, err)
}

func kindOf(e models.Entity) string {
	if e == nil {
		return "unknown"
	}
	return e.Kind()
}
