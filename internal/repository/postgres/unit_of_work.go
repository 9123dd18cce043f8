package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/pkg/errors"
)

type changeKind int

const (
	changeAdd changeKind = iota
	changeUpdate
	changeDelete
)

func (k changeKind) String() string {
	switch k {
	case changeAdd:
		return "add"
	case changeUpdate:
		return "update"
	default:
		return "delete"
	}
}

type pendingChange struct {
	kind   changeKind
	cityID int64
	poi    *domain.PointOfInterest
}

// unitOfWork - набор изменений точек интереса, фиксируемых одной транзакцией
type unitOfWork struct {
	db      *sqlx.DB
	logger  *zap.Logger
	pending []pendingChange
}

func (u *unitOfWork) AddPointOfInterestForCity(cityID int64, poi *domain.PointOfInterest) {
	u.pending = append(u.pending, pendingChange{kind: changeAdd, cityID: cityID, poi: poi})
}

func (u *unitOfWork) UpdatePointOfInterest(poi *domain.PointOfInterest) {
	u.pending = append(u.pending, pendingChange{kind: changeUpdate, poi: poi})
}

func (u *unitOfWork) DeletePointOfInterest(poi *domain.PointOfInterest) {
	u.pending = append(u.pending, pendingChange{kind: changeDelete, poi: poi})
}

func (u *unitOfWork) Save(ctx context.Context) (bool, error) {
	if len(u.pending) == 0 {
		return true, nil
	}

	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		u.logger.Error("Failed to begin transaction", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	// ids are written back only after commit so a failed save leaves entities untouched
	assigned := make(map[*domain.PointOfInterest]int64)

	for _, change := range u.pending {
		id, err := u.apply(ctx, tx, change)
		if err != nil {
			u.logger.Error("Failed to apply point of interest change",
				zap.Stringer("kind", change.kind),
				zap.Int64("id", change.poi.ID),
				zap.Error(err),
			)
			return false, errors.ErrDatabaseError
		}
		if change.kind == changeAdd && id != 0 {
			assigned[change.poi] = id
		}
	}

	if err := tx.Commit(); err != nil {
		u.logger.Error("Failed to commit transaction", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	for poi, id := range assigned {
		poi.ID = id
	}
	for _, change := range u.pending {
		if change.kind == changeAdd {
			change.poi.CityID = change.cityID
		}
	}
	u.pending = nil

	return true, nil
}

func (u *unitOfWork) apply(ctx context.Context, tx *sqlx.Tx, change pendingChange) (int64, error) {
	switch change.kind {
	case changeAdd:
		var id int64
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO points_of_interest (city_id, name, description)
			SELECT $1, $2, $3
			WHERE EXISTS (SELECT 1 FROM cities WHERE id = $1)
			RETURNING id`,
			change.cityID, change.poi.Name, change.poi.Description,
		).Scan(&id)
		if stderrors.Is(err, sql.ErrNoRows) {
			// owning city is gone: nothing inserted
			return 0, nil
		}
		return id, err

	case changeUpdate:
		_, err := tx.ExecContext(ctx,
			"UPDATE points_of_interest SET name = $1, description = $2 WHERE id = $3 AND city_id = $4",
			change.poi.Name, change.poi.Description, change.poi.ID, change.poi.CityID,
		)
		return 0, err

	case changeDelete:
		_, err := tx.ExecContext(ctx,
			"DELETE FROM points_of_interest WHERE id = $1 AND city_id = $2",
			change.poi.ID, change.poi.CityID,
		)
		return 0, err
	}

	return 0, fmt.Errorf("unknown change kind %d", change.kind)
}
