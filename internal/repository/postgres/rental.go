package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (code, customer_id, vehicle_id, status, start_date, end_date, tier, daily_rate_cents, total_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.Code, rt.CustomerID, rt.VehicleID, rt.Status, rt.StartDate, rt.EndDate, rt.Tier, rt.DailyRateCents, rt.TotalPriceCents, rt.CreatedOn, rt.UpdatedOn).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, code, customer_id, vehicle_id, status, start_date, end_date, tier, daily_rate_cents, total_price_cents, created_on, updated_on FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.Code, &rt.CustomerID, &rt.VehicleID, &rt.Status, &rt.StartDate, &rt.EndDate, &rt.Tier, &rt.DailyRateCents, &rt.TotalPriceCents, &rt.CreatedOn, &rt.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("rental", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, start_date=$2, end_date=$3, tier=$4, daily_rate_cents=$5, total_price_cents=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.StartDate, rt.EndDate, rt.Tier, rt.DailyRateCents, rt.TotalPriceCents, rt.UpdatedOn, rt.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("rental", id)
	}
	return nil
}

func (r *rentalRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, code, customer_id, vehicle_id, status, start_date, end_date, tier, daily_rate_cents, total_price_cents, created_on, updated_on FROM rentals WHERE 1=1`

	var args []interface{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.CustomerID, &rt.VehicleID, &rt.Status, &rt.StartDate, &rt.EndDate, &rt.Tier, &rt.DailyRateCents, &rt.TotalPriceCents, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]domain.Rental, error) {
	query := `SELECT id, code, customer_id, vehicle_id, status, start_date, end_date, tier, daily_rate_cents, total_price_cents, created_on, updated_on
	          FROM rentals WHERE status = $1 AND end_date < $2 ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, domain.RentalStatusActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.CustomerID, &rt.VehicleID, &rt.Status, &rt.StartDate, &rt.EndDate, &rt.Tier, &rt.DailyRateCents, &rt.TotalPriceCents, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, nil
}
