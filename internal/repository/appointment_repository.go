package repository

import (
	"context"
	"database/sql"

	"github.com/rafaelqm/barber-agenda/internal/model"
)

// AppointmentRepo provides CRUD operations for appointment records.
// Every query is scoped by the owning user: a row that exists but
// belongs to someone else behaves exactly like a missing row and
// surfaces as ErrNotFound.  Dates are stored in a DATE column and
// read back as UTC midnight (the connection uses loc=UTC).
type AppointmentRepo struct {
	db *sql.DB
}

// NewAppointmentRepo returns a new AppointmentRepo bound to the given database.
func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{db: db} }

const appointmentCols = "id,date,time,type,attendant,price_cents,payment,status,image,notes,user_id,created_at,updated_at"

func scanAppointment(row interface{ Scan(...any) error }) (model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(&a.ID, &a.Date, &a.Time, &a.Type, &a.Attendant, &a.PriceCents,
		&a.Payment, &a.Status, &a.Image, &a.Notes, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ListByUser returns all appointments owned by userID, newest service
// date first.  An owner with no records gets an empty slice, not nil.
func (r *AppointmentRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+appointmentCols+" FROM appointments WHERE user_id=? ORDER BY date DESC, time DESC, id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetByID fetches a single appointment by id for the given owner.
// Missing and not-owned rows both return ErrNotFound.
func (r *AppointmentRepo) GetByID(ctx context.Context, id, userID uint64) (model.Appointment, error) {
	a, err := scanAppointment(r.db.QueryRowContext(ctx,
		"SELECT "+appointmentCols+" FROM appointments WHERE id=? AND user_id=? LIMIT 1",
		id, userID))
	if err == sql.ErrNoRows {
		return model.Appointment{}, ErrNotFound
	}
	return a, err
}

// Create inserts a new appointment and reloads the stored row so the
// caller sees database-assigned fields (id, timestamps).
func (r *AppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO appointments (date, time, type, attendant, price_cents, payment, status, image, notes, user_id) VALUES (?,?,?,?,?,?,?,?,?,?)",
		a.Date, a.Time, a.Type, a.Attendant, a.PriceCents, a.Payment, a.Status, a.Image, a.Notes, a.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id), a.UserID)
	if err != nil {
		return err
	}
	*a = stored
	return nil
}

// Update replaces all mutable fields of the appointment identified by
// a.ID, provided it is owned by a.UserID, and reloads the stored row.
// Returns ErrNotFound when the row is missing or owned by another user.
func (r *AppointmentRepo) Update(ctx context.Context, a *model.Appointment) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE appointments SET date=?, time=?, type=?, attendant=?, price_cents=?, payment=?, status=?, image=?, notes=? WHERE id=? AND user_id=?",
		a.Date, a.Time, a.Type, a.Attendant, a.PriceCents, a.Payment, a.Status, a.Image, a.Notes, a.ID, a.UserID)
	if err != nil {
		return err
	}
	// MySQL reports zero affected rows both for a missing row and for an
	// update that changed nothing, so re-read instead of trusting the count.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := r.GetByID(ctx, a.ID, a.UserID); err != nil {
			return err
		}
	}
	stored, err := r.GetByID(ctx, a.ID, a.UserID)
	if err != nil {
		return err
	}
	*a = stored
	return nil
}

// Delete removes the appointment identified by id for the given owner.
// Returns ErrNotFound when the row is missing or owned by another user.
func (r *AppointmentRepo) Delete(ctx context.Context, id, userID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM appointments WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
