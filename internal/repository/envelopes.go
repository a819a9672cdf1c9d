package repository

import (
	"context"
	"database/sql"
	"errors"

	"budgetd/internal/model"
	"github.com/jmoiron/sqlx"
)

// EnvelopesRepository is the storage gateway for the envelopes table.
// GetForUpdate and AdjustAmount run inside a caller-owned transaction so the
// transfer service can lock both rows before touching balances.
type EnvelopesRepository interface {
	List(ctx context.Context) ([]model.Envelope, error)
	GetByID(ctx context.Context, id int64) (*model.Envelope, error)
	GetByName(ctx context.Context, name string) (*model.Envelope, error)
	Insert(ctx context.Context, name string, amount float64) (int64, error)
	InsertWithID(ctx context.Context, e model.Envelope) error
	Update(ctx context.Context, id int64, name string, amount float64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)

	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.Envelope, error)
	AdjustAmount(ctx context.Context, tx *sqlx.Tx, id int64, delta float64) (int64, error)
}

type EnvelopesRepositoryImpl struct {
	db *sqlx.DB
}

func NewEnvelopesRepository(db *sqlx.DB) *EnvelopesRepositoryImpl {
	return &EnvelopesRepositoryImpl{db: db}
}

var _ EnvelopesRepository = (*EnvelopesRepositoryImpl)(nil)

func (r *EnvelopesRepositoryImpl) List(ctx context.Context) ([]model.Envelope, error) {
	var out []model.Envelope
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, name, amount
		  FROM envelopes
		 ORDER BY id
	`)
	return out, err
}

func (r *EnvelopesRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.Envelope, error) {
	var e model.Envelope
	err := r.db.GetContext(ctx, &e, `
		SELECT id, name, amount
		  FROM envelopes
		 WHERE id = ? LIMIT 1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnvelopesRepositoryImpl) GetByName(ctx context.Context, name string) (*model.Envelope, error) {
	var e model.Envelope
	err := r.db.GetContext(ctx, &e, `
		SELECT id, name, amount
		  FROM envelopes
		 WHERE name = ? LIMIT 1
	`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Insert creates a row with a database-assigned id and returns it.
func (r *EnvelopesRepositoryImpl) Insert(ctx context.Context, name string, amount float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO envelopes (name, amount) VALUES (?, ?)
	`, name, amount)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// InsertWithID creates a row under a client-supplied id.
func (r *EnvelopesRepositoryImpl) InsertWithID(ctx context.Context, e model.Envelope) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO envelopes (id, name, amount) VALUES (?, ?, ?)
	`, e.ID, e.Name, e.Amount)
	return err
}

func (r *EnvelopesRepositoryImpl) Update(ctx context.Context, id int64, name string, amount float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE envelopes SET name = ?, amount = ? WHERE id = ?
	`, name, amount, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *EnvelopesRepositoryImpl) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM envelopes WHERE id = ?
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetForUpdate loads a row with a row lock held until the tx ends.
func (r *EnvelopesRepositoryImpl) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (*model.Envelope, error) {
	var e model.Envelope
	err := tx.QueryRowxContext(ctx, `
		SELECT id, name, amount
		  FROM envelopes
		 WHERE id = ?
		 FOR UPDATE
	`, id).StructScan(&e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// AdjustAmount applies a signed delta to one envelope's balance.
func (r *EnvelopesRepositoryImpl) AdjustAmount(ctx context.Context, tx *sqlx.Tx, id int64, delta float64) (int64, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE envelopes SET amount = amount + ? WHERE id = ?
	`, delta, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
