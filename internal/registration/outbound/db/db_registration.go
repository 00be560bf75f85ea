package db

import (
	"context"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

const registrationColumns = `
	id, account_id, name, email, phone, age, gender, city, state, group_id,
	joined_date, emergency_contact_name, emergency_contact_phone,
	id_proof_type, id_proof_number, notes, created_at`

func (s *DB) CreateRegistration(ctx context.Context, in entity.Registration) (err error) {
	ctx, span := s.startSpan(ctx, "CreateRegistration")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO registrations (
			id, account_id, name, email, phone, age, gender, city, state, group_id,
			joined_date, emergency_contact_name, emergency_contact_phone,
			id_proof_type, id_proof_number, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, in.ID, in.AccountID, in.Name, in.Email, in.Phone, in.Age, in.Gender,
		in.City, in.State, in.GroupID, in.JoinedDate, in.EmergencyContactName,
		in.EmergencyContactPhone, in.IDProofType, in.IDProofNumber, in.Notes, in.CreatedAt)

	err = s.mapError(err)
	return err
}

func (s *DB) ListRegistrations(ctx context.Context, accountID int64) (out []entity.Registration, err error) {
	ctx, span := s.startSpan(ctx, "ListRegistrations")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE account_id = $1
		ORDER BY created_at DESC
	`, accountID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var reg entity.Registration
		if err = rows.Scan(
			&reg.ID, &reg.AccountID, &reg.Name, &reg.Email, &reg.Phone, &reg.Age,
			&reg.Gender, &reg.City, &reg.State, &reg.GroupID, &reg.JoinedDate,
			&reg.EmergencyContactName, &reg.EmergencyContactPhone,
			&reg.IDProofType, &reg.IDProofNumber, &reg.Notes, &reg.CreatedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		out = append(out, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return out, nil
}

func (s *DB) GetRegistration(ctx context.Context, accountID, id int64) (out *entity.Registration, err error) {
	ctx, span := s.startSpan(ctx, "GetRegistration")
	defer func() { s.endSpan(span, err) }()

	var reg entity.Registration
	err = s.conn.QueryRow(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE account_id = $1 AND id = $2
	`, accountID, id).Scan(
		&reg.ID, &reg.AccountID, &reg.Name, &reg.Email, &reg.Phone, &reg.Age,
		&reg.Gender, &reg.City, &reg.State, &reg.GroupID, &reg.JoinedDate,
		&reg.EmergencyContactName, &reg.EmergencyContactPhone,
		&reg.IDProofType, &reg.IDProofNumber, &reg.Notes, &reg.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &reg, nil
}

func (s *DB) DeleteRegistration(ctx context.Context, accountID, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteRegistration")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, `
		DELETE FROM registrations WHERE account_id = $1 AND id = $2
	`, accountID, id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	return nil
}

func (s *DB) CountRegistrations(ctx context.Context, accountID int64) (count int64, err error) {
	ctx, span := s.startSpan(ctx, "CountRegistrations")
	defer func() { s.endSpan(span, err) }()

	err = s.conn.QueryRow(ctx, `
		SELECT COUNT(*) FROM registrations WHERE account_id = $1
	`, accountID).Scan(&count)
	if err != nil {
		return 0, s.mapError(err)
	}

	return count, nil
}
