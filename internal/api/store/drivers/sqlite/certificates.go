package sqlite

import (
	"context"

	"github.com/certmint/certmint/internal/api/domain"
)

type certificatesRepo struct {
	db DBTX
}

func (r *certificatesRepo) CreateCertificate(ctx context.Context, c domain.Certificate) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO certificates (id, student_id, submission_id, metadata_uri, token_id, tx_hash, issued_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID,
		c.StudentID,
		c.SubmissionID,
		c.MetadataURI,
		c.TokenID,
		c.TxHash,
		c.IssuedAt,
	)
	return mapConstraint(err)
}

func (r *certificatesRepo) GetCertificateByID(ctx context.Context, id string) (domain.Certificate, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, student_id, submission_id, metadata_uri, token_id, tx_hash, issued_at
		 FROM certificates WHERE id = ?`, id)

	var c domain.Certificate
	err := row.Scan(&c.ID, &c.StudentID, &c.SubmissionID, &c.MetadataURI, &c.TokenID, &c.TxHash, &c.IssuedAt)
	if err != nil {
		return domain.Certificate{}, mapNotFound(err)
	}
	return c, nil
}

func (r *certificatesRepo) ListCertificatesByStudent(ctx context.Context, studentID string) ([]domain.Certificate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student_id, submission_id, metadata_uri, token_id, tx_hash, issued_at
		 FROM certificates WHERE student_id = ? ORDER BY issued_at DESC, id DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificates []domain.Certificate
	for rows.Next() {
		var c domain.Certificate
		if err := rows.Scan(&c.ID, &c.StudentID, &c.SubmissionID, &c.MetadataURI, &c.TokenID, &c.TxHash, &c.IssuedAt); err != nil {
			return nil, err
		}
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}
