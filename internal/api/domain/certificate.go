package domain

import "time"

// Certificate is the on-chain credential record minted for a passing
// submission. TokenID and TxHash identify the minted asset; MetadataURI
// points at the credential metadata document.
type Certificate struct {
	ID           string
	StudentID    string
	SubmissionID string
	MetadataURI  string
	TokenID      int64
	TxHash       string
	IssuedAt     time.Time
}
