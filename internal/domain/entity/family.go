package entity

import "time"

// Family familia beneficiaria de distribuciones. ResponsibleCPF es único.
// SocialProgramID es obligatorio cuando HasSocialPrograms es true.
type Family struct {
	ID                 int64
	ResponsibleName    string
	ResponsibleCPF     string
	StreetAddress      string
	StreetNumber       string
	StreetComplement   *string
	StreetNeighborhood string
	City               string
	State              string
	ZipCode            string
	Phone              string
	Email              string
	MembersCount       int
	IncomeBracket      string
	Address            string
	Observation        *string
	HasSocialPrograms  bool
	SocialProgramID    *int64
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
}
