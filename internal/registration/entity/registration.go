package entity

import "time"

// Registration is one travel-registration record, owned by the account that
// created it. Email is unique per owning account.
type Registration struct {
	ID                    int64
	AccountID             int64
	Name                  string
	Email                 string
	Phone                 string
	Age                   *int32
	Gender                string
	City                  string
	State                 string
	GroupID               int32
	JoinedDate            *time.Time
	EmergencyContactName  string
	EmergencyContactPhone string
	IDProofType           string
	IDProofNumber         string
	Notes                 string
	CreatedAt             time.Time
}
