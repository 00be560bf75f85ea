package inbound

import (
	"net/http"
	"time"

	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

type CreateRequest struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Age                   *int32 `json:"age"`
	Gender                string `json:"gender"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	GroupID               int32  `json:"group_id"`
	JoinedDate            string `json:"joined_date"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	IDProofType           string `json:"id_proof_type"`
	IDProofNumber         string `json:"id_proof_number"`
	Notes                 string `json:"notes"`
}

type CreateResponse struct {
	UserID int64 `json:"user_id"`
}

func (CreateResponse) Message() string { return "Registration successful!" }

func (CreateResponse) StatusCode() int { return http.StatusCreated }

type UserResponse struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone,omitempty"`
	Age                   *int32 `json:"age,omitempty"`
	Gender                string `json:"gender,omitempty"`
	City                  string `json:"city,omitempty"`
	State                 string `json:"state,omitempty"`
	GroupID               int32  `json:"group_id"`
	JoinedDate            string `json:"joined_date,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	IDProofType           string `json:"id_proof_type,omitempty"`
	IDProofNumber         string `json:"id_proof_number,omitempty"`
	Notes                 string `json:"notes,omitempty"`
}

func newUserResponse(reg entity.Registration) UserResponse {
	var joined string
	if reg.JoinedDate != nil {
		joined = reg.JoinedDate.Format(time.DateOnly)
	}

	return UserResponse{
		ID:                    reg.ID,
		Name:                  reg.Name,
		Email:                 reg.Email,
		Phone:                 reg.Phone,
		Age:                   reg.Age,
		Gender:                reg.Gender,
		City:                  reg.City,
		State:                 reg.State,
		GroupID:               reg.GroupID,
		JoinedDate:            joined,
		EmergencyContactName:  reg.EmergencyContactName,
		EmergencyContactPhone: reg.EmergencyContactPhone,
		IDProofType:           reg.IDProofType,
		IDProofNumber:         reg.IDProofNumber,
		Notes:                 reg.Notes,
	}
}

type ListResponse struct {
	Users []UserResponse `json:"users"`
}

type DeleteResponse struct{}

func (DeleteResponse) Message() string { return "User deleted successfully" }

func (DeleteResponse) Data() any { return nil }

type HomeResponse struct {
	AccountID     int64  `json:"account_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Registrations int64  `json:"registrations"`
}
