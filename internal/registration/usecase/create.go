package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/goerror"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
)

// joinedDateLayout is the only accepted input format for joined_date.
const joinedDateLayout = "2006-01-02"

type CreateInput struct {
	Name                  string `validate:"required,max=100"`
	Email                 string `validate:"required,email"`
	Phone                 string `validate:"max=20"`
	Age                   *int32 `validate:"omitempty,gte=0,lte=150"`
	Gender                string `validate:"max=20"`
	City                  string `validate:"max=100"`
	State                 string `validate:"max=100"`
	GroupID               int32  `validate:"required"`
	JoinedDate            string
	EmergencyContactName  string `validate:"max=100"`
	EmergencyContactPhone string `validate:"max=20"`
	IDProofType           string `validate:"max=50"`
	IDProofNumber         string `validate:"max=100"`
	Notes                 string
}

type CreateOutput struct {
	ID int64
}

// Create stores a new registration record for the session account.
func (s *Usecase) Create(ctx context.Context, in CreateInput) (*CreateOutput, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	auth, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.valid.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var joined *time.Time
	if in.JoinedDate != "" {
		t, err := time.Parse(joinedDateLayout, in.JoinedDate)
		if err != nil {
			return nil, goerror.NewBusiness("Invalid date format. Use YYYY-MM-DD", goerror.CodeInvalidFormat)
		}
		joined = &t
	}

	reg := entity.Registration{
		ID:                    s.uid.Generate(),
		AccountID:             auth.AccountID,
		Name:                  strings.TrimSpace(in.Name),
		Email:                 in.Email,
		Phone:                 in.Phone,
		Age:                   in.Age,
		Gender:                in.Gender,
		City:                  in.City,
		State:                 in.State,
		GroupID:               in.GroupID,
		JoinedDate:            joined,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		IDProofType:           in.IDProofType,
		IDProofNumber:         in.IDProofNumber,
		Notes:                 in.Notes,
		CreatedAt:             s.clock.Now(),
	}

	if err := s.repoDB.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeDuplicate)
		}
		slog.ErrorContext(ctx, "failed to repo create registration", "account_id", auth.AccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateOutput{ID: reg.ID}, nil
}
