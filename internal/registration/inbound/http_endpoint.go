package inbound

import (
	"github.com/samber/lo"

	"github.com/putrawicaksana/travelreg/internal/pkg/router"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
	"github.com/putrawicaksana/travelreg/internal/registration/usecase"
)

// HTTPEndpoint exposes HTTP handlers for travel-registration records.
type HTTPEndpoint struct {
	uc uc
}

// Create stores a new registration record for the session account.
func (h *HTTPEndpoint) Create(r *router.Request) (any, error) {
	var req CreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.Create(r.Context(), usecase.CreateInput{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Age:                   req.Age,
		Gender:                req.Gender,
		City:                  req.City,
		State:                 req.State,
		GroupID:               req.GroupID,
		JoinedDate:            req.JoinedDate,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		IDProofType:           req.IDProofType,
		IDProofNumber:         req.IDProofNumber,
		Notes:                 req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{UserID: out.ID}, nil
}

// List returns the session account's records.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	regs, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return ListResponse{
		Users: lo.Map(regs, func(reg entity.Registration, _ int) UserResponse {
			return newUserResponse(reg)
		}),
	}, nil
}

// Detail returns one record by id.
func (h *HTTPEndpoint) Detail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	reg, err := h.uc.Detail(r.Context(), usecase.DetailInput{ID: id})
	if err != nil {
		return nil, err
	}

	return newUserResponse(*reg), nil
}

// Delete removes one record by id.
func (h *HTTPEndpoint) Delete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(r.Context(), usecase.DeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteResponse{}, nil
}

// Home summarizes the session account.
func (h *HTTPEndpoint) Home(r *router.Request) (any, error) {
	out, err := h.uc.Home(r.Context())
	if err != nil {
		return nil, err
	}

	return HomeResponse{
		AccountID:     out.AccountID,
		Username:      out.Username,
		Email:         out.Email,
		Registrations: out.Registrations,
	}, nil
}
