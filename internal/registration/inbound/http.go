package inbound

import (
	"context"

	"github.com/putrawicaksana/travelreg/internal/pkg/router"
	"github.com/putrawicaksana/travelreg/internal/registration/entity"
	"github.com/putrawicaksana/travelreg/internal/registration/usecase"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (*usecase.CreateOutput, error)
	List(ctx context.Context) ([]entity.Registration, error)
	Detail(ctx context.Context, in usecase.DetailInput) (*entity.Registration, error)
	Delete(ctx context.Context, in usecase.DeleteInput) error
	Home(ctx context.Context) (*usecase.HomeOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/home", end.Home)

	r.POST("/api/register", end.Create)
	r.GET("/api/users", end.List)
	r.GET("/api/users/:id", end.Detail)
	r.DELETE("/api/users/:id", end.Delete)
}
