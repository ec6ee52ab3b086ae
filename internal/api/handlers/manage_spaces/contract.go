package manage_spaces

import (
	"context"

	"github.com/parkirc/parking-service/internal/service/facility/models"
)

type FacilityService interface {
	CreateSpace(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error)
	GetSpace(ctx context.Context, id int64) (*models.SpaceResponse, error)
	ListSpaces(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error)
	UpdateSpace(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error)
	DeleteSpace(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
