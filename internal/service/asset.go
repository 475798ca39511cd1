package service

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"asset-management-api/pkg/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log"
)

// AssetIDPrefix prefixes generated asset ids.
const AssetIDPrefix = "AST-"

// AssetService implements create, list and partial update for assets
type AssetService struct {
	base
	repo repository.AssetRepository
}

// NewAssetService creates a new asset service
func NewAssetService(repo repository.AssetRepository, logger *log.Logger) *AssetService {
	return &AssetService{base: newBase(logger), repo: repo}
}

// FormatAssetID renders the id of the seq-th asset.
func FormatAssetID(seq int) string {
	return fmt.Sprintf("%s%03d", AssetIDPrefix, seq)
}

// ListAssets returns every asset in insertion order
func (s *AssetService) ListAssets(ctx context.Context) []model.Asset {
	return s.repo.ListAssets()
}

// CreateAsset creates an asset from input. Absent fields default to the
// empty string and coordinates are rendered from latitude and longitude.
func (s *AssetService) CreateAsset(ctx context.Context, input model.AssetInput) model.Asset {
	created := s.today()

	asset := s.repo.CreateAsset(func(seq int) model.Asset {
		return model.Asset{
			ID:           FormatAssetID(seq),
			BuildingName: input.BuildingName.Or(""),
			Region:       input.Region.Or(""),
			City:         input.City.Or(""),
			Condition:    input.Condition.Or(""),
			Status:       input.Status.Or(""),
			Area:         input.Area.Or(""),
			Coordinates:  model.FormatCoordinates(input.Latitude.Or(""), input.Longitude.Or("")),
			Created:      created,
		}
	})

	s.logger.Printf("Asset created: ID=%s, Building=%q, Region=%q", asset.ID, asset.BuildingName, asset.Region)
	return asset
}

// UpdateAsset overwrites the fields present in input and keeps the rest.
// Id, coordinates and created date never change.
func (s *AssetService) UpdateAsset(ctx context.Context, id string, input model.AssetInput) (*model.Asset, error) {
	asset, err := s.repo.UpdateAsset(id, func(a *model.Asset) {
		a.BuildingName = input.BuildingName.Or(a.BuildingName)
		a.Region = input.Region.Or(a.Region)
		a.City = input.City.Or(a.City)
		a.Condition = input.Condition.Or(a.Condition)
		a.Status = input.Status.Or(a.Status)
		a.Area = input.Area.Or(a.Area)
	})
	if err != nil {
		if stderrors.Is(err, repository.ErrAssetNotFound) {
			return nil, errors.NotFoundError("Asset")
		}
		return nil, errors.InternalError("failed to update asset", err)
	}

	s.logger.Printf("Asset updated: ID=%s", asset.ID)
	return asset, nil
}
