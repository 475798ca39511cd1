package handler

import (
	"asset-management-api/internal/model"
	"net/http"
)

// ListAssetsHandler returns every asset.
func (h *Handler) ListAssetsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	assets := h.Assets.ListAssets(ctx)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateListResponseData("assets", assets))
}

// CreateAssetHandler creates an asset. Missing fields default to empty.
func (h *Handler) CreateAssetHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var input model.AssetInput
	if err := h.ResponseHelper.DecodeJSONBody(r, &input); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	asset := h.Assets.CreateAsset(ctx, input)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateResourceData("asset", asset, "Asset created successfully"))
}

// UpdateAssetHandler applies a partial update to an asset.
func (h *Handler) UpdateAssetHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var input model.AssetInput
	if err := h.ResponseHelper.DecodeJSONBody(r, &input); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	asset, err := h.Assets.UpdateAsset(ctx, pathVar(r, "id"), input)
	if err != nil {
		h.ErrorHandler.HandleAppError(w, err)
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateResourceData("asset", asset, "Asset updated successfully"))
}
