package api

import (
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
)

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groupID := q.Get("groupId")
	profileID := ""
	if q.Get("viewType") != "group" {
		profileID = q.Get("profileId")
	}

	assets, err := s.assets.List(r.Context(), groupID, profileID)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]assetJSON, len(assets))
	for i, a := range assets {
		out[i] = toAssetJSON(a)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var in assetJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	asset := assetFromJSON(in)
	if err := s.assets.Create(r.Context(), asset); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssetJSON(*asset))
}

func (s *Server) handleUpdateAsset(w http.ResponseWriter, r *http.Request) {
	var in assetJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	asset := assetFromJSON(in)
	asset.ID = r.PathValue("id")
	if err := s.assets.Update(r.Context(), asset); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetJSON(*asset))
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.assets.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "asset deleted"})
}

func assetFromJSON(in assetJSON) *models.Asset {
	return &models.Asset{
		ProfileID:        in.ProfileID,
		GroupID:          in.GroupID,
		Name:             in.Name,
		Type:             models.AssetType(in.Type),
		InitialValue:     in.InitialValue,
		PurchaseDate:     in.PurchaseDate,
		DepreciationRate: in.DepreciationRate,
	}
}
