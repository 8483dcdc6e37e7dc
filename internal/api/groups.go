package api

import (
	"net/http"

	"github.com/budgetguru/backend/internal/apperror"
	"github.com/budgetguru/backend/internal/models"
)

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]groupJSON, len(groups))
	for i, g := range groups {
		out[i] = toGroupJSON(g)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var in groupJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	group := groupFromJSON(in)
	if err := s.groups.Create(r.Context(), group); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupJSON(group))
}

func (s *Server) handleUpdateGroup(w http.ResponseWriter, r *http.Request) {
	var in groupJSON
	if err := decode(r, &in); err != nil {
		writeError(w, apperror.InvalidInput("invalid request body"))
		return
	}
	group := groupFromJSON(in)
	group.ID = r.PathValue("id")
	if err := s.groups.Update(r.Context(), group); err != nil {
		writeError(w, err)
		return
	}
	updated, err := s.groups.Get(r.Context(), group.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupJSON(updated))
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.groups.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "group deleted"})
}

func (s *Server) handleRemoveProfile(w http.ResponseWriter, r *http.Request) {
	err := s.groups.RemoveProfile(r.Context(), r.PathValue("id"), r.PathValue("profileId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile removed"})
}

func groupFromJSON(in groupJSON) *models.Group {
	profiles := make([]models.Profile, len(in.Profiles))
	for i, p := range in.Profiles {
		profiles[i] = models.Profile{ID: p.ID, Name: p.Name, Color: p.Color}
	}
	return &models.Group{
		Name:     in.Name,
		Category: models.GroupCategory(in.Category),
		Profiles: profiles,
	}
}
