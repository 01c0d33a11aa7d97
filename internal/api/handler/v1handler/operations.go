package v1handler

import (
	"net/http"
	"petregistry/internal/validation"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	in, err := decode[validation.LoginInput](w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.registry.Login(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, LoginResultToV1(res))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	in, err := decode[validation.UserInput](w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, err := h.registry.RegisterUser(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainUserToV1(user))
}

func (h *Handler) CreatePetType(w http.ResponseWriter, r *http.Request) {
	in, err := decode[validation.PetTypeInput](w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	petType, err := h.registry.DefinePetType(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainPetTypeToV1(petType))
}

func (h *Handler) CreatePetProperty(w http.ResponseWriter, r *http.Request) {
	in, err := decode[validation.PetPropertyInput](w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	prop, err := h.registry.DefinePetProperty(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainPetPropertyToV1(prop))
}

func (h *Handler) AddPetToUser(w http.ResponseWriter, r *http.Request) {
	in, err := decode[validation.PetInput](w, r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pet, err := h.registry.AssignPetToUser(r.Context(), AuthContext(r.Context()), in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, DomainPetToV1(pet))
}
