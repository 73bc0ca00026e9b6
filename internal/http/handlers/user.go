package handlers

import (
	"net/http"

	"talenttrack/internal/app"
	"talenttrack/internal/domain/user"
	"talenttrack/internal/http/response"
)

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []user.User{}
	}
	response.JSON(w, http.StatusOK, items)
}
