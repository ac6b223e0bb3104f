package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"userbook-backend/internal/domains/user"
	"userbook-backend/internal/shared/response"
	"userbook-backend/pkg/logger"
)

// UserHandler orchestrates the user resource per HTTP verb. It is stateless;
// all per-request state lives in the gin context.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Demo handles GET /rest/demo/:id — a single row wrapped in a list-shaped
// payload for interface consistency with the list endpoint.
func (h *UserHandler) Demo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "ID not provided")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Data(c, []user.User{*u})
}

// Create handles POST /rest/user. The payload arrives already validated and
// normalized by the ValidateCreateUser stage.
func (h *UserHandler) Create(c *gin.Context) {
	payload, exists := c.Get(validatedPayloadKey)
	req, ok := payload.(user.CreateUserRequest)
	if !exists || !ok {
		response.InternalServerError(c)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// An existing identical name pair is a success with a different message,
	// not a conflict status.
	if result == user.AlreadyExists {
		response.Mutation(c, http.StatusOK, "User already exists")
		return
	}

	logger.Info("user created", map[string]interface{}{
		"firstName": req.GivenName,
		"lastName":  req.FamilyName,
	})
	response.Mutation(c, http.StatusCreated, "User created")
}

// List handles GET /rest/user with optional gender filter and offset
// pagination. An empty result page is reported as not found.
func (h *UserHandler) List(c *gin.Context) {
	var q user.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	users, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if len(users) == 0 {
		response.MessageOnly(c, http.StatusNotFound, "User List is Empty")
		return
	}

	response.List(c, users, total, "User found")
}

// Update handles PATCH /rest/user/:id with any subset of the three fields.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, user.ErrorMessage(user.ErrUserNotFound))
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, user.ErrorMessage(user.ErrNoFields))
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if result == user.AlreadyUpToDate {
		response.Message(c, http.StatusOK, "User details already up to date")
		return
	}

	response.Message(c, http.StatusOK, "User details updated")
}

// Delete handles DELETE /rest/user/:id. Deletion is permanent and cascades
// to authorship rows.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, user.ErrorMessage(user.ErrUserNotFound))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User deleted")
}

// handleError maps domain errors to responses. Storage errors keep their
// detail server-side.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	status := user.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("user request failed", err)
		response.InternalServerError(c)
		return
	}

	if errors.Is(err, user.ErrUserNotFound) || status == http.StatusBadRequest {
		response.Error(c, status, user.ErrorMessage(err))
		return
	}

	response.Message(c, status, user.ErrorMessage(err))
}
