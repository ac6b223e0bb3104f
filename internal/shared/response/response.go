package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire shapes below are part of the public contract and predate this
// service; clients pattern-match on them, so they are kept verbatim.

// MutationResponse is the body for create-style endpoints.
type MutationResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListResponse is the body for paginated reads. TotalCount reflects the
// filtered set before pagination, not the page size.
type ListResponse struct {
	Status     int         `json:"status"`
	Data       interface{} `json:"data"`
	TotalCount int64       `json:"totalCount"`
	Message    string      `json:"message"`
}

// DataResponse wraps a single record in a list-shaped payload for interface
// consistency with the list endpoint.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// StatusMessage is the body for update/delete outcomes.
type StatusMessage struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorBody carries a single human-readable error message.
type ErrorBody struct {
	Error string `json:"error"`
}

func Mutation(c *gin.Context, status int, message string) {
	c.JSON(status, MutationResponse{Status: status, Success: true, Message: message})
}

func List(c *gin.Context, data interface{}, totalCount int64, message string) {
	c.JSON(http.StatusOK, ListResponse{
		Status:     http.StatusOK,
		Data:       data,
		TotalCount: totalCount,
		Message:    message,
	})
}

func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, StatusMessage{Status: status, Message: message})
}

// MessageOnly is used by the empty-list path, which historically omitted the
// status field.
func MessageOnly(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// InternalServerError never leaks driver detail to the caller; the cause is
// logged server-side only.
func InternalServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal Server Error")
}
