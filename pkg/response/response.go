package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/viewtube/pkg/errs"
)

// Response 统一成功响应
type Response struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{StatusCode: http.StatusOK, Data: data, Message: message, Success: true})
}

func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{StatusCode: http.StatusCreated, Data: data, Message: message, Success: true})
}

// Error 将服务层错误映射为统一错误响应
func Error(c *gin.Context, err error) {
	e := errs.AsError(err)
	body := ErrorResponse{StatusCode: e.Status, Message: e.Message, Success: false, Errors: []string{}}
	if e.Err != nil && e.Code != errs.CodeStorage {
		body.Errors = append(body.Errors, e.Err.Error())
	}
	c.JSON(e.Status, body)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{StatusCode: http.StatusBadRequest, Message: msg, Success: false, Errors: []string{}})
}
