package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// report validation failures under the json field name, not the Go one
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindError translates a ShouldBindJSON failure into the response the client
// sees: 422 with a field-keyed message map for schema violations, 400 for a
// missing or malformed body.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"messages": validationMessages(verrs)})
		return
	}
	if errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "no input data provided"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}

func validationMessages(verrs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		messages[fe.Field()] = fieldMessage(fe)
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing data for required field"
	case "min":
		return fmt.Sprintf("shorter than minimum length %s", fe.Param())
	case "max":
		return fmt.Sprintf("longer than maximum length %s", fe.Param())
	default:
		return "invalid value"
	}
}

// baseURL derives the absolute prefix for self links from the request.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
