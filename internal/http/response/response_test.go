package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
)

func TestOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := OKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	msg := "something went wrong"
	resp := Error(msg)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, msg, resp.Error)
	assert.Nil(t, resp.Data)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"required,alphanum"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()
	ts := TestStruct{
		Username: "!!!",
		Password: "123",
	}

	err := v.Struct(ts)
	assert.Error(t, err)

	validationErrors := err.(validator.ValidationErrors)
	resp := ValidationError(validationErrors)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Username can contain only numbers and letters")
	assert.Contains(t, resp.Error, "field Password is too short")
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Username string `validate:"required"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{})
	assert.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Username is a required field")
}
