package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name   string `validate:"required,max=5"`
	Rating int    `validate:"min=1,max=5"`
	Status string `validate:"oneof=Planning Watching Completed"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(sampleInput{Name: "Ana", Rating: 3, Status: "Watching"})
	assert.Nil(t, errs)
}

func TestValidateStruct_Messages(t *testing.T) {
	errs := ValidateStruct(sampleInput{Name: "", Rating: 9, Status: "Dropped"})
	require.NotNil(t, errs)

	assert.Equal(t, "This field is required", errs["Name"])
	assert.Equal(t, "Maximum is 5", errs["Rating"])
	assert.Contains(t, errs["Status"], "Must be one of:")
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Name": "This field is required"})
	assert.Equal(t, "Name: This field is required", msg)
}
