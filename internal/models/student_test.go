package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRefAcceptsStringAndNumber(t *testing.T) {
	var req ProfileUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id": 42, "name": "Asha"}`), &req))
	assert.Equal(t, StudentRef("42"), req.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": " 43 "}`), &req))
	assert.Equal(t, StudentRef("43"), req.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id": null}`), &req))
	assert.Equal(t, StudentRef(""), req.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &req))
}

func TestProfileUpdateRequestFieldOrder(t *testing.T) {
	req := ProfileUpdateRequest{EmailID: "a@b.c", Name: "Asha", Password: "pw", Address: ""}
	fields := req.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"name", "password", "EmailId"}, []string{fields[0].Column, fields[1].Column, fields[2].Column})
	assert.Empty(t, ProfileUpdateRequest{ID: "1"}.Fields())
}
