package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/templui/tasklist/internal/model"
)

func ptr(s string) *string {
	return &s
}

func TestStruct_TaskFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  model.TaskFields
		wantErr bool
	}{
		{"all present", model.TaskFields{Title: ptr("a"), Description: ptr("b")}, false},
		{"absent keys are left to the model", model.TaskFields{}, false},
		{"empty description allowed", model.TaskFields{Title: ptr("a"), Description: ptr("")}, false},
		{"blank title", model.TaskFields{Title: ptr("   "), Description: ptr("b")}, true},
		{"title too long", model.TaskFields{Title: ptr(strings.Repeat("x", 256)), Description: ptr("b")}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Struct(tc.fields)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStruct_TaskAssignment(t *testing.T) {
	assert.NoError(t, Struct(model.TaskAssignment{TaskIDs: []int64{1, 2}}))
	assert.ErrorIs(t, Struct(model.TaskAssignment{}), ErrInvalid)
	assert.ErrorIs(t, Struct(model.TaskAssignment{TaskIDs: []int64{1, 0}}), ErrInvalid)
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Water the plants"))
	assert.Error(t, ValidateTitle(" \t"))
	assert.Error(t, ValidateTitle(strings.Repeat("a", 300)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("team@example.com"))
	assert.NoError(t, ValidateEmail("Tasks <tasks@example.com>"))
	assert.ErrorIs(t, ValidateEmail(""), ErrInvalid)
	assert.ErrorIs(t, ValidateEmail("not-an-address"), ErrInvalid)
	assert.ErrorIs(t, ValidateEmail(strings.Repeat("a", 250)+"@x.io"), ErrInvalid)
}
