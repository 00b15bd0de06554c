package contact_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-addressbook/contact"
	"github.com/vortex-fintech/go-addressbook/errors"
)

func validFields() contact.Fields {
	return contact.Fields{
		FirstName: "Deepanshu",
		LastName:  "Malviya",
		Address:   "456 Colony",
		City:      "Bhopal",
		State:     "MP",
		Zip:       "462023",
		Phone:     "9876543210",
		Email:     "deepanshu@example.com",
	}
}

func ptr(s string) *string { return &s }

func TestNew_StoresValuesVerbatim(t *testing.T) {
	f := validFields()
	c, err := contact.New(f)
	require.NoError(t, err)

	assert.Equal(t, f, c.Fields())
	assert.Equal(t, "Deepanshu", c.FirstName())
	assert.Equal(t, "Malviya", c.LastName())
	assert.Equal(t, "456 Colony", c.Address())
	assert.Equal(t, "Bhopal", c.City())
	assert.Equal(t, "MP", c.State())
	assert.Equal(t, "462023", c.Zip())
	assert.Equal(t, "9876543210", c.Phone())
	assert.Equal(t, "deepanshu@example.com", c.Email())
	assert.Equal(t, "Deepanshu Malviya", c.FullName())
	assert.False(t, c.IsZero())
}

func TestNew_FieldSpecificFailures(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*contact.Fields)
		wantField string
		wantCode  string
		wantMsg   string
	}{
		{
			name:      "first name lowercase",
			mutate:    func(f *contact.Fields) { f.FirstName = "deepanshu" },
			wantField: contact.FieldFirstName,
			wantCode:  "invalid_name",
			wantMsg:   "firstName: must start with capital letter and have ≥3 characters",
		},
		{
			name:      "last name too short",
			mutate:    func(f *contact.Fields) { f.LastName = "Ma" },
			wantField: contact.FieldLastName,
			wantCode:  "invalid_name",
		},
		{
			name:      "address too short",
			mutate:    func(f *contact.Fields) { f.Address = "45" },
			wantField: contact.FieldAddress,
			wantCode:  "too_short",
			wantMsg:   "address: must have at least 4 characters",
		},
		{
			name:      "city too short",
			mutate:    func(f *contact.Fields) { f.City = "Bho" },
			wantField: contact.FieldCity,
			wantCode:  "too_short",
		},
		{
			name:      "state empty",
			mutate:    func(f *contact.Fields) { f.State = "" },
			wantField: contact.FieldState,
			wantCode:  "too_short",
			wantMsg:   "state: must have at least 2 characters",
		},
		{
			name:      "zip five digits",
			mutate:    func(f *contact.Fields) { f.Zip = "12345" },
			wantField: contact.FieldZip,
			wantCode:  "invalid_zip",
			wantMsg:   "zip: must be 6-digit, non-zero leading digit",
		},
		{
			name:      "phone leading digit below six",
			mutate:    func(f *contact.Fields) { f.Phone = "1234567890" },
			wantField: contact.FieldPhone,
			wantCode:  "invalid_phone",
			wantMsg:   "phone: must be valid 10-digit number",
		},
		{
			name:      "bad email",
			mutate:    func(f *contact.Fields) { f.Email = "bad-email" },
			wantField: contact.FieldEmail,
			wantCode:  "invalid_email",
			wantMsg:   "email: invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)

			c, err := contact.New(f)
			require.Error(t, err)
			assert.True(t, c.IsZero())

			ie, ok := errors.AsInvariant(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, ie.Field)
			assert.Equal(t, tt.wantCode, ie.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestNew_StopsAtFirstViolation(t *testing.T) {
	f := validFields()
	f.City = "X"
	f.Zip = "1"
	f.Email = "nope"

	_, err := contact.New(f)
	ie, ok := errors.AsInvariant(err)
	require.True(t, ok)
	assert.Equal(t, contact.FieldCity, ie.Field)
}

func TestFieldsCheck_ReportsEveryViolation(t *testing.T) {
	require.NoError(t, validFields().Check())

	f := validFields()
	f.Zip = "12345"
	f.Phone = "1234567890"
	f.Email = "bad-email"

	er := errors.ToErrorResponse(f.Check())
	require.Len(t, er.Violations, 3)
	assert.Equal(t, []string{"zip", "phone", "email"}, []string{
		er.Violations[0].Field, er.Violations[1].Field, er.Violations[2].Field,
	})
}

func TestApply(t *testing.T) {
	c := contact.MustNew(validFields())

	changed, err := c.Apply(contact.Patch{City: ptr("Indore"), Zip: ptr("452001")})
	require.NoError(t, err)
	assert.Equal(t, []string{contact.FieldCity, contact.FieldZip}, changed)
	assert.Equal(t, "Indore", c.City())
	assert.Equal(t, "452001", c.Zip())
}

func TestApply_EmptyPatchIsNoop(t *testing.T) {
	c := contact.MustNew(validFields())
	before := c

	assert.True(t, contact.Patch{}.IsEmpty())
	changed, err := c.Apply(contact.Patch{})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.Equal(t, before, c)
}

func TestApply_PartialFailureKeepsEarlierFields(t *testing.T) {
	c := contact.MustNew(validFields())

	changed, err := c.Apply(contact.Patch{
		City:  ptr("Indore"),
		Phone: ptr("1234567890"),
		Email: ptr("new@example.com"),
	})
	require.Error(t, err)
	assert.Equal(t, []string{contact.FieldCity}, changed)
	assert.Equal(t, "Indore", c.City())
	assert.Equal(t, "9876543210", c.Phone())
	assert.Equal(t, "deepanshu@example.com", c.Email())
}

func TestMustNew_Panics(t *testing.T) {
	f := validFields()
	f.Zip = "12345"
	assert.Panics(t, func() { contact.MustNew(f) })
}

func TestStringAndJSON(t *testing.T) {
	c := contact.MustNew(validFields())

	assert.Equal(t,
		"Name: Deepanshu Malviya, Address: 456 Colony, Bhopal, MP - 462023, Phone: 9876543210, Email: deepanshu@example.com",
		c.String(),
	)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"firstName":"Deepanshu","lastName":"Malviya","address":"456 Colony","city":"Bhopal",
		"state":"MP","zip":"462023","phone":"9876543210","email":"deepanshu@example.com"
	}`, string(b))
}
