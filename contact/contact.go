// Package contact holds the validated contact record and its field rules.
//
// A Contact can only be obtained through New, which runs every field rule in a
// fixed order and stops at the first violation. Stored values are kept verbatim.
package contact

import (
	"encoding/json"
	"fmt"

	"github.com/vortex-fintech/go-addressbook/validator"
)

// Fields is the raw input for a contact. Tags mirror the rules applied by New
// so Check can report every violation at once.
type Fields struct {
	FirstName string `json:"firstName" validate:"required,person_name"`
	LastName  string `json:"lastName" validate:"required,person_name"`
	Address   string `json:"address" validate:"required,min=4"`
	City      string `json:"city" validate:"required,min=4"`
	State     string `json:"state" validate:"required,min=2"`
	Zip       string `json:"zip" validate:"required,postal_code"`
	Phone     string `json:"phone" validate:"required,mobile_phone"`
	Email     string `json:"email" validate:"required,contact_email"`
}

// Check validates all fields and returns an errors.ErrorResponse listing every
// violation. New stops at the first one instead.
func (f Fields) Check() error {
	return validator.Check(f)
}

func (f Fields) values() [len(rules)]string {
	return [...]string{f.FirstName, f.LastName, f.Address, f.City, f.State, f.Zip, f.Phone, f.Email}
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Zip       *string `json:"zip,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func (p Patch) values() [len(rules)]*string {
	return [...]*string{p.FirstName, p.LastName, p.Address, p.City, p.State, p.Zip, p.Phone, p.Email}
}

// IsEmpty reports whether p carries no field.
func (p Patch) IsEmpty() bool {
	for _, v := range p.values() {
		if v != nil {
			return false
		}
	}
	return true
}

// Contact is a validated record. Values are only set through New and Apply,
// so every stored field has passed its rule. The zero Contact is not valid.
type Contact struct {
	firstName string
	lastName  string
	address   string
	city      string
	state     string
	zip       string
	phone     string
	email     string
}

// New validates f and builds a Contact. The first failing field is returned as
// an errors.InvariantError and no Contact is produced.
func New(f Fields) (Contact, error) {
	var c Contact
	slots := c.slots()
	for i, v := range f.values() {
		out, err := rules[i].check(v)
		if err != nil {
			return Contact{}, err
		}
		*slots[i] = out
	}
	return c, nil
}

// MustNew panics on validation error.
func MustNew(f Fields) Contact {
	c, err := New(f)
	if err != nil {
		panic(err)
	}
	return c
}

// Apply re-validates and stores every field set in p, in validation order.
// It returns the labels of the fields it replaced. On the first invalid field it
// stops and returns the error; fields replaced before it keep their new values.
func (c *Contact) Apply(p Patch) ([]string, error) {
	var changed []string
	slots := c.slots()
	for i, v := range p.values() {
		if v == nil {
			continue
		}
		out, err := rules[i].check(*v)
		if err != nil {
			return changed, err
		}
		*slots[i] = out
		changed = append(changed, rules[i].field)
	}
	return changed, nil
}

func (c *Contact) slots() [len(rules)]*string {
	return [...]*string{&c.firstName, &c.lastName, &c.address, &c.city, &c.state, &c.zip, &c.phone, &c.email}
}

func (c Contact) FirstName() string { return c.firstName }
func (c Contact) LastName() string  { return c.lastName }
func (c Contact) Address() string   { return c.address }
func (c Contact) City() string      { return c.city }
func (c Contact) State() string     { return c.state }
func (c Contact) Zip() string       { return c.zip }
func (c Contact) Phone() string     { return c.phone }
func (c Contact) Email() string     { return c.email }

// FullName returns "first last".
func (c Contact) FullName() string { return c.firstName + " " + c.lastName }

// IsZero reports whether c was never built by New.
func (c Contact) IsZero() bool { return c == Contact{} }

// Fields returns the stored values as input fields.
func (c Contact) Fields() Fields {
	return Fields{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Address:   c.address,
		City:      c.city,
		State:     c.state,
		Zip:       c.zip,
		Phone:     c.phone,
		Email:     c.email,
	}
}

func (c Contact) String() string {
	return fmt.Sprintf("Name: %s %s, Address: %s, %s, %s - %s, Phone: %s, Email: %s",
		c.firstName, c.lastName, c.address, c.city, c.state, c.zip, c.phone, c.email)
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Fields())
}
