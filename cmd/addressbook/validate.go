package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/vortex-fintech/go-addressbook/contact"
	"github.com/vortex-fintech/go-addressbook/errors"
)

// ValidateCmd checks a single contact and prints it, or every violation found.
type ValidateCmd struct {
	FirstName string `help:"First name." required:""`
	LastName  string `help:"Last name." required:""`
	Address   string `help:"Street address." required:""`
	City      string `help:"City." required:""`
	State     string `help:"State or region." required:""`
	Zip       string `help:"Six-digit postal code." required:""`
	Phone     string `help:"Ten-digit phone number." required:""`
	Email     string `help:"E-mail address." required:""`
}

var errInvalidContact = stderrors.New("contact is invalid")

func (v *ValidateCmd) Run(app *App) error {
	f := contact.Fields{
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Address:   v.Address,
		City:      v.City,
		State:     v.State,
		Zip:       v.Zip,
		Phone:     v.Phone,
		Email:     v.Email,
	}

	if err := f.Check(); err != nil {
		app.Log.Infow("contact failed validation", "violations", len(errors.ToErrorResponse(err).Violations))
		fmt.Fprintln(app.Out, errors.ToErrorResponse(err).WithDomain("addressbook").ToString())
		return errInvalidContact
	}

	c, err := contact.New(f)
	if err != nil {
		return err
	}
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Out, string(b))
	return nil
}
