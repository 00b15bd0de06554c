package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-addressbook/addressbook"
	"github.com/vortex-fintech/go-addressbook/contact"
	"github.com/vortex-fintech/go-addressbook/domain"
	"github.com/vortex-fintech/go-addressbook/errors"
	"github.com/vortex-fintech/go-addressbook/metrics"
)

// DemoCmd walks through every address book operation on a small fixed data set.
type DemoCmd struct {
	JSON bool `help:"Print rejected operations as structured error responses."`
}

var demoContacts = []contact.Fields{
	{
		FirstName: "Deepanshu", LastName: "Malviya",
		Address: "456 Colony", City: "Bhopal", State: "Madhya Pradesh",
		Zip: "462023", Phone: "9876543210", Email: "deepanshu@example.com",
	},
	{
		FirstName: "Shubham", LastName: "Verma",
		Address: "12 Vijay Nagar", City: "Indore", State: "Madhya Pradesh",
		Zip: "452001", Phone: "9123456780", Email: "shubham@example.com",
	},
	{
		FirstName: "Ankit", LastName: "Sharma",
		Address: "78 Arera Hills", City: "Bhopal", State: "MP",
		Zip: "461331", Phone: "7000000001", Email: "ankit@example.com",
	},
}

func (d *DemoCmd) Run(app *App) error {
	var events domain.EventBuffer
	reg := prometheus.NewRegistry()
	book := addressbook.New(
		addressbook.WithLogger(app.Log),
		addressbook.WithEvents(&events),
		addressbook.WithMetrics(metrics.NewBookMetrics(reg)),
	)
	r := reporter{out: app.Out, json: d.JSON}

	for _, f := range demoContacts {
		r.add(book, f)
	}

	// повторное добавление и невалидная запись
	r.add(book, demoContacts[0])
	bad := demoContacts[1]
	bad.FirstName, bad.LastName, bad.Zip = "Rahul", "Gupta", "12345"
	r.add(book, bad)

	if c, ok := book.Find("shubham", "verma"); ok {
		fmt.Fprintf(app.Out, "Found: %s\n", c)
	}

	city, zip := "Indore", "452002"
	r.edit(book, "Deepanshu", "Malviya", contact.Patch{City: &city, Zip: &zip})
	r.edit(book, "Nobody", "Here", contact.Patch{City: &city})

	fmt.Fprintf(app.Out, "Total contacts: %d\n", book.Count())

	fmt.Fprintln(app.Out, "Contacts in Bhopal:")
	printContacts(app.Out, book.SearchByCity("Bhopal"))

	fmt.Fprintln(app.Out, "Grouped by city:")
	for _, g := range book.GroupByCity() {
		fmt.Fprintf(app.Out, "  %s: %v\n", g.Key, g.Names)
	}
	fmt.Fprintln(app.Out, "Count by state:")
	for _, t := range book.CountByState() {
		fmt.Fprintf(app.Out, "  %s: %d\n", t.Key, t.Count)
	}

	book.SortByZip()
	fmt.Fprintln(app.Out, "Sorted by zip:")
	printContacts(app.Out, book.Contacts())

	r.delete(book, "Shubham", "Verma")
	r.delete(book, "Shubham", "Verma")

	n := events.Len()
	fmt.Fprintf(app.Out, "Recorded %d change events\n", n)
	for _, e := range events.Pull() {
		ce, ok := e.(domain.ContactEvent)
		if !ok {
			continue
		}
		fmt.Fprintf(app.Out, "  %s %s\n", ce.EventName(), ce.Subject)
	}
	app.Log.Infow("demo finished", "contacts", book.Count(), "events", n)
	return nil
}

func printContacts(w io.Writer, cs []contact.Contact) {
	for _, c := range cs {
		fmt.Fprintf(w, "  %s\n", c)
	}
}

// reporter turns outcomes into the messages a user sees.
type reporter struct {
	out  io.Writer
	json bool
}

func (r reporter) add(b *addressbook.AddressBook, f contact.Fields) {
	out, err := b.AddFields(f)
	name := f.FirstName + " " + f.LastName
	switch {
	case err != nil:
		r.reject(fmt.Sprintf("Invalid contact %s: %v", name, err), errors.ToErrorResponse(err))
	case out == addressbook.DuplicateRejected:
		r.reject("Duplicate contact: "+name, errors.Conflict("contact", name))
	default:
		fmt.Fprintln(r.out, "Contact added successfully: "+name)
	}
}

func (r reporter) edit(b *addressbook.AddressBook, first, last string, p contact.Patch) {
	name := first + " " + last
	out, err := b.Edit(first, last, p)
	switch out {
	case addressbook.EditNotFound:
		r.reject("Contact not found: "+name, errors.NotFoundWith("contact", name))
	case addressbook.EditInvalid:
		r.reject(fmt.Sprintf("Contact %s partially updated: %v", name, err), errors.ToErrorResponse(err))
	default:
		fmt.Fprintln(r.out, "Contact updated: "+name)
	}
}

func (r reporter) delete(b *addressbook.AddressBook, first, last string) {
	name := first + " " + last
	if b.Delete(first, last) == addressbook.DeleteNotFound {
		r.reject("Contact not found: "+name, errors.NotFoundWith("contact", name))
		return
	}
	fmt.Fprintln(r.out, "Contact deleted: "+name)
}

func (r reporter) reject(msg string, resp errors.ErrorResponse) {
	if r.json {
		fmt.Fprintln(r.out, resp.WithDomain("addressbook").ToString())
		return
	}
	fmt.Fprintln(r.out, msg)
}
