package addressbook

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/vortex-fintech/go-addressbook/contact"
	"github.com/vortex-fintech/go-addressbook/domain"
)

// Sort keys reported in addressbook.sorted events.
const (
	SortKeyName  = "name"
	SortKeyCity  = "city"
	SortKeyState = "state"
	SortKeyZip   = "zip"
)

// SortByName orders contacts by "first last", byte-wise. Sorts are stable and
// permanent.
func (b *AddressBook) SortByName() {
	b.sort(SortKeyName, func(x, y contact.Contact) int {
		return strings.Compare(x.FullName(), y.FullName())
	})
}

func (b *AddressBook) SortByCity() {
	b.sort(SortKeyCity, func(x, y contact.Contact) int {
		return strings.Compare(x.City(), y.City())
	})
}

func (b *AddressBook) SortByState() {
	b.sort(SortKeyState, func(x, y contact.Contact) int {
		return strings.Compare(x.State(), y.State())
	})
}

// SortByZip orders contacts by the numeric value of their postal code.
func (b *AddressBook) SortByZip() {
	b.sort(SortKeyZip, func(x, y contact.Contact) int {
		return cmp.Compare(zipValue(x), zipValue(y))
	})
}

func (b *AddressBook) sort(key string, less func(x, y contact.Contact) int) {
	slices.SortStableFunc(b.contacts, less)
	b.log.Debugw("contacts sorted", "by", key, "count", len(b.contacts))
	b.metrics.Observe("sort_"+key, "sorted")
	b.record(domain.EventBookSorted, key)
}

// zipValue parses a validated postal code; contacts always hold six digits.
func zipValue(c contact.Contact) int {
	n, err := strconv.Atoi(c.Zip())
	if err != nil {
		return 0
	}
	return n
}
