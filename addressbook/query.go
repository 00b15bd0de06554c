package addressbook

import "github.com/vortex-fintech/go-addressbook/contact"

// Group is one city or state with the "first last" names of its contacts.
type Group struct {
	Key   string
	Names []string
}

// Tally is one city or state with the number of its contacts.
type Tally struct {
	Key   string
	Count int
}

// Groups is ordered by the first time each key was seen.
type Groups []Group

func (g Groups) AsMap() map[string][]string {
	out := make(map[string][]string, len(g))
	for _, grp := range g {
		out[grp.Key] = grp.Names
	}
	return out
}

// Tallies is ordered by the first time each key was seen.
type Tallies []Tally

func (t Tallies) AsMap() map[string]int {
	out := make(map[string]int, len(t))
	for _, tl := range t {
		out[tl.Key] = tl.Count
	}
	return out
}

func byCity(c contact.Contact) string  { return c.City() }
func byState(c contact.Contact) string { return c.State() }

// SearchByCity returns contacts whose city equals city exactly, in current order.
func (b *AddressBook) SearchByCity(city string) []contact.Contact {
	return b.search(byCity, city)
}

// SearchByState returns contacts whose state equals state exactly, in current order.
func (b *AddressBook) SearchByState(state string) []contact.Contact {
	return b.search(byState, state)
}

func (b *AddressBook) search(key func(contact.Contact) string, want string) []contact.Contact {
	out := make([]contact.Contact, 0)
	for _, c := range b.contacts {
		if key(c) == want {
			out = append(out, c)
		}
	}
	return out
}

func (b *AddressBook) GroupByCity() Groups  { return b.group(byCity) }
func (b *AddressBook) GroupByState() Groups { return b.group(byState) }

func (b *AddressBook) CountByCity() Tallies  { return tally(b.group(byCity)) }
func (b *AddressBook) CountByState() Tallies { return tally(b.group(byState)) }

func (b *AddressBook) group(key func(contact.Contact) string) Groups {
	out := make(Groups, 0)
	idx := make(map[string]int)

	for _, c := range b.contacts {
		k := key(c)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Group{Key: k})
		}
		out[i].Names = append(out[i].Names, c.FullName())
	}
	return out
}

func tally(groups Groups) Tallies {
	out := make(Tallies, 0, len(groups))
	for _, g := range groups {
		out = append(out, Tally{Key: g.Key, Count: len(g.Names)})
	}
	return out
}
