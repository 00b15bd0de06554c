package addressbook

// AddOutcome is the result of adding a contact. A duplicate is not an error.
type AddOutcome int

const (
	Added AddOutcome = iota
	DuplicateRejected
	// Invalid is returned with the validation error from AddFields, and
	// alone when Add is given a zero Contact.
	Invalid
)

func (o AddOutcome) String() string {
	switch o {
	case Added:
		return "added"
	case DuplicateRejected:
		return "duplicate_rejected"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// EditOutcome is the result of editing a contact. EditInvalid always comes
// with the validation error; earlier fields of the patch may still have been applied.
type EditOutcome int

const (
	Edited EditOutcome = iota
	EditNotFound
	EditInvalid
)

func (o EditOutcome) String() string {
	switch o {
	case Edited:
		return "edited"
	case EditNotFound:
		return "not_found"
	case EditInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// DeleteOutcome is the result of deleting a contact.
type DeleteOutcome int

const (
	Deleted DeleteOutcome = iota
	DeleteNotFound
)

func (o DeleteOutcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case DeleteNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
