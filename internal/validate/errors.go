package validate

// NonFieldKey collects violations that cannot be pinned on a single field,
// such as Payment's whole-tuple uniqueness.
const NonFieldKey = "non_field_errors"

// Errors maps a field name to the list of messages recorded against it.
// Validators only ever append; a later validator never overwrites what an
// earlier one wrote under the same key.
type Errors map[string][]string

func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Merge appends every message of other under its key.
func (e Errors) Merge(other Errors) {
	for field, msgs := range other {
		e[field] = append(e[field], msgs...)
	}
}

func (e Errors) Any() bool {
	return len(e) > 0
}
