package validate

// Group is one composite uniqueness constraint. Fields name the values
// that must not repeat together; Key is the error key a violation is
// reported under (the culprit field for user-scoped pairs, NonFieldKey
// when the tuple mixes required and optional fields).
type Group struct {
	Fields  []string
	Key     string
	Message string
}

// ExistsFunc reports whether a record matching all given values exists,
// ignoring the record with excludeID (0 means exclude nothing).
type ExistsFunc func(match map[string]any, excludeID uint) (bool, error)

// Unique checks every group in declaration order and reports all violated
// groups together. Values must already be coalesced to their declared
// defaults so that absent optional fields compare equal.
func Unique(groups []Group, values map[string]any, excludeID uint, exists ExistsFunc) (Errors, error) {
	errs := Errors{}

	for _, g := range groups {
		match := make(map[string]any, len(g.Fields))
		for _, f := range g.Fields {
			match[f] = values[f]
		}

		found, err := exists(match, excludeID)
		if err != nil {
			return nil, err
		}
		if found {
			errs.Add(g.Key, g.Message)
		}
	}

	return errs, nil
}
