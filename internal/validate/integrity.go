package validate

// Reference is a resolved cross-entity reference to check for ownership
// consistency: the referenced object's owner must be the entity's owner.
type Reference struct {
	Field string
	// OwnerID is the owner of the referenced object.
	OwnerID uint
	// WantOwnerID is the owner of the referencing entity.
	WantOwnerID uint
	// Resolved is false when the reference is absent or did not resolve;
	// absence is the field validator's concern, so it is skipped here.
	Resolved bool
}

// Ownership records a field-keyed integrity error for every resolved
// reference whose owner differs from the entity's owner.
func Ownership(refs []Reference) Errors {
	errs := Errors{}

	for _, r := range refs {
		if !r.Resolved || r.WantOwnerID == 0 {
			continue
		}
		if r.OwnerID != r.WantOwnerID {
			errs.Add(r.Field, IntegrityMsg(r.Field))
		}
	}

	return errs
}
