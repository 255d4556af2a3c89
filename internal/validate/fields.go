package validate

import (
	"strings"
	"time"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindDate
	KindRef
)

// Field describes one entity field for validation and normalization.
// Each entity declares an explicit table of these instead of inspecting
// model fields at runtime.
type Field struct {
	Name      string
	Kind      Kind
	Required  bool
	MaxLength int
	MinLength int
	// Defaulted fields coalesce to a declared default when absent and are
	// therefore exempt from the required check (Payment incoming/outgoing).
	Defaulted bool
	// Email turns on a minimal address shape check.
	Email bool
}

// Fields checks every field of spec against values and returns the full
// error map. It never stops at the first failure: the client is expected
// to see all field errors of a request at once.
//
// Missing means: key absent, nil, zero reference id, zero date, or a
// string that is empty after trimming.
func Fields(spec []Field, values map[string]any) Errors {
	errs := Errors{}

	for _, f := range spec {
		v, ok := values[f.Name]
		if !ok || v == nil {
			if f.Required && !f.Defaulted {
				errs.Add(f.Name, RequiredMsg(f.Name))
			}
			continue
		}

		switch f.Kind {
		case KindString:
			s, _ := v.(string)
			s = strings.TrimSpace(s)
			if s == "" {
				if f.Required {
					errs.Add(f.Name, RequiredMsg(f.Name))
				}
				continue
			}
			if f.MinLength > 0 && len(s) < f.MinLength {
				errs.Add(f.Name, TooShortMsg(f.Name, f.MinLength))
			}
			if f.MaxLength > 0 && len(s) > f.MaxLength {
				errs.Add(f.Name, TooLongMsg(f.Name, f.MaxLength))
			}
			if f.Email && !strings.Contains(s, "@") {
				errs.Add(f.Name, NotValidMsg(f.Name))
			}
		case KindRef:
			id, _ := v.(uint)
			if id == 0 && f.Required {
				errs.Add(f.Name, RequiredMsg(f.Name))
			}
		case KindDate:
			d, _ := v.(time.Time)
			if d.IsZero() && f.Required {
				errs.Add(f.Name, RequiredMsg(f.Name))
			}
		case KindNumber, KindBool:
			// Defaulted numbers and booleans carry a usable zero value.
		}
	}

	return errs
}
