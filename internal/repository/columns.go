package repository

// columnFor translates the field names used in Exists match maps to their
// database columns.
func columnFor(field string) string {
	switch field {
	case "user":
		return "user_id"
	case "genre":
		return "genre_id"
	case "fund":
		return "fund_id"
	default:
		return field
	}
}
