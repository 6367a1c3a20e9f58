package resumes

import "strings"

// Fields holds form values after normalization. Optional values are empty
// strings when absent; Skills is never nil.
type Fields struct {
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience string
	Education  string
}

// Normalize cleans raw form values into a record-ready shape. Each value has
// one leading and one trailing literal double quote removed (defensive
// against clients that JSON-stringify form values) and skills is split on
// commas. Individual skills are deliberately not trimmed and only one layer
// of quotes is stripped; downstream consumers rely on the existing behavior.
func Normalize(raw map[string]string) (Fields, error) {
	f := Fields{
		Name:       stripQuotes(raw["name"]),
		Email:      stripQuotes(raw["email"]),
		Phone:      stripQuotes(raw["phone"]),
		Experience: stripQuotes(raw["experience"]),
		Education:  stripQuotes(raw["education"]),
		Skills:     splitSkills(raw["skills"]),
	}

	var missing []string
	if f.Name == "" {
		missing = append(missing, "name")
	}
	if f.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return Fields{}, &ValidationError{Missing: missing}
	}

	return f, nil
}

func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func splitSkills(raw string) []string {
	s := stripQuotes(raw)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
