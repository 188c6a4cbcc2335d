package catalog

import "fmt"

// ValidationError describes a single problem with a catalog entry.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks an Entry for structural validity.
func Validate(e *Entry) []ValidationError {
	var errs []ValidationError

	if e.Day < 1 || e.Day > 25 {
		errs = append(errs, ValidationError{"day", fmt.Sprintf("must be 1-25, got %d", e.Day)})
	}
	if e.Title == "" {
		errs = append(errs, ValidationError{"title", "required"})
	}

	seen := make(map[int]bool)
	for i, p := range e.Parts {
		prefix := fmt.Sprintf("parts[%d]", i)
		if p.Part != 1 && p.Part != 2 {
			errs = append(errs, ValidationError{prefix + ".part", fmt.Sprintf("must be 1 or 2, got %d", p.Part)})
		} else if seen[p.Part] {
			errs = append(errs, ValidationError{prefix + ".part", fmt.Sprintf("duplicate part %d", p.Part)})
		} else {
			seen[p.Part] = true
		}
		if p.Sample == "" {
			errs = append(errs, ValidationError{prefix + ".sample", "required"})
		}
	}

	return errs
}
