package candidate

import (
	"errors"
	"fmt"
	"strings"
)

// Profile holds the intake form fields for a single candidate. Email is the
// unique identifier under which the completed interview is persisted.
type Profile struct {
	Name       string `json:"name" mapstructure:"name"`
	Email      string `json:"email" mapstructure:"email"`
	Phone      string `json:"phone" mapstructure:"phone"`
	Experience int    `json:"experience" mapstructure:"experience"`
	Position   string `json:"position" mapstructure:"position"`
	Location   string `json:"location" mapstructure:"location"`
	TechStack  string `json:"tech_stack" mapstructure:"tech_stack"`
}

// Validate checks the fields required before an interview may start.
// Experience, position and location are optional.
func (p Profile) Validate() error {
	missing := p.MissingFields()
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if p.Experience < 0 {
		return errors.New("years of experience must not be negative")
	}

	return nil
}

// MissingFields returns the names of required fields that are empty.
func (p Profile) MissingFields() []string {
	var missing []string

	required := []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"phone", p.Phone},
		{"tech_stack", p.TechStack},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}
