package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Student represents a learner row of the legacy student table.
type Student struct {
	ID            string  `db:"id" json:"id"`
	Username      string  `db:"username" json:"username"`
	Name          *string `db:"name" json:"name"`
	Contact       *string `db:"contact" json:"contact"`
	Branch        *string `db:"branch" json:"branch"`
	Course        *string `db:"course" json:"course"`
	Email         *string `db:"email" json:"EmailId"`
	NameContactID string  `db:"name_contactid" json:"name_contactid"`
	Password      string  `db:"password" json:"-"`
}

// ProfileField is a writable student column.
type ProfileField struct {
	Column string
	Value  string
}

// StudentRef is a student row id that clients send as either a JSON string or number.
type StudentRef string

// UnmarshalJSON accepts "42" and 42 alike.
func (r *StudentRef) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = StudentRef(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("student id must be a string or number: %w", err)
	}
	*r = StudentRef(n.String())
	return nil
}

// ProfileUpdateRequest carries a partial profile update. Empty fields are left untouched.
type ProfileUpdateRequest struct {
	ID       StudentRef `json:"id"`
	Name     string     `json:"name"`
	Contact  string     `json:"contact"`
	Username string     `json:"username"`
	Course   string     `json:"course"`
	Address  string     `json:"address"`
	Branch   string     `json:"branch"`
	Password string     `json:"password"`
	Status   string     `json:"status"`
	EmailID  string     `json:"EmailId"`
}

// Fields lists the non-empty columns in their fixed write order.
func (r ProfileUpdateRequest) Fields() []ProfileField {
	candidates := []ProfileField{
		{Column: "name", Value: r.Name},
		{Column: "contact", Value: r.Contact},
		{Column: "username", Value: r.Username},
		{Column: "course", Value: r.Course},
		{Column: "address", Value: r.Address},
		{Column: "branch", Value: r.Branch},
		{Column: "password", Value: r.Password},
		{Column: "status", Value: r.Status},
		{Column: "EmailId", Value: r.EmailID},
	}
	fields := make([]ProfileField, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Value != "" {
			fields = append(fields, candidate)
		}
	}
	return fields
}

// ProfileUpdateResponse acknowledges a profile write.
type ProfileUpdateResponse struct {
	Message string `json:"message"`
}
