package models

import "strings"

// ContactMessage is a visitor's submission from the contact form.
type ContactMessage struct {
	Name    string `json:"name" validate:"required|maxLen:200"`
	Email   string `json:"email" validate:"required|email"`
	Message string `json:"message" validate:"required|maxLen:5000"`
}

func (c *ContactMessage) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)
	if err := requireStrings("contact",
		requiredField{"name", c.Name},
		requiredField{"email", c.Email},
		requiredField{"message", c.Message},
	); err != nil {
		return err
	}
	if strings.ContainsAny(c.Name+c.Email, "\r\n") {
		return &ValidationError{Entity: "contact", Field: "name", Message: "must be a single line"}
	}
	return checkRules("contact", c)
}
