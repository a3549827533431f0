package domain

import (
	"net/mail"
	"time"
)

type Customer struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"nome"`
	CPF               string `json:"cpf"`
	Email             string `json:"email"`
	Phone             string `json:"telefone"`
	LicenseNumber     string `json:"cnh_numero"`
	LicenseValidUntil string `json:"cnh_validade"` // Format: YYYY-MM-DD
	AddressID         string `json:"endereco_id,omitempty"`
}

func (c *Customer) Validate() error {
	if err := requireText("nome", c.Name); err != nil {
		return err
	}
	if err := requireText("cpf", c.CPF); err != nil {
		return err
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return invalid("email", "is not a valid address")
		}
	}
	if c.LicenseValidUntil != "" {
		if _, err := time.Parse("2006-01-02", c.LicenseValidUntil); err != nil {
			return invalid("cnh_validade", "must be formatted as YYYY-MM-DD")
		}
	}
	return optionalID("endereco_id", c.AddressID)
}
