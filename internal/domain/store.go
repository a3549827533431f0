package domain

// Store is a rental branch (loja) where vehicles are picked up and returned.
type Store struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"nome"`
	Phone     string `json:"telefone"`
	AddressID string `json:"endereco_id"`
}

func (s *Store) Validate() error {
	if err := requireText("nome", s.Name); err != nil {
		return err
	}
	return optionalID("endereco_id", s.AddressID)
}
