package domain

type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"nome"`
}

func (c *Category) Validate() error {
	return requireText("nome", c.Name)
}
