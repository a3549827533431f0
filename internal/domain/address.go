package domain

type Address struct {
	ID        string   `json:"id,omitempty"`
	Street    string   `json:"rua"`
	City      string   `json:"cidade"`
	State     string   `json:"estado"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (a *Address) Validate() error {
	if err := requireText("rua", a.Street); err != nil {
		return err
	}
	if err := requireText("cidade", a.City); err != nil {
		return err
	}
	if err := requireText("estado", a.State); err != nil {
		return err
	}
	if a.Latitude != nil && (*a.Latitude < -90 || *a.Latitude > 90) {
		return invalid("latitude", "must be between -90 and 90")
	}
	if a.Longitude != nil && (*a.Longitude < -180 || *a.Longitude > 180) {
		return invalid("longitude", "must be between -180 and 180")
	}
	return nil
}
