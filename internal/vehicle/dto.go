package vehicle

import "github.com/HaniMe9/abe-garage-hani/internal"

type CreateVehicleDTO struct {
	CustomerID int64  `json:"customer_id"`
	Year       int    `json:"vehicle_year"`
	Make       string `json:"vehicle_make"`
	Model      string `json:"vehicle_model"`
	Type       string `json:"vehicle_type"`
	Mileage    int    `json:"vehicle_mileage"`
	Tag        string `json:"vehicle_tag"`
	Serial     string `json:"vehicle_serial"`
	Color      string `json:"vehicle_color"`
}

func (d CreateVehicleDTO) Validate() error {
	if d.CustomerID == 0 {
		return internal.NewValidationError("customer_id is required", internal.ErrCodeMissingFields)
	}
	if d.Make == "" || d.Model == "" {
		return internal.NewValidationError("vehicle make and model are required", internal.ErrCodeMissingFields)
	}
	return nil
}

type UpdateVehicleDTO struct {
	Year    *int    `json:"vehicle_year,omitempty"`
	Make    *string `json:"vehicle_make,omitempty"`
	Model   *string `json:"vehicle_model,omitempty"`
	Type    *string `json:"vehicle_type,omitempty"`
	Mileage *int    `json:"vehicle_mileage,omitempty"`
	Tag     *string `json:"vehicle_tag,omitempty"`
	Serial  *string `json:"vehicle_serial,omitempty"`
	Color   *string `json:"vehicle_color,omitempty"`
}
