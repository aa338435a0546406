package order

import "github.com/HaniMe9/abe-garage-hani/internal"

type CreateOrderDTO struct {
	EmployeeID        int64   `json:"employee_id"`
	CustomerID        int64   `json:"customer_id"`
	VehicleID         int64   `json:"vehicle_id"`
	ServiceIDs        []int64 `json:"service_ids"`
	TotalPrice        float64 `json:"order_total_price"`
	AdditionalRequest *string `json:"additional_request,omitempty"`
}

func (d CreateOrderDTO) Validate() error {
	if d.EmployeeID == 0 || d.CustomerID == 0 || d.VehicleID == 0 {
		return internal.NewValidationError(
			"missing required fields: employee_id, customer_id, vehicle_id",
			internal.ErrCodeMissingFields)
	}
	if d.TotalPrice < 0 {
		return internal.NewValidationError("order total price cannot be negative", internal.ErrCodeValidationFailed)
	}
	for _, id := range d.ServiceIDs {
		if id <= 0 {
			return internal.NewValidationError("service ids must be positive", internal.ErrCodeValidationFailed)
		}
	}
	return nil
}

type CompleteOrderDTO struct {
	FinalPrice float64 `json:"order_total_price"`
	Notes      *string `json:"notes,omitempty"`
}

func (d CompleteOrderDTO) Validate() error {
	if d.FinalPrice < 0 {
		return internal.NewValidationError("final price cannot be negative", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateStatusDTO struct {
	Status string `json:"order_status"`
}

func (d UpdateStatusDTO) Validate() error {
	switch d.Status {
	case StatusReceived, StatusInProgress:
		return nil
	case StatusCompleted:
		// completion must go through the complete operation so the info
		// and service line updates ride the same transaction
		return internal.NewValidationError("use the complete operation to finish an order", internal.ErrCodeValidationFailed)
	default:
		return internal.NewValidationError("unknown order status", internal.ErrCodeValidationFailed)
	}
}
