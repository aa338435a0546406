package events

import "time"

const (
	OrderCreated   = "order.created"
	OrderCompleted = "order.completed"
)

// OrderEvent carries the order lifecycle payload for both created and
// completed notifications.
type OrderEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	OrderID    int64     `json:"order_id"`
	CustomerID int64     `json:"customer_id"`
	EmployeeID int64     `json:"employee_id"`
	TotalPrice float64   `json:"total_price"`
}

func (e OrderEvent) EventType() string     { return e.Type }
func (e OrderEvent) EventID() string       { return e.ID }
func (e OrderEvent) OccurredAt() time.Time { return e.Timestamp }
func (e OrderEvent) Payload() interface{}  { return e }
