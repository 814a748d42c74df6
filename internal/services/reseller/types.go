package reseller

// RemoteService is a catalog entry as listed by the panel API.
type RemoteService struct {
	ID       int    `json:"service"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Rate     string `json:"rate"` // price per 1000, decimal string
	Min      int    `json:"min"`
	Max      int    `json:"max"`
}

// OrderStatus is the panel's view of a submitted order. Status is a numeric
// code; the order service owns the mapping to local status strings.
type OrderStatus struct {
	Status     int    `json:"status"`
	Charge     string `json:"charge"`
	StartCount int    `json:"start_count"`
	Remains    int    `json:"remains"`
}

type addOrderResponse struct {
	Order int64  `json:"order"`
	Error string `json:"error"`
}

type statusResponse struct {
	OrderStatus
	Error string `json:"error"`
}
