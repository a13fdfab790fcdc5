package models

// Order lifecycle statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusDelivered = "delivered"
)

// Measurements holds the customer's body measurements in centimetres.
// Length is the only mandatory field; the rest depend on the garment type.
type Measurements struct {
	Shoulder string `json:"shoulder,omitempty"`
	Chest    string `json:"chest,omitempty"`
	Sleeve   string `json:"sleeve,omitempty"`
	Waist    string `json:"waist,omitempty"`
	Thigh    string `json:"thigh,omitempty"`
	Hip      string `json:"hip,omitempty"`
	Length   string `json:"length"`
}

// Fields returns the non-empty measurements as label/value pairs in a stable order.
func (m Measurements) Fields() [][2]string {
	all := [][2]string{
		{"shoulder", m.Shoulder},
		{"chest", m.Chest},
		{"sleeve", m.Sleeve},
		{"waist", m.Waist},
		{"thigh", m.Thigh},
		{"hip", m.Hip},
		{"length", m.Length},
	}
	out := make([][2]string, 0, len(all))
	for _, f := range all {
		if f[1] != "" {
			out = append(out, f)
		}
	}
	return out
}

// Order is a custom-measurement inquiry. Product name and type are snapshots
// taken at submission time, and Total is fixed at creation; neither is ever
// recomputed from the live catalog.
type Order struct {
	ID            string       `json:"id"`
	ProductName   string       `json:"productName"`
	ProductType   string       `json:"productType"`
	Quantity      int          `json:"quantity"`
	Measurements  Measurements `json:"measurements"`
	Timestamp     int64        `json:"timestamp"`
	CustomerEmail string       `json:"customerEmail"`
	ReferrerCode  string       `json:"referrerCode,omitempty"`
	Status        string       `json:"status"`
	Total         float64      `json:"total"`
	PaymentRef    string       `json:"paymentRef,omitempty"`
}
