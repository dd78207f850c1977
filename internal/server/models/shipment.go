package models

const (
	DefaultCostPerKg   = 5.0
	DefaultHandlingFee = 10.0
)

type Shipment struct {
	ID          int64
	Contents    string
	WeightKg    float64
	Category    string
	IsInsured   bool
	FlightNo    string
	CostPerKg   float64
	HandlingFee float64
}

// TotalCost is weight times rate plus the flat handling fee. It is derived
// on every call and never stored.
func (s Shipment) TotalCost() float64 {
	return s.WeightKg*s.CostPerKg + s.HandlingFee
}
