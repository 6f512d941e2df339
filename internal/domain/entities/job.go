package entities

// Job is one locksmith service performed on a vehicle, billed as a single
// invoice line.
type Job struct {
	Vehicle   VehicleInfo
	Service   ServiceType
	Qty       float64
	UnitPrice float64
}

// LineDescription composes the invoice line text:
//
//	"{service} for {vin}"               when the vehicle summary is incomplete
//	"{service} for {vin} (year make model)" otherwise
func (j Job) LineDescription() string {
	desc := string(j.Service) + " for " + j.Vehicle.VIN
	if summary := j.Vehicle.Summary(); summary != "" {
		desc += " (" + summary + ")"
	}
	return desc
}
