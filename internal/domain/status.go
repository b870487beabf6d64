package domain

type (
	// ParcelStatus is the lifecycle position of a parcel.
	ParcelStatus string
	// TransportMode is the carrier mode a parcel travels by.
	TransportMode string
	// Role is the privilege level of a dashboard user.
	Role string
)

// List of parcel statuses. The first five form the delivery progression,
// RETURNED is a terminal side exit reachable from any of them.
const (
	StatusPending        ParcelStatus = "PENDING"
	StatusPickedUp       ParcelStatus = "PICKED_UP"
	StatusInTransit      ParcelStatus = "IN_TRANSIT"
	StatusOutForDelivery ParcelStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ParcelStatus = "DELIVERED"
	StatusReturned       ParcelStatus = "RETURNED"
)

// List of transport modes.
const (
	ModeAir   TransportMode = "AIR"
	ModeTruck TransportMode = "TRUCK"
	ModeTrain TransportMode = "TRAIN"
)

// List of user roles.
const (
	RoleOwner Role = "OWNER"
	RoleAdmin Role = "ADMIN"
)

// progression is the ordered happy path shown on the tracking timeline.
var progression = [...]ParcelStatus{
	StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery, StatusDelivered,
}

var allStatuses = [...]ParcelStatus{
	StatusPending, StatusPickedUp, StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusReturned,
}

// Modes are listed in the order analytics reports them.
var allModes = [...]TransportMode{ModeAir, ModeTrain, ModeTruck}

var statusLabels = map[ParcelStatus]string{
	StatusPending:        "Pending",
	StatusPickedUp:       "Picked Up",
	StatusInTransit:      "In Transit",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusReturned:       "Returned",
}

var statusDescriptions = map[ParcelStatus]string{
	StatusPending:        "Your parcel has been registered and is waiting to be picked up by our courier.",
	StatusPickedUp:       "Our courier has collected your parcel and it's now in our system.",
	StatusInTransit:      "Your parcel is on its way! It's currently being transported to the delivery area.",
	StatusOutForDelivery: "Great news! Your parcel is out for delivery and should arrive today.",
	StatusDelivered:      "Your parcel has been successfully delivered. Thank you for using FastKart!",
	StatusReturned:       "This parcel has been returned to the sender.",
}

// Statuses returns every parcel status in progression order, RETURNED last.
func Statuses() []ParcelStatus {
	out := make([]ParcelStatus, len(allStatuses))
	copy(out, allStatuses[:])
	return out
}

// Modes returns every transport mode.
func Modes() []TransportMode {
	out := make([]TransportMode, len(allModes))
	copy(out, allModes[:])
	return out
}

// Valid checks if the ParcelStatus is known.
func (s ParcelStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns a human readable name, or the raw value for unknown statuses.
func (s ParcelStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Description returns the customer-facing explanation of the status.
func (s ParcelStatus) Description() string {
	return statusDescriptions[s]
}

// Step returns the position of s on the delivery progression, or -1 for RETURNED and unknown values.
func (s ParcelStatus) Step() int {
	for i, v := range progression {
		if v == s {
			return i
		}
	}
	return -1
}

// Valid checks if the TransportMode is known.
func (m TransportMode) Valid() bool {
	for _, v := range allModes {
		if m == v {
			return true
		}
	}
	return false
}

// Valid checks if the Role is known.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleAdmin
}
