package ticket

// Book defines how many dollars a visitor pays per ride ticket, with
// optional discounted books of tickets.
type Book struct {
	Name       string // e.g. "Ride Pass", "Midway Strip"
	PerRide    int    // dollars per single ride ticket
	PerTenRide int    // optional; 0 -> 10 * PerRide, a special case of PerNRide
	PerNRide   int    // optional; 0 -> N * PerRide
	N          int    // book size for PerNRide; <= 1 disables it
}

// CostForRides returns the dollars required to ride n times, buying whole
// discounted books first and single tickets for the remainder.
func (b Book) CostForRides(n int) int {
	if n <= 0 {
		return 0
	}
	if b.PerTenRide > 0 && n >= 10 && b.N <= 1 {
		tens := n / 10
		rem := n % 10
		return tens*b.PerTenRide + rem*b.PerRide
	}
	if b.PerNRide > 0 && b.N > 1 && n >= b.N {
		books := n / b.N
		rem := n % b.N
		return books*b.PerNRide + rem*b.PerRide
	}
	return n * b.PerRide
}
