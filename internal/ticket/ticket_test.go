package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostForRidesSingles(t *testing.T) {
	b := Book{Name: "Ride Ticket", PerRide: 5}
	assert.Equal(t, 0, b.CostForRides(0))
	assert.Equal(t, 0, b.CostForRides(-3))
	assert.Equal(t, 5, b.CostForRides(1))
	assert.Equal(t, 35, b.CostForRides(7))
}

func TestCostForRidesBookOfTen(t *testing.T) {
	b := Book{Name: "Ride Ticket", PerRide: 5, PerTenRide: 45}
	assert.Equal(t, 45, b.CostForRides(10))
	assert.Equal(t, 45+3*5, b.CostForRides(13))
	assert.Equal(t, 2*45, b.CostForRides(20))
	// below the book size, singles apply
	assert.Equal(t, 9*5, b.CostForRides(9))
}

func TestCostForRidesBookOfN(t *testing.T) {
	b := Book{Name: "Midway Strip", PerRide: 4, PerNRide: 18, N: 5}
	assert.Equal(t, 18, b.CostForRides(5))
	assert.Equal(t, 18+2*4, b.CostForRides(7))
	assert.Equal(t, 3*18+4, b.CostForRides(16))
	assert.Equal(t, 4*4, b.CostForRides(4))
}

func TestBookOfNTakesPrecedenceOverTen(t *testing.T) {
	// when N > 1 is configured, the ten-book shortcut is disabled
	b := Book{PerRide: 4, PerTenRide: 35, PerNRide: 18, N: 5}
	assert.Equal(t, 2*18, b.CostForRides(10))
}
