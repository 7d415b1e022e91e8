package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/parkops/ridemax/internal/ride"
)

// Delimiter separates the three fields of a catalog row:
// description ^ cost_dollars ^ time_minutes. The first line is a header.
const Delimiter = "^"

// Load reads every valid ride from the caret-delimited catalog at path.
//
// Error asymmetry, deliberately:
//   - a row with the wrong field count is a structural error and aborts the
//     entire load, naming the offending line;
//   - a row whose cost or minutes fail to parse, or whose values violate
//     the ride constraints (empty description, cost <= 0, minutes < 0), is
//     a value error and is skipped individually.
func Load(path string) ([]ride.Ride, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ride catalog: %w", err)
	}
	defer f.Close()

	var rides []ride.Ride
	sc := bufio.NewScanner(f)
	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		if lineNumber == 1 {
			// header row
			continue
		}
		line := sc.Text()

		fields := strings.Split(line, Delimiter)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ride catalog %s: invalid field count at line %d: want 3, got %d", path, lineNumber, len(fields))
		}

		description := strings.TrimSpace(fields[0])
		cost, costErr := strconv.Atoi(strings.TrimSpace(fields[1]))
		minutes, minErr := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)

		if costErr != nil || minErr != nil {
			continue
		}
		if description == "" || cost <= 0 || minutes < 0 {
			continue
		}
		rides = append(rides, ride.New(description, cost, minutes))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ride catalog %s: %w", path, err)
	}
	return rides, nil
}
