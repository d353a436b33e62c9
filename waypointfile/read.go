package waypointfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/geom"
)

// fieldCount is the shape of a waypoint record: x, y, heading degrees.
const fieldCount = 3

// Read parses waypoint records from r. Comment lines ('#'), blank
// lines, and records with the wrong field count or non-numeric fields
// are skipped. The returned slice may be empty.
func Read(r io.Reader) ([]geom.Pose, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	var poses []geom.Pose
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("waypointfile: read: %w", err)
		}

		p, ok := parseRecord(record)
		if !ok {
			continue
		}
		poses = append(poses, p)
	}

	return poses, nil
}

// ReadFile reads waypoints from the file at path.
func ReadFile(path string) ([]geom.Pose, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("waypointfile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func parseRecord(record []string) (geom.Pose, bool) {
	if len(record) != fieldCount {
		return geom.Pose{}, false
	}

	var vals [fieldCount]float64
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return geom.Pose{}, false
		}
		vals[i] = v
	}

	return geom.NewPoseDeg(vals[0], vals[1], vals[2]), true
}
