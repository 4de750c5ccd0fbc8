package circlemode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// recordSize - lng, lat, radius, area as 64 bit floats plus a 32 bit step count
const recordSize = 36

// ErrShortRecord is returned when a stored record is truncated.
var ErrShortRecord = errors.New("short circle record")

// CircleRecord - measurements of a circle without its ring
type CircleRecord struct {
	Center orb.Point
	Radius float64
	Area   float64
	Steps  int
}

// record encoding
type encoding []byte

// encode lng/lat as 64 bit floats packed in to 16 bytes, the center is
// kept at full precision so the ring can be regenerated exactly
func (e encoding) setCoords(lng float64, lat float64) {
	binary.BigEndian.PutUint64(e[0:8], math.Float64bits(lng))
	binary.BigEndian.PutUint64(e[8:16], math.Float64bits(lat))
}

func (e encoding) getCoords() (float64, float64) {
	lng := math.Float64frombits(binary.BigEndian.Uint64(e[0:8]))
	lat := math.Float64frombits(binary.BigEndian.Uint64(e[8:16]))
	return lng, lat
}

func (e encoding) setMeasurements(radius float64, area float64, steps int) {
	binary.BigEndian.PutUint64(e[16:24], math.Float64bits(radius))
	binary.BigEndian.PutUint64(e[24:32], math.Float64bits(area))
	binary.BigEndian.PutUint32(e[32:36], uint32(steps))
}

func (e encoding) getMeasurements() (float64, float64, int) {
	radius := math.Float64frombits(binary.BigEndian.Uint64(e[16:24]))
	area := math.Float64frombits(binary.BigEndian.Uint64(e[24:32]))
	steps := int(binary.BigEndian.Uint32(e[32:36]))
	return radius, area, steps
}

// EncodeRecord - pack a record in to its fixed size binary form
func EncodeRecord(r CircleRecord) []byte {
	e := make(encoding, recordSize)
	e.setCoords(r.Center.Lon(), r.Center.Lat())
	e.setMeasurements(r.Radius, r.Area, r.Steps)
	return e
}

// DecodeRecord - unpack a record written by EncodeRecord
func DecodeRecord(data []byte) (CircleRecord, error) {
	if len(data) < recordSize {
		return CircleRecord{}, fmt.Errorf("%w: %d bytes", ErrShortRecord, len(data))
	}

	e := encoding(data)
	lng, lat := e.getCoords()
	radius, area, steps := e.getMeasurements()

	return CircleRecord{
		Center: orb.Point{lng, lat},
		Radius: radius,
		Area:   area,
		Steps:  steps,
	}, nil
}

// Circle - regenerate the ring described by the record
func (r CircleRecord) Circle() orb.Ring {
	return GenerateCircle(r.Center, r.Radius, r.Steps)
}
