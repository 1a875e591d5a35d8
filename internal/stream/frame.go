// Package stream publishes track geometry over MQTT and receives playback
// control commands. The wire format is a compact binary frame per track;
// control messages are small JSON documents.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Wire format errors.
var (
	ErrShortFrame   = errors.New("geometry frame truncated")
	ErrRaggedBuffer = errors.New("position buffer is not xyz triples")
)

// GeometryFrame is one track's current polyline as sent on the wire.
// Positions hold packed xyz components, matching a track's Buffer layout.
type GeometryFrame struct {
	Name      string
	Positions []float32
}

// MarshalBinary encodes the frame. Layout, all little endian: name length
// as uint16, name bytes, position count as uint32, then three float32
// components per position.
func (f *GeometryFrame) MarshalBinary() ([]byte, error) {
	if len(f.Name) > math.MaxUint16 {
		return nil, fmt.Errorf("track name too long: %d bytes", len(f.Name))
	}
	if len(f.Positions)%3 != 0 {
		return nil, ErrRaggedBuffer
	}

	data := make([]byte, 0, 2+len(f.Name)+4+len(f.Positions)*4)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(f.Name)))
	data = append(data, f.Name...)
	data = binary.LittleEndian.AppendUint32(data, uint32(len(f.Positions)/3))
	for _, v := range f.Positions {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
	}

	return data, nil
}

// UnmarshalBinary decodes a frame produced by MarshalBinary.
func (f *GeometryFrame) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return ErrShortFrame
	}
	nameLen := int(binary.LittleEndian.Uint16(data))
	data = data[2:]

	if len(data) < nameLen+4 {
		return ErrShortFrame
	}
	f.Name = string(data[:nameLen])
	data = data[nameLen:]

	count := int(binary.LittleEndian.Uint32(data))
	data = data[4:]
	if len(data) != count*3*4 {
		return ErrShortFrame
	}

	f.Positions = make([]float32, 0, count*3)
	for i := 0; i < count*3; i++ {
		bits := binary.LittleEndian.Uint32(data[i*4:])
		f.Positions = append(f.Positions, math.Float32frombits(bits))
	}

	return nil
}
