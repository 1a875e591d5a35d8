// Package oati parses OATI spline documents: JSON keyframe exports produced
// by the 3ds Max spline exporter. A document carries export metadata plus one
// entry per scene spline, each holding per-frame control point data (cubic
// Bezier curves with tangent handles, or raw point sets).
package oati

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// OATI format errors.
var (
	ErrEmptyData = errors.New("empty OATI data")
	ErrNoSplines = errors.New("OATI document has no splines")
)

// DefaultFrameRate is assumed when metadata omits the frame rate.
const DefaultFrameRate = 30

// Point is a 3D position.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// CurvePoint is a Bezier control point: the knot position plus the incoming
// and outgoing tangent handles. The exporter emits handles equal to the knot
// for corner (non-smooth) knots.
type CurvePoint struct {
	Knot      Point `json:"knot"`
	InHandle  Point `json:"inHandle"`
	OutHandle Point `json:"outHandle"`
}

// Curve is one sub-curve of a spline shape. SplineIndex is the 1-based
// sub-curve id assigned by the exporter; 0 means unassigned.
type Curve struct {
	SplineIndex int          `json:"splineIndex"`
	Points      []CurvePoint `json:"points"`
}

// Frame is the captured state of one spline at one timeline frame. Exactly
// one of Curves or Points is normally populated: Curves for Bezier shapes,
// Points for raw vertex captures. Frames with neither are tolerated and
// contribute empty geometry.
type Frame struct {
	Frame      int     `json:"frame"`
	Time       float64 `json:"time"`
	Points     []Point `json:"points,omitempty"`
	Curves     []Curve `json:"curves,omitempty"`
	IsKeyframe bool    `json:"isKeyframe"`
}

// HasCurves reports whether the frame carries Bezier curve data.
func (f *Frame) HasCurves() bool {
	return len(f.Curves) > 0
}

// Spline is one named animated spline with its keyframe sequence.
type Spline struct {
	Name   string  `json:"name"`
	Frames []Frame `json:"frames"`
}

// MaxFrame returns the highest frame number in the spline, or 0 when it has
// no frames.
func (s *Spline) MaxFrame() int {
	max := 0
	for i := range s.Frames {
		if s.Frames[i].Frame > max {
			max = s.Frames[i].Frame
		}
	}
	return max
}

// Metadata describes the export session.
type Metadata struct {
	Version          float64 `json:"version"`
	Generator        string  `json:"generator"`
	FrameStart       int     `json:"frameStart"`
	FrameEnd         int     `json:"frameEnd"`
	ExportType       string  `json:"exportType"`
	FrameRate        float64 `json:"frameRate"`
	Closed           bool    `json:"closed"`
	ExportDate       string  `json:"exportDate"`
	CoordinateSystem string  `json:"coordinateSystem"`
	CurveType        string  `json:"curveType"`
	Description      string  `json:"description"`
}

// Asset is a parsed OATI document.
type Asset struct {
	Metadata Metadata `json:"metadata"`
	Splines  []Spline `json:"splines"`
}

// Parse parses an OATI document from raw bytes.
func Parse(data []byte) (*Asset, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyData
	}

	var asset Asset
	if err := json.Unmarshal(data, &asset); err != nil {
		return nil, fmt.Errorf("decoding OATI document: %w", err)
	}

	if len(asset.Splines) == 0 {
		return nil, ErrNoSplines
	}

	return &asset, nil
}

// ParseFile parses an OATI document from disk.
func ParseFile(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OATI file: %w", err)
	}
	return Parse(data)
}

// FrameRateOrDefault returns the metadata frame rate, falling back to
// DefaultFrameRate when it is missing or non-positive.
func (a *Asset) FrameRateOrDefault() float64 {
	if a.Metadata.FrameRate > 0 {
		return a.Metadata.FrameRate
	}
	return DefaultFrameRate
}

// MaxFrame returns the highest frame number across all splines.
func (a *Asset) MaxFrame() int {
	max := 0
	for i := range a.Splines {
		if m := a.Splines[i].MaxFrame(); m > max {
			max = m
		}
	}
	return max
}

// Duration returns the animation length in seconds.
func (a *Asset) Duration() float64 {
	return float64(a.MaxFrame()) / a.FrameRateOrDefault()
}

// TotalKeyframes returns the frame record count summed over all splines.
func (a *Asset) TotalKeyframes() int {
	n := 0
	for i := range a.Splines {
		n += len(a.Splines[i].Frames)
	}
	return n
}

// Spline returns the first spline with the given name, or nil.
func (a *Asset) Spline(name string) *Spline {
	for i := range a.Splines {
		if a.Splines[i].Name == name {
			return &a.Splines[i]
		}
	}
	return nil
}
