// Package geom2d provides immutable 2D geometric value types: vectors,
// unit directions, points, axes, orthonormal frames and axis-aligned
// bounding boxes. Every operation returns a new value; nothing mutates
// in place, so values are safe to share across goroutines.
//
// Angles are in radians throughout, measured counterclockwise.
package geom2d
