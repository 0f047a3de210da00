// Package geom3d provides immutable 3D geometric value types: vectors,
// unit directions, points, axes, orthonormal frames, planar frames and
// axis-aligned bounding boxes. Every operation returns a new value;
// nothing mutates in place, so values are safe to share across goroutines.
//
// PlanarFrame embeds 2D geometry from package geom2d into 3D space.
// Angles are in radians; rotations follow the right-hand rule around the
// rotation axis direction.
package geom3d
