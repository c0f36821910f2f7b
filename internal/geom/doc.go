// Package geom holds the small amount of 3D math the swarm needs: the world
// volume (Cube), cubic Bezier curves, point/segment distance queries and
// resampling of fixed-size arrays.
//
// Everything here is a pure function or a value type.
package geom
