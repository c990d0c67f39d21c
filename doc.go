// Package bounce simulates particles bouncing around inside a closed boundary.
//
// A [Simulation] owns one active [Boundary] and a batch of [Particle] values.
// Every call to [Simulation.Step] moves each particle in a straight line by its
// velocity, reflects it off the boundary if it touched it, and records its new
// position in its path. Rendering the result is left to the caller; see the
// svg and term packages.
//
// # Boundaries
//
// Four boundaries are provided:
//   - [Rectangle], an axis-aligned box that reflects each axis on its own
//   - [Circle], with exact normals and penetration correction
//   - [Ellipse], using the gradient of its implicit form as the normal
//   - [Irregular], a closed [CatmullRom] spline through editable control
//     points, sampled into [BoundarySamples] points
//
// All boundaries reflect velocities specularly (see [Reflect]), so a bounce
// changes a particle's direction but never its speed.
//
// # Irregular boundaries
//
// Irregular boundaries are generated by perturbing the radius of a base
// ellipse at evenly spaced angles (see [GenerateControlPoints]), using a
// small linear congruential generator so that a seed always reproduces the
// same boundary. Control points can then be dragged with an [Editor]; every
// change resamples the whole spline.
//
// Collisions with irregular boundaries are approximate. The boundary sample
// whose angle around the boundary's center is closest to the particle's angle
// stands in for the whole boundary in that direction, which works well for
// star-shaped curves and can misjudge deep concavities.
//
// # Coordinates
//
// The canvas is y-down with its origin in the top left corner, as is common
// for graphics. Positive angles therefore rotate clockwise.
package bounce
