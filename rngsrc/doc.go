// Package rngsrc centralizes the pseudo-random source numclust's stochastic
// routines (kmeans restarts, SOM training) consume: seed, uniform integer,
// uniform real, and in-place permutation.
//
// spec.md treats this surface as an external collaborator the library may
// inject rather than own; Source is that injection point. A Source is not
// safe for concurrent use — share one only with external synchronization, or
// derive an independent stream per goroutine.
package rngsrc
