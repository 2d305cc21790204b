// Package threespace implements BC3/octahedral orbit enumeration on Z^3
// and enumeration of integer points on a sphere x^2+y^2+z^2=n. The
// fundamental region is F = {(x,y,z): 0<=x<=y<=z}; every
// integer point on a given sphere is the image of exactly one point of F
// under some element of BC3 (sign flips composed with coordinate
// permutations, 48 elements total; the subgroup of even sign flips
// composed with all permutations, used by EvenOrbit, has 24).
package threespace
