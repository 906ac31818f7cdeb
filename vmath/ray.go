package vmath

// Ray is a half-line starting at Origin. Dir is expected to be unit length;
// zero components are fine, a zero-length Dir is not.
type Ray struct {
	Origin Vector2
	Dir    Vector2
}

func NewRay(origin, dir Vector2) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vector2 {
	return r.Origin.Add(r.Dir.Scale(t))
}
