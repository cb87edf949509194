package geometry

import (
	"github.com/df07/go-direct-raytracer/pkg/core"
)

// Primitive is anything a ray can be tested against.
//
// Hit writes rec only when the intersection lies inside the ray's [TMin, TMax]
// range and is nearer than what rec already holds; it returns true exactly
// when it wrote. AnyHit answers the same question for shadow rays without
// building a record.
type Primitive interface {
	Hit(ray core.Ray, rec *core.HitRecord) bool
	AnyHit(ray core.Ray) bool
}
