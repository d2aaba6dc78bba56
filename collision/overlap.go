package collision

import (
	"github.com/golang/geo/r3"

	"github.com/meshforge/worldcollide/scene"
	"github.com/meshforge/worldcollide/spatialmath"
)

// contactCandidate pairs a discrete contact with the triangle that
// produced it, still in the batch frame.
type contactCandidate struct {
	contact spatialmath.Contact
	it      indexedTriangle
	frame   *localFrame
}

// collectCapsuleContacts runs the discrete capsule test against every
// candidate triangle in the batches. The capsule arrives in storage space
// and drops into each batch frame.
func (e *Engine) collectCapsuleContacts(batches []batch, sc spatialmath.Capsule) []contactCandidate {
	var out []contactCandidate
	for _, b := range batches {
		lc := b.frame.capsuleToLocal(sc)
		for _, it := range b.tris {
			if e.skippable(it) {
				continue
			}
			contact, ok := spatialmath.CapsuleTriangleContact(lc, it.tri)
			if !ok {
				continue
			}
			out = append(out, contactCandidate{contact: contact, it: it, frame: b.frame})
		}
	}
	return out
}

// contactHit shapes a discrete contact into the overlap form of Hit: a
// time-zero start penetration with its depth, pointing at the struck
// surface.
func (e *Engine) contactHit(c contactCandidate) Hit {
	normal, flipped := worldWindingNormal(c.it.tri, c.frame)
	return Hit{
		Point:            StorageToWorld(c.frame.pointToStorage(c.contact.SurfacePoint)),
		Normal:           normal,
		NormalFlipped:    flipped,
		Triangle:         c.it.index,
		Instance:         c.it.instance,
		StartPenetrating: true,
		PenetrationDepth: c.contact.Depth * c.frame.scale(),
	}
}

// OverlapCapsule reports every triangle the world-space capsule currently
// intersects, in (instance, triangle) order.
func (e *Engine) OverlapCapsule(c spatialmath.Capsule, mask scene.Mask) []Hit {
	if c.Radius < 0 {
		return nil
	}
	sc := WorldCapsuleToStorage(c)
	bounds := sc.Bounds().Expanded(e.cfg.BroadPadding)
	var hits []Hit
	for _, cand := range e.collectCapsuleContacts(e.src.collect(bounds, mask), sc) {
		hits = append(hits, e.contactHit(cand))
	}
	sortHits(hits)
	return hits
}

// OverlapSphere reports every triangle the world-space sphere intersects.
func (e *Engine) OverlapSphere(center r3.Vector, radius float64, mask scene.Mask) []Hit {
	return e.OverlapCapsule(spatialmath.NewSphere(center, radius), mask)
}

// OverlapBox reports every triangle intersecting a world-space axis box.
// The broad test is the box's bounding sphere; an exact triangle-vs-box
// separating-axis check then discards the sphere's false positives, so
// contact depths are sphere-relative but membership is box-exact. The SAT
// runs in storage space, where the box stays axis-aligned.
func (e *Engine) OverlapBox(b spatialmath.AABB, mask scene.Mask) []Hit {
	sBox := WorldAABBToStorage(b)
	sphere := spatialmath.NewSphere(sBox.Center(), sBox.BoundingSphereRadius())
	bounds := sBox.Expanded(e.cfg.BroadPadding)
	var hits []Hit
	for _, bt := range e.src.collect(bounds, mask) {
		lSphere := bt.frame.capsuleToLocal(sphere)
		for _, it := range bt.tris {
			if e.skippable(it) {
				continue
			}
			sTri := it.tri
			if bt.frame != nil {
				sTri = bt.frame.toStorage.ApplyToTriangle(it.tri)
			}
			if !spatialmath.TriangleAABBOverlap(sTri, sBox) {
				continue
			}
			contact, ok := spatialmath.CapsuleTriangleContact(lSphere, it.tri)
			if !ok {
				continue
			}
			hits = append(hits, e.contactHit(contactCandidate{contact: contact, it: it, frame: bt.frame}))
		}
	}
	sortHits(hits)
	return hits
}
