package geom

import "math"

// DashSpec describes one visible run and the gap that follows it, in
// logical units. A spec with On <= 0 disables dashing.
type DashSpec struct {
	On  float64
	Off float64
}

const dashEps = 1e-9

// DashSegments splits a polyline into the visible runs of a dash
// pattern. The on/off phase is carried across vertex joints, so the
// pattern stays continuous around corners instead of restarting at
// every edge. Closed paths are walked as one continuous perimeter
// starting from the first vertex, which makes dash placement
// deterministic regardless of how the shape was dragged out.
//
// A disabled or degenerate spec returns the polyline itself as
// consecutive segments.
func DashSegments(pts []Point, closed bool, spec DashSpec) []Segment {
	if len(pts) < 2 {
		return nil
	}
	verts := pts
	if closed {
		verts = make([]Point, 0, len(pts)+1)
		verts = append(verts, pts...)
		verts = append(verts, pts[0])
	}

	period := spec.On + spec.Off
	if spec.On <= 0 || period <= 0 {
		segs := make([]Segment, 0, len(verts)-1)
		for i := 1; i < len(verts); i++ {
			if verts[i] != verts[i-1] {
				segs = append(segs, Segment{verts[i-1], verts[i]})
			}
		}
		return segs
	}

	var out []Segment
	traveled := 0.0
	for i := 1; i < len(verts); i++ {
		a, b := verts[i-1], verts[i]
		edge := a.Dist(b)
		if edge == 0 {
			continue
		}
		t := 0.0
		for t < edge-dashEps {
			phase := math.Mod(traveled+t, period)
			if phase < spec.On {
				run := math.Min(spec.On-phase, edge-t)
				if run > dashEps {
					out = append(out, Segment{Lerp(a, b, t/edge), Lerp(a, b, (t+run)/edge)})
				}
				t += run
			} else {
				t += math.Min(period-phase, edge-t)
			}
		}
		traveled += edge
	}
	return out
}
