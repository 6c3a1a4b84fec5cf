package geom

// Triangulation of a Y-monotone polygon, i.e. a simple polygon which any
// horizontal line crosses at most twice.
//
// Point.Below simulates a slightly rotated coordinate system, so horizontal
// edges are allowed: on the left chain a horizontal edge must sit above the
// inside of the polygon, and on the right chain below it.
//
// The polygon must be counterclockwise. Input that breaks these assumptions
// panics through fatalf; use HandlePanicRecover, or call Triangulate, which
// falls back to ear clipping.
func TriangulateMonotone(polygon *Polygon) []*Triangle {
	n := len(polygon.Points)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}
	if n == 3 {
		return []*Triangle{{polygon.Points[0], polygon.Points[1], polygon.Points[2]}}
	}

	sorted, leftChain, bottom := mergeChains(polygon)
	isLeft := leftChain.Contains

	triangles := make([]*Triangle, 0, n-2)
	stack := make(PointStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := isLeft(p)

		if left != isLeft(stack.Peek()) {
			// Jumped to the other chain. Monotonicity guarantees every point on
			// the stack is visible from p, so the whole stack is fanned out.
			for !stack.Empty() {
				a := stack.Pop()
				if stack.Empty() {
					break
				}
				b := stack.Peek()
				if left {
					triangles = appendTriangle(triangles, &Triangle{p, a, b})
				} else {
					triangles = appendTriangle(triangles, &Triangle{a, p, b})
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
			continue
		}

		// Same chain: cut triangles for as long as p can see past the top of
		// the stack. The triangle is counterclockwise exactly when it can.
		v := stack.Pop()
		for !stack.Empty() {
			top := stack.Peek()
			var candidate *Triangle
			if left {
				candidate = &Triangle{p, top, v}
			} else {
				candidate = &Triangle{p, v, top}
			}
			if !IsCCW(candidate) {
				break
			}
			v = stack.Pop()
			triangles = append(triangles, candidate)
		}
		stack.Push(v)
		stack.Push(p)
	}

	// Whatever is left on the stack fans out from the bottom point.
	last := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if isLeft(last) {
			triangles = appendTriangle(triangles, &Triangle{bottom, p, last})
		} else {
			triangles = appendTriangle(triangles, &Triangle{bottom, last, p})
		}
		last = p
	}
	return triangles
}

// Merge the two chains of a monotone polygon, from the top down. The bottom
// point is returned separately rather than in the sorted list.
func mergeChains(polygon *Polygon) (sorted []*Point, leftChain PointSet, bottom *Point) {
	n := len(polygon.Points)
	top := 0
	for i, point := range polygon.Points {
		if point.Above(polygon.Points[top]) {
			top = i
		}
	}

	sorted = make([]*Point, 0, n)
	sorted = append(sorted, polygon.Points[top])
	leftChain = make(PointSet)

	// Counterclockwise from the top is the left chain.
	leftOffset, rightOffset := 1, 1
	for {
		leftPoint := polygon.Points[CircularIndex(top+leftOffset, n)]
		rightPoint := polygon.Points[CircularIndex(top-rightOffset, n)]
		if leftPoint == rightPoint {
			return sorted, leftChain, leftPoint
		}
		if leftPoint.Above(rightPoint) {
			leftChain.Add(leftPoint)
			sorted = append(sorted, leftPoint)
			leftOffset++
		} else {
			sorted = append(sorted, rightPoint)
			rightOffset++
		}
	}
}

func appendTriangle(triangles []*Triangle, triangle *Triangle) []*Triangle {
	if IsCW(triangle) && !triangle.IsDegenerate() {
		fatalf("triangle is clockwise: %v", triangle)
	}
	if triangle.IsDegenerate() {
		return triangles
	}
	return append(triangles, triangle)
}
