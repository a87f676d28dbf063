package game

import "sweepsnake/internal/geom"

// advance moves the whole body by distance: the tail is eaten from the
// back, then the head is pushed forward by the same amount.
func (g *Game) advance(distance float64) {
	budget := distance
	body := g.snake

	var tail geom.Vector
	hasTail := false
	for len(body) > 1 {
		point, next := body[0], body[1]
		body = body[1:]

		seg := geom.NewSegment(point, next)
		length := seg.Length()
		if length < budget {
			budget -= length
			continue
		}

		// The tail stops on this segment.
		tail = point
		hasTail = true
		if p, ok := resolveSweep(next.X, g.sweepBound, g.polarity); ok {
			g.setPolarity(p, next)
			tail = point.Add(seg.Vector().Normalize().ScaleBy(budget * p.Sign()))
		}
		break
	}

	snake := make([]geom.Vector, 0, len(body)+1)
	if hasTail {
		snake = append(snake, tail)
	}
	snake = append(snake, body...)

	last := len(snake) - 1
	snake[last] = snake[last].Add(g.direction.ScaleBy(distance * g.polarity.Sign()))
	g.snake = snake
}

func (g *Game) setPolarity(p Polarity, at geom.Vector) {
	if p == g.polarity {
		return
	}
	g.polarity = p
	g.events.Emit(Event{Type: EventBounce, X: at.X, Y: at.Y, Data: int(p)})
}
