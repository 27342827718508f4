// Package pathfind measures distances between rooms of a maze.
// Every door costs one step.
package pathfind

import (
	"github.com/zyedidia/generic/mapset"

	"labyrinth/pkg/engine/pqueue"
	"labyrinth/pkg/engine/world"
)

// ShortestPathLength returns the number of doors on the shortest path from start
// to destination. ok is false when no path exists.
func ShortestPathLength(start, destination *world.Room) (hops int, ok bool) {
	if destination == nil {
		return 0, false
	}
	_, hops, ok = NearestMatch(start, func(r *world.Room) bool {
		return r == destination
	})
	return hops, ok
}

// NearestMatch searches outwards from start and returns the closest room for which
// goal returns true, together with its distance in doors.
func NearestMatch(start *world.Room, goal func(*world.Room) bool) (*world.Room, int, bool) {
	if start == nil || goal == nil {
		return nil, 0, false
	}

	frontier := pqueue.New[*world.Room]()
	visited := mapset.New[*world.Room]()

	frontier.Push(start, 0)

	for !frontier.IsEmpty() {
		current, cost, _ := frontier.Pop()

		if goal(current) {
			return current, cost, true
		}

		visited.Put(current)

		for _, next := range current.Neighbours() {
			if visited.Has(next) {
				continue
			}
			frontier.Push(next, cost+1)
		}
	}

	return nil, 0, false
}

// Reachable returns the number of rooms reachable from start, start included
func Reachable(start *world.Room) int {
	if start == nil {
		return 0
	}

	visited := mapset.New[*world.Room]()
	queue := []*world.Room{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbours() {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited.Size()
}
