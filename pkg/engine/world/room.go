// Package world provides the maze primitives: directions, rooms and the grid
// used while a maze is being carved.
package world

// Room is a single node of the maze graph.
// Rooms are compared by identity; two rooms with the same description are distinct.
type Room struct {
	id          int
	description string
	end         bool

	// Navigation - links to adjacent rooms, indexed by Direction
	exits [directionCount]*Room
}

// NewRoom creates a room with no exits
func NewRoom(id int, description string) *Room {
	return &Room{
		id:          id,
		description: description,
	}
}

// ID returns the room's index within its maze
func (r *Room) ID() int {
	return r.id
}

// Description returns the room description (a message catalog key)
func (r *Room) Description() string {
	return r.description
}

// IsEnd returns true if entering this room finishes the maze
func (r *Room) IsEnd() bool {
	return r.end
}

// MarkEnd flags the room as an exit of the maze. The flag is never cleared.
func (r *Room) MarkEnd() {
	r.end = true
}

// ExitTo returns the neighbouring room in the given direction, or nil if there is no door
func (r *Room) ExitTo(dir Direction) *Room {
	if r == nil || !dir.IsValid() {
		return nil
	}
	return r.exits[dir]
}

// Exits returns the directions that have a door, in direction order
func (r *Room) Exits() []Direction {
	var dirs []Direction
	for _, dir := range AllDirections() {
		if r.exits[dir] != nil {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// ExitCount returns the number of doors leading out of the room
func (r *Room) ExitCount() int {
	n := 0
	for _, neighbour := range r.exits {
		if neighbour != nil {
			n++
		}
	}
	return n
}

// Neighbours returns all rooms reachable through a single door
func (r *Room) Neighbours() []*Room {
	var rooms []*Room
	for _, dir := range AllDirections() {
		if n := r.exits[dir]; n != nil {
			rooms = append(rooms, n)
		}
	}
	return rooms
}

// Connect adds a door from r to other in direction dir and the matching door back
func (r *Room) Connect(dir Direction, other *Room) {
	if r == nil || other == nil || !dir.IsValid() {
		return
	}
	r.exits[dir] = other
	other.exits[dir.Opposite()] = r
}
