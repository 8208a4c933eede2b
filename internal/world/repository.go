package world

// Repository indexes rooms by the ID they were declared under. It is only
// used while a world is being loaded; the loaded rooms reference each other
// directly.
type Repository struct {
	rooms map[string]*Room
	order []string
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{rooms: make(map[string]*Room)}
}

// Put stores room under id. A room already stored under id is replaced in
// place and keeps its position.
func (r *Repository) Put(id string, room *Room) {
	if _, exists := r.rooms[id]; !exists {
		r.order = append(r.order, id)
	}
	r.rooms[id] = room
}

// GetByID returns the room stored under id, or nil if there is none.
func (r *Repository) GetByID(id string) *Room {
	return r.rooms[id]
}

// All returns the stored rooms in insertion order.
func (r *Repository) All() []*Room {
	rooms := make([]*Room, 0, len(r.order))
	for _, id := range r.order {
		rooms = append(rooms, r.rooms[id])
	}
	return rooms
}

// Count returns the number of rooms in the repository.
func (r *Repository) Count() int {
	return len(r.order)
}
