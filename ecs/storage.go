package ecs

// entityStore tracks entity generations and free ids.
type entityStore struct {
	gen   []generation
	free  []entityID
	alive int
}

func (s *entityStore) create() Entity {
	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.gen = append(s.gen, 0)
		id = entityID(len(s.gen))
	}
	s.alive++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.id()-1]++
	s.free = append(s.free, e.id())
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == e.generation()
}

func (s *entityStore) each(fn func(Entity)) {
	free := make(map[entityID]struct{}, len(s.free))
	for _, id := range s.free {
		free[id] = struct{}{}
	}
	for i, g := range s.gen {
		id := entityID(i + 1)
		if _, dead := free[id]; dead {
			continue
		}
		fn(makeEntity(id, g))
	}
}
