package ecs

// Scheduler builds a fixed system order before handing it to a world.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Install registers the scheduled systems on the world in order.
func (s *Scheduler) Install(w *World) {
	for _, system := range s.systems {
		w.AddSystem(system)
	}
}
