package build

// SourceSet is a named code group contributed by a facility. SrcDirs hold
// source roots; ResourceDirs are only enumerated by facilities that combine
// sources with resources.
type SourceSet struct {
	Name         string
	Facility     string
	SrcDirs      []string
	ResourceDirs []string
}

// ID is unique across facilities.
func (s *SourceSet) ID() string { return s.Facility + ":" + s.Name }

// SourceSetContainer is an ordered, live collection of source sets.
// Observers registered with All see every current and future member.
type SourceSetContainer struct {
	sets      []*SourceSet
	byID      map[string]*SourceSet
	observers []func(*SourceSet)
}

// NewSourceSetContainer returns an empty container.
func NewSourceSetContainer() *SourceSetContainer {
	return &SourceSetContainer{byID: make(map[string]*SourceSet)}
}

// Add appends a source set and notifies observers.
func (c *SourceSetContainer) Add(s *SourceSet) error {
	if s == nil || s.Name == "" {
		return configErrorf("source set", "name is required")
	}
	if _, exists := c.byID[s.ID()]; exists {
		return configErrorf(s.ID(), "source set already exists")
	}
	c.byID[s.ID()] = s
	c.sets = append(c.sets, s)
	for _, fn := range c.observers {
		fn(s)
	}
	return nil
}

// Track adds s unless an entry with the same ID is present.
func (c *SourceSetContainer) Track(s *SourceSet) {
	if _, exists := c.byID[s.ID()]; exists {
		return
	}
	_ = c.Add(s)
}

// Get returns the source set with the given ID.
func (c *SourceSetContainer) Get(id string) (*SourceSet, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Remove drops the source set with the given ID.
func (c *SourceSetContainer) Remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, s := range c.sets {
		if s.ID() == id {
			c.sets = append(c.sets[:i], c.sets[i+1:]...)
			break
		}
	}
	return true
}

// Retain keeps only members whose name is listed. Unknown names are
// returned so callers can report them.
func (c *SourceSetContainer) Retain(names []string) (missing []string) {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = false
	}
	for _, s := range c.Snapshot() {
		if _, ok := keep[s.Name]; ok {
			keep[s.Name] = true
			continue
		}
		c.Remove(s.ID())
	}
	for _, n := range names {
		if !keep[n] {
			missing = append(missing, n)
		}
	}
	return missing
}

// All calls fn for every current member and for every member added later.
func (c *SourceSetContainer) All(fn func(*SourceSet)) {
	for _, s := range c.Snapshot() {
		fn(s)
	}
	c.observers = append(c.observers, fn)
}

// Snapshot returns the current members in insertion order. The slice is a
// copy; later additions do not show up in it.
func (c *SourceSetContainer) Snapshot() []*SourceSet {
	return append([]*SourceSet(nil), c.sets...)
}

// Len returns the number of members.
func (c *SourceSetContainer) Len() int { return len(c.sets) }
