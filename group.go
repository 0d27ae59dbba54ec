package cvi

// GroupProfile aggregates profiles into an averaged profile.
//
// The average is recomputed from scratch on every membership change, so it
// always reflects the current members. That is linear in the member count,
// which suits groups of a few dozen people.
//
// GroupProfile is not safe for concurrent mutation.
type GroupProfile struct {
	name    string
	members []Profile
	average Profile
}

// NewGroupProfile creates a group from already-validated profiles.
// The members slice is copied.
func NewGroupProfile(name string, members []Profile) *GroupProfile {
	g := &GroupProfile{
		name:    name,
		members: append([]Profile(nil), members...),
	}
	g.update()
	return g
}

// Name returns the group name.
func (g *GroupProfile) Name() string {
	return g.name
}

// Members returns a copy of the members in membership order.
func (g *GroupProfile) Members() []Profile {
	return append([]Profile(nil), g.members...)
}

// Len returns the number of members.
func (g *GroupProfile) Len() int {
	return len(g.members)
}

// Average returns the averaged profile, named after the group.
// All scores are zero when the group is empty.
func (g *GroupProfile) Average() Profile {
	return g.average
}

// Contains reports whether a member with the given name exists.
func (g *GroupProfile) Contains(name string) bool {
	return g.index(name) >= 0
}

// AddProfile appends p and recomputes the average.
// It returns false and leaves the group untouched if a member with the same
// name already exists.
func (g *GroupProfile) AddProfile(p Profile) bool {
	if g.Contains(p.Name) {
		Logger().Debug("cvi: duplicate group member", "group", g.name, "name", p.Name)
		return false
	}
	g.members = append(g.members, p)
	g.update()
	return true
}

// RemoveProfile removes the first member named like p and recomputes the
// average. Removing a name that is not a member is a no-op.
func (g *GroupProfile) RemoveProfile(p Profile) {
	i := g.index(p.Name)
	if i < 0 {
		return
	}
	Logger().Debug("cvi: removing group member", "group", g.name, "name", p.Name)
	g.members = append(g.members[:i], g.members[i+1:]...)
	g.update()
}

func (g *GroupProfile) index(name string) int {
	for i, m := range g.members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// update recomputes the average from the current members.
func (g *GroupProfile) update() {
	avg := Profile{Name: g.name}
	n := len(g.members)
	if n == 0 {
		g.average = avg
		return
	}
	for _, m := range g.members {
		avg.Merchant += m.Merchant
		avg.Innovator += m.Innovator
		avg.Banker += m.Banker
		avg.Builder += m.Builder
	}
	avg.Merchant /= float64(n)
	avg.Innovator /= float64(n)
	avg.Banker /= float64(n)
	avg.Builder /= float64(n)
	g.average = avg
}
