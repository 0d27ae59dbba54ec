package cvi

// Input selects what a render draws: the frame profile, whose polygons
// carry borders when anything sits beneath them, and the overlay profiles
// drawn underneath it.
//
// Input is a sealed interface; build one with Single, Group, Explicit or
// FrameFirst. None of them modifies the caller's data.
type Input interface {
	// Resolve returns the frame and overlay profiles.
	Resolve() (frame Profile, overlays []Profile, err error)

	inputMarker()
}

// Single renders one profile on its own. It never shows borders.
func Single(p Profile) Input {
	return singleInput{profile: p}
}

// Group renders the averaged profile of g as the frame over its members.
func Group(g *GroupProfile) Input {
	return groupInput{group: g}
}

// Explicit renders frame over the given overlays.
func Explicit(frame Profile, overlays ...Profile) Input {
	return explicitInput{frame: frame, overlays: append([]Profile(nil), overlays...)}
}

// FrameFirst treats the first profile as the frame and the rest as overlays.
// The slice is copied, never consumed.
func FrameFirst(profiles []Profile) Input {
	return frameFirstInput{profiles: append([]Profile(nil), profiles...)}
}

type singleInput struct {
	profile Profile
}

func (in singleInput) Resolve() (Profile, []Profile, error) {
	return in.profile, nil, nil
}

func (singleInput) inputMarker() {}

type groupInput struct {
	group *GroupProfile
}

func (in groupInput) Resolve() (Profile, []Profile, error) {
	if in.group == nil {
		return Profile{}, nil, &UnsupportedInputError{Value: in.group, Reason: "nil group"}
	}
	return in.group.Average(), in.group.Members(), nil
}

func (groupInput) inputMarker() {}

type explicitInput struct {
	frame    Profile
	overlays []Profile
}

func (in explicitInput) Resolve() (Profile, []Profile, error) {
	return in.frame, append([]Profile(nil), in.overlays...), nil
}

func (explicitInput) inputMarker() {}

type frameFirstInput struct {
	profiles []Profile
}

func (in frameFirstInput) Resolve() (Profile, []Profile, error) {
	if len(in.profiles) == 0 {
		return Profile{}, nil, &UnsupportedInputError{Value: in.profiles, Reason: reasonNoFrame}
	}
	return in.profiles[0], append([]Profile(nil), in.profiles[1:]...), nil
}

func (frameFirstInput) inputMarker() {}

// InputOf converts an untyped value into an Input:
// Profile and *Profile render Single, *GroupProfile renders Group, []Profile
// renders FrameFirst and an Input is returned as is. Anything else, nil
// included, is reported as *UnsupportedInputError.
func InputOf(v any) (Input, error) {
	switch x := v.(type) {
	case Input:
		return x, nil
	case Profile:
		return Single(x), nil
	case *Profile:
		if x == nil {
			return nil, &UnsupportedInputError{Value: v, Reason: "nil profile"}
		}
		return Single(*x), nil
	case *GroupProfile:
		if x == nil {
			return nil, &UnsupportedInputError{Value: v, Reason: "nil group"}
		}
		return Group(x), nil
	case []Profile:
		if len(x) == 0 {
			return nil, &UnsupportedInputError{Value: v, Reason: reasonNoFrame}
		}
		return FrameFirst(x), nil
	}
	return nil, &UnsupportedInputError{Value: v}
}
