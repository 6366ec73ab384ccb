package cinema

// FilterActors narrows a loaded actor list without another backend call.
// The result keeps the input order and is never nil.
func FilterActors(actors []Actor, filter ActorFilter) []Actor {
	matched := make([]Actor, 0, len(actors))

	for _, actor := range actors {
		if filter.Match(actor) {
			matched = append(matched, actor)
		}
	}

	return matched
}

func FilterCrew(members []CrewMember, filter CrewFilter) []CrewMember {
	matched := make([]CrewMember, 0, len(members))

	for _, member := range members {
		if filter.Match(member) {
			matched = append(matched, member)
		}
	}

	return matched
}
