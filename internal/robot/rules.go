package robot

// CanAdd reports whether one more unit of part may be added to counts, given
// the target quantities. A part at its target quantity is never addable.
func CanAdd(part PartType, counts, target Counts) bool {
	if !part.Valid() || counts[part] >= target[part] {
		return false
	}

	info := catalogue[part]
	switch info.rule {
	case ruleNone:
		return true
	case rulePaired:
		// One free wheel per axle.
		return counts[info.dependsOn] > counts[part]
	case ruleFull:
		return counts[info.dependsOn] == target[info.dependsOn]
	default:
		return false
	}
}

// IsComplete reports whether counts matches target for every part type.
func IsComplete(counts, target Counts) bool {
	_, mismatch := FirstMismatch(counts, target)
	return !mismatch
}

// FirstMismatch returns the first part type, in display order, whose count
// differs from the target.
func FirstMismatch(counts, target Counts) (PartType, bool) {
	for _, p := range Parts() {
		if counts[p] != target[p] {
			return p, true
		}
	}
	return 0, false
}
