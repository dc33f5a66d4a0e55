package reconcile

// Compare returns the rows of current that do not appear in previous.
// Rows are compared by fingerprint with set semantics: identical duplicates
// collapse to one row, and rows present in both snapshots are dropped.
func Compare[T Item](current, previous []T) Plan[T] {
	prevRows := make(map[string]struct{}, len(previous))
	prevKeys := make(map[string]struct{}, len(previous))
	for _, item := range previous {
		prevRows[item.Fingerprint()] = struct{}{}
		prevKeys[item.Key()] = struct{}{}
	}

	plan := Plan[T]{
		Items: make([]T, 0),
		Kinds: make(map[string]ChangeKind),
	}
	plan.Summary.Previous = len(prevRows)

	seen := make(map[string]struct{}, len(current))
	for _, item := range current {
		fp := item.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}

		if _, ok := prevRows[fp]; ok {
			plan.Summary.Unchanged++
			continue
		}

		kind := ChangeAdded
		if _, ok := prevKeys[item.Key()]; ok {
			kind = ChangeModified
			plan.Summary.Modified++
		} else {
			plan.Summary.Added++
		}

		plan.Items = append(plan.Items, item)
		plan.Kinds[item.Key()] = kind
	}
	plan.Summary.Current = len(seen)

	return plan
}

// Except returns only the changed rows of Compare.
func Except[T Item](current, previous []T) []T {
	return Compare(current, previous).Items
}
