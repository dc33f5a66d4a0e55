// Package reconcile compares two snapshots of the same entity set.
//
// A snapshot is a slice of rows implementing Item. Compare computes the set
// difference "current minus previous" over each row's fingerprint, the same
// result a SQL EXCEPT over all compared columns would give, and classifies
// each surviving row as added (new key) or modified (known key, new values).
//
// # Usage Example
//
//	plan := reconcile.Compare(today, yesterday)
//	for _, row := range plan.Items {
//	    fmt.Println(row.Key(), plan.Kinds[row.Key()])
//	}
//	fmt.Println(plan.Summary.Changed())
//
// Ordering of the result follows the current snapshot; callers that need a
// particular order sort afterwards.
package reconcile
