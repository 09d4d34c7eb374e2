package tree

// WalkFunc is called once for every directory visited by Walk.
type WalkFunc func(dir *Directory) error

// Walk visits root and every directory below it exactly once, depth first.
// It uses an explicit stack, so deep trees do not grow the goroutine stack.
// A non-nil error from fn stops the walk and is returned unchanged.
func Walk(root *Directory, fn WalkFunc) error {
	stack := []*Directory{root}

	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(dir); err != nil {
			return err
		}

		stack = append(stack, dir.Subdirectories()...)
	}

	return nil
}
