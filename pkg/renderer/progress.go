package renderer

// Progress receives one Add(1) per finished row. It is called from worker goroutines
// and must be safe for concurrent use; errors are logged and otherwise ignored.
type Progress interface {
	Add(n int) error
}

type noProgress struct{}

func (noProgress) Add(int) error { return nil }
