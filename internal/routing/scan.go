package routing

// stage produces one batch of values, or an error that aborts the scan.
type stage[T any] func() ([]T, error)

// scanFirst runs stages strictly in order and returns the first non-empty
// batch. A stage error aborts immediately. All stages empty yields nil, nil:
// "nothing found" is not an error at this level.
func scanFirst[T any](stages ...stage[T]) ([]T, error) {
	for _, s := range stages {
		out, err := s()
		if err != nil {
			return nil, err
		}
		if len(out) > 0 {
			return out, nil
		}
	}
	return nil, nil
}
