package transform

// Divide делит список на части по n элементов (последняя может быть короче).
func Divide[T any](items []T, n int) [][]T {
	if n <= 0 {
		n = len(items)
	}
	var chunks [][]T
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
