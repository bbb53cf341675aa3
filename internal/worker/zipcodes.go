package worker

import "slices"

// WatchZip добавляет индекс в список отслеживаемых (если ещё нет).
func (w *Scanner) WatchZip(zip string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if slices.Contains(w.zipCodes, zip) {
		return false
	}

	w.zipCodes = append(w.zipCodes, zip)
	return true
}

// UnwatchZip удаляет индекс, порядок остальных сохраняется.
func (w *Scanner) UnwatchZip(zip string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := slices.Index(w.zipCodes, zip)
	if i < 0 {
		return false
	}

	w.zipCodes = slices.Delete(w.zipCodes, i, i+1)
	return true
}

// SetZipCodes заменяет список, дубликаты отбрасываются.
func (w *Scanner) SetZipCodes(zips []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.zipCodes = w.zipCodes[:0]
	for _, z := range zips {
		if !slices.Contains(w.zipCodes, z) {
			w.zipCodes = append(w.zipCodes, z)
		}
	}
}

func (w *Scanner) ClearZipCodes() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.zipCodes = nil
}

func (w *Scanner) ZipCodes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.zipCodes)
}

// Watched пустой список - отслеживаются все индексы.
func (w *Scanner) Watched(zip string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.zipCodes) == 0 || slices.Contains(w.zipCodes, zip)
}
