package types

// Header is the catalogue-level metadata carried alongside the table.
// It is opaque to the filtering logic: loaded once, never modified, and
// re-attached unchanged to the output catalogue. Key order is preserved.
type Header struct {
	keys   []string
	values []string
	index  map[string]int
}

func NewHeader() *Header {
	return &Header{index: map[string]int{}}
}

func NewHeaderFromPairs(keys, values []string) *Header {
	h := NewHeader()
	for i, key := range keys {
		h.Set(key, values[i])
	}
	return h
}

func (h *Header) Set(key, value string) {
	if idx, found := h.index[key]; found {
		h.values[idx] = value
		return
	}
	h.index[key] = len(h.keys)
	h.keys = append(h.keys, key)
	h.values = append(h.values, value)
}

func (h *Header) Get(key string) (string, bool) {
	idx, found := h.index[key]
	if !found {
		return "", false
	}
	return h.values[idx], true
}

func (h *Header) Keys() []string {
	return h.keys
}

func (h *Header) Values() []string {
	return h.values
}

func (h *Header) Len() int {
	return len(h.keys)
}
