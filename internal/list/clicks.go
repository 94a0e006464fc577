package list

import (
	"time"

	"draglist/internal/domain"
)

// maxClickRecords bounds the click history ring. Range-select chords
// only ever look one record back, so a short ring is plenty.
const maxClickRecords = 5

// ClickRecord remembers one click on a value row. The index is the
// row's position at click time; it can go stale, which is why range
// resolution works from the id.
type ClickRecord struct {
	ID       domain.ItemID
	Index    int
	At       time.Time
	Modifier bool
}

type clickHistory struct {
	records []ClickRecord
}

func (h *clickHistory) push(r ClickRecord) {
	h.records = append(h.records, r)
	if len(h.records) > maxClickRecords {
		h.records = h.records[1:]
	}
}

func (h *clickHistory) last() (ClickRecord, bool) {
	if len(h.records) == 0 {
		return ClickRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// LastClick returns the most recent click record, if any.
func (m *Model) LastClick() (ClickRecord, bool) {
	return m.clicks.last()
}

// RecordClick appends a click on id to the history ring, evicting the
// oldest record once the ring is full. Stale ids are recorded anyway;
// they resolve to no-ops later.
func (m *Model) RecordClick(id domain.ItemID, modifier bool) {
	idx := m.index[id]
	m.clicks.push(ClickRecord{
		ID:       id,
		Index:    idx,
		At:       time.Now(),
		Modifier: modifier,
	})
}

// ClickCount returns the number of records currently held.
func (m *Model) ClickCount() int {
	return len(m.clicks.records)
}
