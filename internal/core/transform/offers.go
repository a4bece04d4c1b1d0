package transform

// OfferSet хранит артикулы, известные площадке, в порядке их получения из API.
type OfferSet struct {
	order []string
	index map[string]struct{}
}

func NewOfferSet(offerIDs []string) *OfferSet {
	s := &OfferSet{index: make(map[string]struct{}, len(offerIDs))}
	for _, id := range offerIDs {
		if _, ok := s.index[id]; ok {
			continue
		}
		s.index[id] = struct{}{}
		s.order = append(s.order, id)
	}
	return s
}

func (s *OfferSet) Contains(offerID string) bool {
	_, ok := s.index[offerID]
	return ok
}

func (s *OfferSet) Len() int {
	return len(s.order)
}

// Remaining отслеживает артикулы, которые еще не встретились в данных поставщика.
// Исходный OfferSet при этом не меняется.
type Remaining struct {
	set     *OfferSet
	matched map[string]struct{}
}

func (s *OfferSet) Remaining() *Remaining {
	return &Remaining{set: s, matched: make(map[string]struct{})}
}

// Match отмечает артикул как найденный. Возвращает false, если артикул
// неизвестен площадке или уже был отмечен.
func (r *Remaining) Match(offerID string) bool {
	if !r.set.Contains(offerID) {
		return false
	}
	if _, ok := r.matched[offerID]; ok {
		return false
	}
	r.matched[offerID] = struct{}{}
	return true
}

// Unmatched возвращает оставшиеся артикулы в порядке OfferSet.
func (r *Remaining) Unmatched() []string {
	var ids []string
	for _, id := range r.set.order {
		if _, ok := r.matched[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}
