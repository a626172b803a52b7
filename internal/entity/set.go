// internal/entity/set.go
package entity

// Set — неупорядоченный набор активных объектов одной категории.
// Удаление отложенное: во время прохода индексы только помечаются,
// сжатие выполняется после него.
type Set[T Entity] struct {
	items  []T
	doomed []int
}

func NewSet[T Entity]() *Set[T] {
	return &Set[T]{}
}

func (s *Set[T]) Add(e T) {
	s.items = append(s.items, e)
}

func (s *Set[T]) Len() int {
	return len(s.items)
}

// Sweep проходит по всем объектам, удаляет те, для которых remove вернул true,
// и возвращает число удалённых.
func (s *Set[T]) Sweep(remove func(T) bool) int {
	s.doomed = s.doomed[:0]
	for i, e := range s.items {
		if remove(e) {
			s.doomed = append(s.doomed, i)
		}
	}
	if len(s.doomed) == 0 {
		return 0
	}

	kept := s.items[:0]
	d := 0
	for i, e := range s.items {
		if d < len(s.doomed) && s.doomed[d] == i {
			d++
			continue
		}
		kept = append(kept, e)
	}
	// отпускаем ссылки в хвосте
	var zero T
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = zero
	}
	s.items = kept
	return len(s.doomed)
}
