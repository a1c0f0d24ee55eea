// internal/engine/model/encoder.go

package model

import "slices"

// Encoder is a fitted label encoder: a class maps to its position in the
// class list the model was trained with.
type Encoder struct {
	classes []string
	index   map[string]int
}

func NewEncoder(classes []string) *Encoder {
	e := &Encoder{
		classes: slices.Clone(classes),
		index:   make(map[string]int, len(classes)),
	}
	for i, c := range e.classes {
		if _, dup := e.index[c]; !dup {
			e.index[c] = i
		}
	}
	return e
}

// Index reports the encoded index of name and whether the encoder knows it.
func (e *Encoder) Index(name string) (int, bool) {
	i, ok := e.index[name]
	return i, ok
}

func (e *Encoder) Classes() []string {
	return slices.Clone(e.classes)
}

func (e *Encoder) Len() int {
	return len(e.classes)
}
