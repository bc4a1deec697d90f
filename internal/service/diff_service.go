package service

import (
	"worldstate-be/internal/entity"
)

type IDiffService interface {
	// Changed compares two record lists positionally: a length mismatch is a
	// change, otherwise records are compared pairwise on their DiffFields.
	// Reordering counts as a change.
	Changed(old, new []entity.DomainRecord) bool
}

type diffService struct{}

func NewDiffService() IDiffService {
	return &diffService{}
}

func (s *diffService) Changed(old, new []entity.DomainRecord) bool {
	if len(old) != len(new) {
		return true
	}
	for i := range new {
		a := old[i].DiffFields()
		b := new[i].DiffFields()
		if len(a) != len(b) {
			return true
		}
		for j := range b {
			if a[j] != b[j] {
				return true
			}
		}
	}
	return false
}
