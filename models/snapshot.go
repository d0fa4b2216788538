package models

// Snapshot is the whole document the store persists: three collections,
// always read and written as one unit.
type Snapshot struct {
	Staff []StaffMember `json:"staff"`
	Qr    []QrBinding   `json:"qr"`
	Tips  []TipRecord   `json:"tips"`
}

// NewSnapshot returns an empty document with all collections initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Staff: []StaffMember{},
		Qr:    []QrBinding{},
		Tips:  []TipRecord{},
	}
}

// Clone returns a deep copy. Backends hand out clones so callers never
// mutate stored state except through an explicit Save.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Staff: make([]StaffMember, len(s.Staff)),
		Qr:    make([]QrBinding, len(s.Qr)),
		Tips:  make([]TipRecord, len(s.Tips)),
	}
	copy(out.Staff, s.Staff)
	copy(out.Qr, s.Qr)
	copy(out.Tips, s.Tips)
	return out
}

// FindStaff returns the staff member with the given id, or nil.
func (s *Snapshot) FindStaff(id string) *StaffMember {
	for i := range s.Staff {
		if s.Staff[i].ID == id {
			m := s.Staff[i]
			return &m
		}
	}
	return nil
}

// FindBinding returns the QR binding for the given token, or nil.
func (s *Snapshot) FindBinding(token string) *QrBinding {
	for i := range s.Qr {
		if s.Qr[i].Token == token {
			b := s.Qr[i]
			return &b
		}
	}
	return nil
}
