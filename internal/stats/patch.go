package stats

// Assignment is one column set by a patch.
type Assignment struct {
	Column string
	Value  any
}

// Assignments lists the columns a patch sets, in canonical order. Column
// names always come from the static stat table.
func (p Patch) Assignments() []Assignment {
	var out []Assignment
	for _, d := range definitions {
		if v, ok := d.patch(&p); ok {
			out = append(out, Assignment{Column: d.column, Value: v})
		}
	}
	if p.Starter != nil {
		out = append(out, Assignment{Column: "starter", Value: *p.Starter})
	}
	return out
}

// IsEmpty reports whether the patch sets nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

// Apply copies every set field of the patch onto l.
func (p Patch) Apply(l *StatLine) {
	if p.Minutes != nil {
		l.Minutes = Minutes(p.Minutes.Rounded())
	}
	for s, d := range definitions {
		if Stat(s) == StatMinutes {
			continue
		}
		if v, ok := d.patch(&p); ok {
			*d.ptr(l).(*int) = v.(int)
		}
	}
	if p.Starter != nil {
		l.Starter = *p.Starter
	}
}
