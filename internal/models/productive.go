package models

import (
	"sort"
	"time"
)

// ProductiveDays is the set of dates the user marked as productive.
// It only grows; there is no removal.
type ProductiveDays struct {
	days map[time.Time]struct{}
}

func NewProductiveDays(dates ...time.Time) *ProductiveDays {
	p := &ProductiveDays{days: make(map[time.Time]struct{}, len(dates))}
	for _, d := range dates {
		p.Add(d)
	}
	return p
}

// Add inserts d and reports whether it was new.
func (p *ProductiveDays) Add(d time.Time) bool {
	if p.days == nil {
		p.days = make(map[time.Time]struct{})
	}
	key := dateKey(d)
	if _, ok := p.days[key]; ok {
		return false
	}
	p.days[key] = struct{}{}
	return true
}

func (p *ProductiveDays) Has(d time.Time) bool {
	if p == nil {
		return false
	}
	_, ok := p.days[dateKey(d)]
	return ok
}

func (p *ProductiveDays) Len() int {
	if p == nil {
		return 0
	}
	return len(p.days)
}

// Sorted returns the dates in ascending order
func (p *ProductiveDays) Sorted() []time.Time {
	if p == nil {
		return nil
	}
	out := make([]time.Time, 0, len(p.days))
	for d := range p.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
