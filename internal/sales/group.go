// Package sales implements the grouping of sale records into settlement
// groups: records for the same client, flavor, and day collapse into one
// display row carrying combined quantity, combined value, and paid/pending
// counts.
package sales

import (
	"sort"
	"strings"
	"time"

	"github.com/marcelokbc/expense-manager/internal/models"
)

// StatusFilter selects groups by settlement status.
type StatusFilter string

const (
	StatusAll     StatusFilter = "all"
	StatusPaid    StatusFilter = "paid"
	StatusPending StatusFilter = "pending"
)

// Valid reports whether the filter is one of the accepted values.
func (f StatusFilter) Valid() bool {
	switch f {
	case StatusAll, StatusPaid, StatusPending:
		return true
	}
	return false
}

// GroupFilter holds the two independent predicates applied when grouping.
// Client is a case-insensitive substring match on the client name, applied
// to individual records before grouping so a group never mixes matching and
// non-matching records. Status filters whole groups after aggregation.
type GroupFilter struct {
	Client string
	Status StatusFilter
}

// Group is a derived settlement row over the sale records sharing one key.
// It is never persisted; edits and deletes "to the group" are defined as the
// same mutation applied to every contributing record.
type Group struct {
	Key             string               `json:"key"`
	Date            time.Time            `json:"date"`
	ClientName      string               `json:"client_name"`
	Flavor          string               `json:"flavor"`
	TotalValue      int64                `json:"total_value"`
	TotalQuantity   int                  `json:"total_quantity"`
	PaidQuantity    int                  `json:"paid_quantity"`
	PendingQuantity int                  `json:"pending_quantity"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	Paid            bool                 `json:"paid"`
	Notes           string               `json:"notes,omitempty"`
	Records         []models.Sale        `json:"records"`
}

// Key returns the grouping key for a sale: client name, flavor, and the
// date truncated to the day. Time-of-day never splits a group.
func Key(s models.Sale) string {
	return s.ClientName + "-" + s.Flavor + "-" + s.Date.Format("2006-01-02")
}

// Build collapses the list into groups, applies the filter, and returns the
// groups sorted by date descending. The sort is stable: groups on the same
// day keep their first-encounter order.
func Build(list []models.Sale, f GroupFilter) []Group {
	if f.Client != "" {
		needle := strings.ToLower(f.Client)
		filtered := make([]models.Sale, 0, len(list))
		for _, s := range list {
			if strings.Contains(strings.ToLower(s.ClientName), needle) {
				filtered = append(filtered, s)
			}
		}
		list = filtered
	}

	byKey := map[string]*Group{}
	var order []string
	for _, s := range list {
		key := Key(s)
		g, ok := byKey[key]
		if !ok {
			g = &Group{
				Key:           key,
				Date:          s.Date,
				ClientName:    s.ClientName,
				Flavor:        s.Flavor,
				PaymentMethod: s.PaymentMethod,
				Notes:         s.Notes,
			}
			byKey[key] = g
			order = append(order, key)
		}
		g.TotalValue += s.Value
		g.TotalQuantity++
		if s.Paid {
			g.PaidQuantity++
		} else {
			g.PendingQuantity++
		}
		g.Records = append(g.Records, s)
	}

	out := []Group{}
	for _, key := range order {
		g := byKey[key]
		g.Paid = g.PendingQuantity == 0
		switch f.Status {
		case StatusPaid:
			if g.PendingQuantity != 0 {
				continue
			}
		case StatusPending:
			if g.PendingQuantity == 0 {
				continue
			}
		}
		out = append(out, *g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// EditMode says whether an edit dialog should start out targeting the whole
// group or the single record.
type EditMode string

const (
	EditModeGroup      EditMode = "group"
	EditModeIndividual EditMode = "individual"
)

// EditSeed resolves the initial state for editing the group row containing
// the record with the given id. When the group has more than one
// contributing record, the mode defaults to group and the editable fields
// are seeded from the first contributing record in input encounter order;
// a single-record group defaults to individual mode. The boolean is false
// when no record carries the id.
func EditSeed(list []models.Sale, id string) (models.Sale, EditMode, bool) {
	var target *models.Sale
	for i := range list {
		if list[i].ID == id {
			target = &list[i]
			break
		}
	}
	if target == nil {
		return models.Sale{}, "", false
	}

	key := Key(*target)
	var members []models.Sale
	for _, s := range list {
		if Key(s) == key {
			members = append(members, s)
		}
	}
	if len(members) > 1 {
		return members[0], EditModeGroup, true
	}
	return *target, EditModeIndividual, true
}

// RankEntry is one row of a top-seller ranking: a flavor or client name with
// the number of records it appears on.
type RankEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats are the whole-collection counters shown above the sales table.
type Stats struct {
	Count         int         `json:"count"`
	TotalValue    int64       `json:"total_value"`
	PaidValue     int64       `json:"paid_value"`
	PendingValue  int64       `json:"pending_value"`
	SettledGroups int         `json:"settled_groups"`
	PartialGroups int         `json:"partial_groups"`
	TopFlavors    []RankEntry `json:"top_flavors"`
	TopClients    []RankEntry `json:"top_clients"`
}

// Tally computes the stats for the list without applying any filter.
func Tally(list []models.Sale) Stats {
	st := Stats{Count: len(list)}
	flavors := counter{}
	clients := counter{}
	for _, s := range list {
		st.TotalValue += s.Value
		if s.Paid {
			st.PaidValue += s.Value
		} else {
			st.PendingValue += s.Value
		}
		flavors.add(s.Flavor)
		clients.add(s.ClientName)
	}
	for _, g := range Build(list, GroupFilter{Status: StatusAll}) {
		if g.Paid {
			st.SettledGroups++
		} else if g.PaidQuantity > 0 {
			st.PartialGroups++
		}
	}
	st.TopFlavors = flavors.top(3)
	st.TopClients = clients.top(3)
	return st
}

// counter tallies record occurrences per name, remembering first-encounter
// order so ranking ties resolve deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func (c *counter) add(name string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) top(n int) []RankEntry {
	out := make([]RankEntry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, RankEntry{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
