package geom

import (
	"github.com/matzehuels/chartframe/pkg/domain"
	"github.com/matzehuels/chartframe/pkg/series"
)

// LegendItem is one legend entry.
type LegendItem struct {
	Key        series.Key `json:"key" bson:"key"`
	Name       string     `json:"name" bson:"name"`
	Color      string     `json:"color" bson:"color"`
	Deselected bool       `json:"deselected,omitempty" bson:"deselected,omitempty"`
}

// Legend lists every series in declaration order, deselected ones
// included.
func Legend(r *domain.Result, colors map[series.Key]string) []LegendItem {
	if r == nil {
		return nil
	}
	visible := make(map[series.Key]bool)
	for _, ds := range r.Series.All() {
		visible[ds.Key] = true
	}
	seen := make(map[series.Key]bool, len(r.All))
	items := make([]LegendItem, 0, len(r.All))
	for _, ds := range r.All {
		if seen[ds.Key] {
			continue
		}
		seen[ds.Key] = true
		items = append(items, LegendItem{
			Key:        ds.Key,
			Name:       ds.Name,
			Color:      colors[ds.Key],
			Deselected: !visible[ds.Key],
		})
	}
	return items
}
