package mapview

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/weissgruber/website/cmd/website/internal/viewmodels"
	"github.com/weissgruber/website/pkg/filters"
	"github.com/weissgruber/website/pkg/mapscene"
)

/*
CurrentDecades re-reads the selection from the page URL reported by htmx
in HX-Current-URL so that rapid toggles never work from stale state.
Plain requests carry the selection in their own ?decades.
*/
func CurrentDecades(r *http.Request) filters.DecadeSet {
	if current := r.Header.Get("HX-Current-URL"); current != "" {
		if u, err := url.Parse(current); err == nil {
			return filters.ParseDecadeSet(u.Query().Get("decades"))
		}
	}

	return filters.ParseDecadeSet(httphelpers.GetFromRequest[string](r, "decades"))
}

// MapURL keeps the comma list readable in the address bar.
func MapURL(selected filters.DecadeSet) string {
	return withDecades("/map", selected)
}

func APIURL(path string, selected filters.DecadeSet) string {
	return withDecades(path, selected)
}

func ToggleURL(decade int, selected filters.DecadeSet) string {
	return withDecades(fmt.Sprintf("/map/decades/%d/toggle", decade), selected)
}

func PopupURL(id string, imageIndex int) string {
	return fmt.Sprintf("/map/popup/%s?image=%d", url.PathEscape(id), imageIndex)
}

func LegendChips(legend []mapscene.LegendEntry, selected filters.DecadeSet) []viewmodels.LegendChip {
	result := make([]viewmodels.LegendChip, 0, len(legend))

	for _, entry := range legend {
		result = append(result, viewmodels.LegendChip{
			Decade:    entry.Decade,
			Label:     entry.Label,
			Color:     entry.Color,
			Active:    selected.Contains(entry.Decade),
			ToggleURL: ToggleURL(entry.Decade, selected),
		})
	}

	return result
}

func withDecades(path string, selected filters.DecadeSet) string {
	if selected.IsEmpty() {
		return path
	}

	return path + "?decades=" + selected.String()
}
