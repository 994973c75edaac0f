package views

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
)

const pageStyle = `body{font-family:monospace;background:#111;color:#ddd}
table{border-collapse:collapse}
td{width:18px;height:18px;text-align:center;font-size:9px;padding:0}
td.room{background:#6b4f2a}
td.hall{background:#c9c9c9;color:#111}
td.uncalculated{background:#181818}
td.distance{background:#23324a}`

// streamScript reloads the page whenever a new labyrinth is broadcast.
const streamScript = `(function(){
var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/stream");
var first=true;
ws.onmessage=function(ev){var m=JSON.parse(ev.data);if(m.type!=="LabyrinthBuilt"){return}if(first){first=false;return}location.reload()};
})();`

// LabyrinthPage renders a snapshot as an HTML grid, top row first.
func LabyrinthPage(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := fmt.Sprintf("Labyrinth %dx%d seed %d", s.Width, s.Height, s.Seed)
		if _, err := fmt.Fprintf(w, "<!doctype html><html><head><meta charset=\"utf-8\"><title>%s</title><style>%s</style></head><body>",
			templ.EscapeString(title), pageStyle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1><p>%d rooms, %d hall cells</p>",
			templ.EscapeString(title), len(s.Rooms), s.HallCells); err != nil {
			return err
		}
		if err := LabyrinthGrid(s).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "<script>%s</script></body></html>", streamScript)
		return err
	})
}

// LabyrinthGrid renders only the table of cells.
func LabyrinthGrid(s protocol.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="labyrinth">`); err != nil {
			return err
		}
		for y := s.Height - 1; y >= 0; y-- {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for x := 0; x < s.Width; x++ {
				class, text := cellClass(s.At(x, y))
				if _, err := fmt.Fprintf(w, `<td class="%s" title="%d,%d">%s</td>`, class, x, y, text); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>")
		return err
	})
}

func cellClass(v int) (string, string) {
	switch v {
	case protocol.CellRoom:
		return "room", ""
	case protocol.CellHall:
		return "hall", ""
	case protocol.CellUncalculated:
		return "uncalculated", ""
	}
	return "distance", strconv.Itoa(v)
}
