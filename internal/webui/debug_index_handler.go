package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

//go:embed debug_index.html
var templateFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	dataset := webUI.TradeManager.GetDataset()

	switch dataType {
	case "records":
		data = dataset.Records
		title = "Trade Dataset - Cleaned Records"
	case "dropped":
		data = dataset.DroppedRows
		title = "Trade Dataset - Dropped Row Count"
	case "path":
		data = dataset.Path
		title = "Trade Dataset - Source Path"
	default:
		data = map[string]string{
			"error": "Please use one of the following: records, dropped, path.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
