// Package server provides the local preview server for the generated icon
// set, with WebSocket-based live reload.
package server

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/paintmytown/iconsmith/internal/icon"
)

// galleryTemplate is the preview page: one cell per icon, served from the
// output directory under /icons/.
var galleryTemplate = template.Must(template.New("gallery").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>iconsmith preview</title>
<style>
  body { background: #18181c; color: #ddd; font: 14px/1.4 sans-serif; margin: 2rem; }
  h1 { font-weight: normal; }
  .grid { display: flex; flex-wrap: wrap; gap: 1.5rem; }
  figure { margin: 0; text-align: center; }
  img { display: block; margin: 0 auto 0.5rem; border-radius: 18%; }
  figcaption { color: #888; font-size: 12px; }
</style>
</head>
<body>
<h1>iconsmith preview</h1>
<div class="grid">
{{- range .Entries }}
  <figure>
    <img src="/icons/{{ .Name }}" width="96" height="96" alt="{{ .Name }}">
    <figcaption>{{ .Name }}<br>{{ .Pixels }}&times;{{ .Pixels }}</figcaption>
  </figure>
{{- end }}
</div>
</body>
</html>
`))

// liveReloadScript is the JavaScript injected into the gallery page to
// reload the browser when the set is regenerated. The %d is the server port.
const liveReloadScript = `<script>
(function() {
  var url = "ws://" + location.hostname + ":%d/__iconsmith/ws";
  var ws;
  function connect() {
    ws = new WebSocket(url);
    ws.onmessage = function(e) {
      if (e.data === "reload") {
        location.reload();
      }
    };
    ws.onclose = function() {
      setTimeout(connect, 1000);
    };
  }
  connect();
})();
</script>`

// GalleryHTML renders the preview page for the given icon set. When
// livereload is enabled the reload script is inserted before </body>.
func GalleryHTML(set []icon.Entry, livereload bool, port int) ([]byte, error) {
	var buf bytes.Buffer
	if err := galleryTemplate.Execute(&buf, struct{ Entries []icon.Entry }{set}); err != nil {
		return nil, err
	}

	html := buf.Bytes()
	if !livereload {
		return html, nil
	}
	return injectLiveReload(html, port), nil
}

// injectLiveReload inserts the live reload WebSocket script into the HTML
// document, immediately before </body> when present.
func injectLiveReload(html []byte, port int) []byte {
	script := fmt.Appendf(nil, liveReloadScript, port)

	idx := bytes.LastIndex(html, []byte("</body>"))
	if idx == -1 {
		return append(html, script...)
	}

	result := make([]byte, 0, len(html)+len(script))
	result = append(result, html[:idx]...)
	result = append(result, script...)
	result = append(result, html[idx:]...)
	return result
}
