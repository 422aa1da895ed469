package adapter

import (
	"bytes"
	"fmt"
	"html/template"
)

var mailBodyTemplate = template.Must(template.New("mail").Parse(`<h1>{{.Sender}}:</h1><p>{{.Message}}</p>`))

// renderMailBody renders the HTML body with sender and message escaped.
func renderMailBody(sender, message string) (string, error) {
	var buf bytes.Buffer
	err := mailBodyTemplate.Execute(&buf, struct{ Sender, Message string }{sender, message})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingMessage, err)
	}
	return buf.String(), nil
}
