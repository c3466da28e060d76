package scaffold

import (
	"strings"
	"text/template"

	"github.com/atheneum-dev/forge/internal/config"
)

// templateFuncs are the filters available inside file templates.
var templateFuncs = template.FuncMap{
	"lower":   strings.ToLower,
	"upper":   strings.ToUpper,
	"trim":    strings.TrimSpace,
	"replace": strings.ReplaceAll,
}

// Render renders template text with the resolved configuration as
// bindings. Unknown binding references are an error rather than silently
// empty output.
func Render(templateText string, bindings config.Configuration) (string, error) {
	t, err := template.New("file").Funcs(templateFuncs).Option("missingkey=error").Parse(templateText)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, map[string]interface{}(bindings)); err != nil {
		return "", err
	}
	return b.String(), nil
}
