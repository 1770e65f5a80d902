// Where: internal/dockerfile/renderer.go
// What: Render the Dockerfile for a build recipe.
// Why: Keep the image recipe in one reviewed template instead of string concatenation.
package dockerfile

import (
	"bytes"
	"embed"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/wsgibox/wsgibox/internal/meta"
	"github.com/wsgibox/wsgibox/internal/recipe"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	tmplOnce sync.Once
	tmplErr  error
	tmpl     *template.Template
)

type templateData struct {
	BaseImage     string
	Requirements  string
	AppFile       string
	Port          int
	PortEnvVar    string
	LaunchCommand string
}

// Render produces the Dockerfile content for the recipe. File references use
// base names because staging flattens the build context.
func Render(r recipe.Recipe) (string, error) {
	t, err := loadTemplate()
	if err != nil {
		return "", err
	}

	data := templateData{
		BaseImage:     r.BaseImage,
		Requirements:  path.Base(r.Requirements),
		AppFile:       path.Base(r.AppFile),
		Port:          r.Port,
		PortEnvVar:    meta.PortEnvVar,
		LaunchCommand: r.LaunchCommand(),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate() (*template.Template, error) {
	tmplOnce.Do(func() {
		tmpl, tmplErr = template.New("dockerfile.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/dockerfile.tmpl")
	})
	return tmpl, tmplErr
}
