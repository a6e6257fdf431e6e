// Package powerapps holds the catalogue of prompt templates for the
// calibration/metrology power apps. Each app describes a small form; Render
// turns submitted field values into a ready-to-send chat prompt.
package powerapps

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed apps.yaml
var appsYAML []byte

// ErrUnknownApp marks a render request for an app id not in the catalogue.
var ErrUnknownApp = errors.New("unknown power app")

// ErrMissingField marks a render request with a required field left blank.
var ErrMissingField = errors.New("missing required field")

// Field describes one form input of a power app.
type Field struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Placeholder string `yaml:"placeholder" json:"placeholder,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Type        string `yaml:"type" json:"type,omitempty"`
	Required    bool   `yaml:"required" json:"required,omitempty"`
}

// App is one power app definition.
type App struct {
	ID                    string  `yaml:"id" json:"id"`
	Name                  string  `yaml:"name" json:"name"`
	Tagline               string  `yaml:"tagline" json:"tagline"`
	Description           string  `yaml:"description" json:"description"`
	Icon                  string  `yaml:"icon" json:"icon"`
	Color                 string  `yaml:"color" json:"color"`
	SuggestedSystemPrompt string  `yaml:"suggested_system_prompt" json:"suggestedSystemPrompt,omitempty"`
	Fields                []Field `yaml:"fields" json:"fields"`
	Template              string  `yaml:"template" json:"-"`

	tmpl *template.Template
}

type catalogFile struct {
	Apps []App `yaml:"apps"`
}

var apps = mustLoad()

func mustLoad() []App {
	var file catalogFile
	if err := yaml.Unmarshal(appsYAML, &file); err != nil {
		panic(fmt.Sprintf("powerapps: parse apps.yaml: %v", err))
	}
	for i := range file.Apps {
		app := &file.Apps[i]
		tmpl, err := template.New(app.ID).Parse(app.Template)
		if err != nil {
			panic(fmt.Sprintf("powerapps: parse template for %s: %v", app.ID, err))
		}
		app.tmpl = tmpl
	}
	return file.Apps
}

// Catalog returns the ordered power app catalogue.
func Catalog() []App {
	out := make([]App, len(apps))
	copy(out, apps)
	return out
}

// Lookup returns the app with the given id.
func Lookup(id string) (App, bool) {
	for _, app := range apps {
		if app.ID == id {
			return app, true
		}
	}
	return App{}, false
}

// Render produces the chat prompt for the given app from submitted field
// values. Required fields must be non-blank after trimming; unknown value
// keys are ignored.
func Render(appID string, values map[string]string) (string, error) {
	app, ok := Lookup(appID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownApp, appID)
	}

	for _, field := range app.Fields {
		if field.Required && strings.TrimSpace(values[field.ID]) == "" {
			return "", fmt.Errorf("%w: %s", ErrMissingField, field.ID)
		}
	}

	data := make(map[string]string, len(values))
	for k, v := range values {
		data[k] = v
	}

	var sb strings.Builder
	if err := app.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", appID, err)
	}
	return sb.String(), nil
}
