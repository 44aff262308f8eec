package assets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const deckTemplateName = "deck.md.go.tmpl"

//go:embed templates/deck.md.go.tmpl
var fallbackDeckTemplate string

func ParseDeckTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, deckTemplateName, fallbackDeckTemplate)
}

// CheckDeckTemplate parses the template file at templatePath without falling back to the embedded one.
func CheckDeckTemplate(templatePath string) error {
	info, err := os.Stat(templatePath)
	if err != nil {
		return fmt.Errorf("os.Stat(%s) > %w", templatePath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", templatePath)
	}
	if _, err := template.New(filepath.Base(templatePath)).Funcs(templateFuncs()).ParseFiles(templatePath); err != nil {
		return fmt.Errorf("template.ParseFiles(%s) > %w", templatePath, err)
	}
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
		"inc": func(i int) int {
			return i + 1
		},
	}
}

func parseTemplateWithFallback(templatePath string, fallbackName string, fallbackTemplate string) (*template.Template, error) {
	funcMap := templateFuncs()

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
