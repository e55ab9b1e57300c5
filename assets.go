package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html static/*
var assets embed.FS

var templateFuncs = template.FuncMap{
	"ms": func(d time.Duration) int64 { return d.Milliseconds() },
	"stagger": func(i int, step time.Duration) int64 {
		return Stagger(i, step).Milliseconds()
	},
	"para": paragraph,
}

// loadTemplates parses the embedded page templates.
func loadTemplates() (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs).ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// staticFiles is the embedded static directory rooted at its contents.
func staticFiles() (fs.FS, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	return sub, nil
}
