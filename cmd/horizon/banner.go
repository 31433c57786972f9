package main

import (
	"bytes"
	"io"

	"github.com/dimiro1/banner"
	"github.com/fatih/color"
)

const bannerTemplate = `
{{ .AnsiColor.BrightCyan }}{{ .Title "Horizon" "" 2 }}{{ .AnsiColor.Default }}
  {{ .AnsiColor.BrightBlack }}VERSION{{ .AnsiColor.Default }}  ·  {{ .AnsiColor.Magenta }}Your personal AI terminal assistant{{ .AnsiColor.Default }}
  {{ .AnsiColor.BrightBlack }}─────────────────────────────────────────────────────────────{{ .AnsiColor.Default }}
  {{ .AnsiColor.Yellow }}tip{{ .AnsiColor.Default }} → run {{ .AnsiColor.Cyan }}horizon auth{{ .AnsiColor.Default }} to get started

`

func printBanner(w io.Writer) {
	tpl := bytes.Replace([]byte(bannerTemplate), []byte("VERSION"), []byte("v"+version), 1)
	banner.Init(w, true, !color.NoColor, bytes.NewBuffer(tpl))
}
