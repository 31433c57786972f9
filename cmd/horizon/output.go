package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/horizon"
)

var (
	infoColor     = color.New(color.FgCyan)
	noticeColor   = color.New(color.FgBlue)
	startColor    = color.New(color.FgMagenta)
	successColor  = color.New(color.FgGreen)
	warnColor     = color.New(color.FgYellow)
	errorColor    = color.New(color.FgRed)
	progressColor = color.New(color.FgHiBlack)
	promptColor   = color.New(color.FgBlue, color.Bold)
)

// printer writes user facing console output.
type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) Info(msg string)     { _, _ = infoColor.Fprintln(p.w, msg) }
func (p *printer) Notice(msg string)   { _, _ = noticeColor.Fprintln(p.w, msg) }
func (p *printer) Start(msg string)    { _, _ = startColor.Fprintln(p.w, msg) }
func (p *printer) Success(msg string)  { _, _ = successColor.Fprintln(p.w, msg) }
func (p *printer) Warn(msg string)     { _, _ = warnColor.Fprintln(p.w, msg) }
func (p *printer) Error(msg string)    { _, _ = errorColor.Fprintln(p.w, msg) }
func (p *printer) Progress(msg string) { _, _ = progressColor.Fprintln(p.w, msg) }

// Prompt prints msg without a line break.
func (p *printer) Prompt(msg string) { _, _ = promptColor.Fprint(p.w, msg) }

// Println writes plain text.
func (p *printer) Println(a ...any) { _, _ = fmt.Fprintln(p.w, a...) }

// Reply prints the model's final answer.
func (p *printer) Reply(text string) {
	p.Success("\nHorizon:")
	p.Println(text)
}

// Failure reports an error of a conversation turn by its category.
func (p *printer) Failure(err error) {
	switch horizon.Classify(err) {
	case horizon.FailureRateLimit:
		p.Error("\nRate limit or quota exceeded for this API key.")
		p.Warn("Try again later or use another API key: run `horizon auth` to replace it.")
		p.Progress(err.Error())

	case horizon.FailureLoopLimit:
		p.Error("\nHorizon stopped: tool loop limit exceeded. Raise it with --loop-limit if the task needs more steps.")

	default:
		p.Error("\nError communicating with AI: " + err.Error())
	}
}
