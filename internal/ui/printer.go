package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"

	"icatest/internal/logger"
	"icatest/internal/winerror"
)

// Printer renders command results for the terminal.
type Printer struct {
	out          io.Writer
	colorEnabled bool
	hex          bool
	descriptions bool

	header *color.Color
	name   *color.Color
	value  *color.Color
	warn   *color.Color
	faint  *color.Color
}

// Option tweaks a Printer.
type Option func(*Printer)

// WithHex renders values as 0x-prefixed hexadecimal next to the decimal form.
func WithHex(enabled bool) Option {
	return func(p *Printer) { p.hex = enabled }
}

// WithDescriptions toggles the message column.
func WithDescriptions(enabled bool) Option {
	return func(p *Printer) { p.descriptions = enabled }
}

// NewPrinter constructs a Printer writing to out. Colour follows mode,
// resolved against out.
func NewPrinter(out io.Writer, mode logger.ColorMode, opts ...Option) *Printer {
	if out == nil {
		out = os.Stdout
	}

	p := &Printer{
		out:          out,
		colorEnabled: mode.Enabled(out),
		descriptions: true,
		header:       color.New(color.FgBlue, color.Bold),
		name:         color.New(color.FgGreen),
		value:        color.New(color.FgYellow, color.Bold),
		warn:         color.New(color.FgRed, color.Bold),
		faint:        color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.header, p.name, p.value, p.warn, p.faint} {
		if p.colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FormatValue renders a code value according to the printer settings.
func (p *Printer) FormatValue(code winerror.Code) string {
	dec := strconv.FormatUint(uint64(code), 10)
	if !p.hex {
		return dec
	}
	return fmt.Sprintf("%s (0x%04X)", dec, uint32(code))
}

// PrintTable renders infos as aligned columns.
func (p *Printer) PrintTable(infos []winerror.Info) {
	nameWidth := runewidth.StringWidth("NAME")
	valueWidth := runewidth.StringWidth("VALUE")
	for _, info := range infos {
		nameWidth = max(nameWidth, runewidth.StringWidth(info.Name))
		valueWidth = max(valueWidth, runewidth.StringWidth(p.FormatValue(info.Value)))
	}

	header := pad("NAME", nameWidth) + "  " + padLeft("VALUE", valueWidth)
	if p.descriptions {
		header += "  DESCRIPTION"
	}
	fmt.Fprintln(p.out, p.header.Sprint(header))

	for _, info := range infos {
		line := p.name.Sprint(pad(info.Name, nameWidth)) + "  " +
			p.value.Sprint(padLeft(p.FormatValue(info.Value), valueWidth))
		if p.descriptions {
			line += "  " + p.faint.Sprint(info.Description)
		}
		fmt.Fprintln(p.out, line)
	}
}

// PrintValue prints the value bound to a name, one per line.
func (p *Printer) PrintValue(name string, code winerror.Code) {
	fmt.Fprintf(p.out, "%s = %s\n", p.name.Sprint(name), p.value.Sprint(p.FormatValue(code)))
}

// PrintNames prints every name bound to code.
func (p *Printer) PrintNames(code winerror.Code, names []string) {
	colored := make([]string, len(names))
	for i, n := range names {
		colored[i] = p.name.Sprint(n)
	}
	fmt.Fprintf(p.out, "%s = %s\n", p.value.Sprint(p.FormatValue(code)), strings.Join(colored, ", "))
}

// PrintDetail renders a single table entry with its description.
func (p *Printer) PrintDetail(info winerror.Info) {
	p.PrintValue(info.Name, info.Value)
	if p.descriptions && info.Description != "" {
		fmt.Fprintf(p.out, "  %s\n", p.faint.Sprint(info.Description))
	}
}

// PrintMiss reports a query that matched nothing.
func (p *Printer) PrintMiss(query string) {
	fmt.Fprintf(p.out, "%s %s\n", p.warn.Sprint("✕"), query)
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-runewidth.StringWidth(s))) + s
}
