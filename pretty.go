package forest

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// visitKind distinguishes the token classes of a tour dump.
type visitKind int8

const (
	enterVisit visitKind = iota
	returnVisit
	rootVisit
)

func makeDefaultPalette() map[visitKind]*color.Color {
	palette := map[visitKind]*color.Color{
		rootVisit:   color.New(color.FgRed, color.Bold),
		enterVisit:  color.New(color.FgBlue),
		returnVisit: color.New(color.Faint),
	}
	return palette
}

// PrintTour outputs the Euler tour of the tree containing x to stdout.
//
// If stdout is an interactive terminal, tokens are colored and lines wrap
// to the terminal's width.
func PrintTour[K comparable](f *Forest[K], x K) error {
	return fprintTour(os.Stdout, f, x, makeDefaultPalette(), lineWidthFromTerminal())
}

// FprintTour outputs the Euler tour of the tree containing x to w, as a
// bracketed token list: ⟨x opens x's subtree, x⟩ closes a child of x.
// Output to w is plain; PrintTour adds colors for terminals.
func FprintTour[K comparable](w io.Writer, f *Forest[K], x K) error {
	return fprintTour(w, f, x, nil, 65)
}

func fprintTour[K comparable](w io.Writer, f *Forest[K], x K, palette map[visitKind]*color.Color,
	linewidth int) error {
	//
	visits, err := f.Tour(x)
	if err != nil {
		return err
	}
	root, err := f.Root(x)
	if err != nil {
		return err
	}
	ccnt := 0
	for v := range visits {
		var token string
		kind := enterVisit
		if v.Entering {
			token = fmt.Sprintf("⟨%v", v.Element)
			if v.Element == root {
				kind = rootVisit
			}
		} else {
			token = fmt.Sprintf("%v⟩", v.Element)
			kind = returnVisit
		}
		if ccnt+len(token)+1 > linewidth && ccnt > 0 {
			io.WriteString(w, "\n")
			ccnt = 0
		} else if ccnt > 0 {
			io.WriteString(w, " ")
			ccnt++
		}
		if c := palette[kind]; c != nil {
			c.Fprint(w, token)
		} else {
			io.WriteString(w, token)
		}
		ccnt += len(token)
	}
	io.WriteString(w, "\n")
	return nil
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so
// derives a usable line width from the terminal's size.
func lineWidthFromTerminal() int {
	if !term.IsTerminal(0) {
		return 65
	}
	w, _, err := term.GetSize(0)
	if err != nil {
		return 65
	}
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
