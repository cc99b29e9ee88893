package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/n2code/bookorder"
)

var shortcutStyle = color.New(color.Bold, color.Underline)

// shortcuts assigns every option the first of its letters not taken by an earlier option.
// Both cases of a letter select the option. The labels mark the chosen letter.
func shortcuts(options []string, allowEscapeSequences bool) (letterToChoice map[rune]string, labels []string) {
	letterToChoice = make(map[rune]string)
	style := *shortcutStyle
	style.EnableColor()

NextOption:
	for _, option := range options {
		for i, letter := range option {
			lower, upper := unicode.ToLower(letter), unicode.ToUpper(letter)
			if _, taken := letterToChoice[lower]; taken {
				continue
			}
			letterToChoice[lower] = option
			letterToChoice[upper] = option
			marked := fmt.Sprintf("[%c]", letter)
			if allowEscapeSequences {
				marked = style.Sprintf("%c", letter)
			}
			labels = append(labels, option[:i]+marked+option[i+len(string(letter)):])
			continue NextOption
		}
		labels = append(labels, option) //no letter left, only reachable by default
	}
	return
}

// PromptUser asks on the terminal and waits for a single key press. In raw mode no ENTER is needed.
func PromptUser(allowEscapeSequences bool) bookorder.RequestChoice {
	return func(request string, options []string, cleanup bool) (choice string) {
		letterToChoice, labels := shortcuts(options, allowEscapeSequences)

		key := make(chan rune, 1) //a reader left behind by a cancelled prompt must not block
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Reset(os.Interrupt)

		rawMode := false
		if allowEscapeSequences {
			if oldTermState, err := term.MakeRaw(int(os.Stdin.Fd())); err == nil {
				rawMode = true
				defer term.Restore(int(os.Stdin.Fd()), oldTermState)
			} //else ENTER is required to confirm input, acceptable fallback
		}
		out := func(text string) {
			fmt.Fprint(os.Stdout, text)
		}
		rawOut := func(text string) {
			if rawMode {
				out(text)
			}
		}

		waitForKey := func() {
			reader := bufio.NewReaderSize(os.Stdin, 16)
			input, _ := reader.ReadByte()
			if !rawMode && reader.Buffered() > 0 {
				if extra, _ := reader.ReadByte(); extra != '\n' && extra != '\r' {
					key <- '?' //more than one letter typed
					return
				}
			}
			if rawMode && input == 3 { //Ctrl+C
				interrupt <- os.Interrupt
				return
			}
			rawOut(string(unicode.ToUpper(rune(input))))
			key <- rune(input)
		}

		prompt := fmt.Sprintf("%s (%s): ", request, strings.Join(labels, " / "))
		out(prompt)
		for {
			go waitForKey()
			select {
			case pressed := <-key:
				if selection, found := letterToChoice[pressed]; found {
					if cleanup {
						rawOut("\033[2K\r") //clear line
					} else {
						rawOut("\r\n")
					}
					return selection
				}
				rawOut("\a\033[1D") //bell and cursor back
				if !rawMode {
					out(prompt)
				}
			case <-interrupt:
				out("<CANCELLED>\r\n")
				return bookorder.ChoiceAborted
			}
		}
	}
}

// AutoChooseDefaultOption answers every request with its first option and echoes the decision unless quiet.
func AutoChooseDefaultOption(quiet bool) bookorder.RequestChoice {
	return func(request string, options []string, cleanup bool) string {
		defaultChoice := options[0] //by definition of type RequestChoice
		if !cleanup && !quiet {
			fmt.Fprintf(os.Stdout, "%s => [%s]\n", request, strings.ToUpper(defaultChoice))
		}
		return defaultChoice
	}
}
