package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/softkeys/pkg/softkeys"
)

var scriptActions = map[string]softkeys.KeyToken{
	"{shift}":     softkeys.Shift,
	"{backspace}": softkeys.Backspace,
	"{page}":      softkeys.PageNext,
	"{space}":     softkeys.Space,
	"{enter}":     softkeys.Enter,
	"{abc}":       softkeys.LayerToggle(softkeys.LayerLetters),
	"{123}":       softkeys.LayerToggle(softkeys.LayerNumericSpecial),
}

// parseScriptLine turns one script line into key presses: either a single
// action such as {shift}, or literal characters pressed one by one.
func parseScriptLine(line string) ([]softkeys.KeyToken, error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, nil
	}

	if strings.HasPrefix(line, "{") && strings.HasSuffix(line, "}") {
		tok, ok := scriptActions[strings.ToLower(line)]
		if !ok {
			return nil, fmt.Errorf("unknown action %s", line)
		}
		return []softkeys.KeyToken{tok}, nil
	}

	tokens := make([]softkeys.KeyToken, 0, len(line))
	for _, r := range line {
		tokens = append(tokens, softkeys.Char(r))
	}
	return tokens, nil
}

// runScript presses the keys read from r against an empty field and returns
// the final value. With trackCaret unset the field never reports a caret, like
// a host without selection support.
func runScript(cfg softkeys.Config, r io.Reader, trackCaret bool) (string, error) {
	field := softkeys.Field{}
	if trackCaret {
		field.Caret = softkeys.CursorAt(0)
	}
	submitted := false

	kb, err := softkeys.NewController(cfg,
		softkeys.WithOnChange(func(c softkeys.Change) {
			field.Text = c.Value
			if trackCaret {
				field.Caret = softkeys.CursorAt(c.Caret)
			}
		}),
		softkeys.WithOnSubmit(func(string) { submitted = true }),
	)
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() && !submitted {
		lineNo++
		tokens, err := parseScriptLine(scanner.Text())
		if err != nil {
			return "", fmt.Errorf("line %d: %w", lineNo, err)
		}
		for _, tok := range tokens {
			if err := kb.Press(tok, field); err != nil {
				return "", fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return field.Text, nil
}
