// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

const maxEventSize = 1 << 20

// readEvents parses a text/event-stream and calls fn once per dispatched
// event. Comment lines are skipped, multi-line data is joined with "\n".
func readEvents(r io.Reader, fn func(event string, data []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxEventSize)

	var (
		event string
		data  bytes.Buffer
	)
	dispatch := func() error {
		defer func() {
			event = ""
			data.Reset()
		}()
		if data.Len() == 0 {
			return nil
		}
		if event == "" {
			event = "message"
		}
		return fn(event, bytes.TrimSuffix(data.Bytes(), []byte("\n")))
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if err := dispatch(); err != nil {
				return err
			}
		case strings.HasPrefix(line, ":"):
		default:
			field, value, _ := strings.Cut(line, ":")
			value = strings.TrimPrefix(value, " ")
			switch field {
			case "event":
				event = value
			case "data":
				data.WriteString(value)
				data.WriteByte('\n')
			}
		}
	}

	return scanner.Err()
}
