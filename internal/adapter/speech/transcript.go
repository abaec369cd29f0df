package speech

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
)

// recognizeLine is one line of the recognition engine's newline-delimited
// JSON response. The first line is typically an empty result set.
type recognizeLine struct {
	Result []struct {
		Alternative []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternative"`
		Final bool `json:"final"`
	} `json:"result"`
}

// parseTranscript returns the first non-empty transcript in the response,
// or "" when the engine produced no usable speech.
func parseTranscript(raw []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var parsed recognizeLine
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			continue
		}

		for _, result := range parsed.Result {
			for _, alt := range result.Alternative {
				if t := strings.TrimSpace(alt.Transcript); t != "" {
					return t
				}
			}
		}
	}

	return ""
}
