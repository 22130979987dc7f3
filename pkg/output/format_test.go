package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Treats an empty value as the table format
//   - Keeps unknown values so they can be rejected
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"Json", FormatJSON},
		{"xml", FormatXML},
		{"table", FormatTable},
		{"TABLE", FormatTable},
		{"", FormatTable},
		{" json ", FormatJSON},
		{"YAML", Format("yaml")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFormat(tt.input))
		})
	}
}

// TestIsStructuredFormat tests the behavior of IsStructuredFormat and IsKnownFormat.
func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.False(t, IsStructuredFormat(FormatTable))

	assert.True(t, IsKnownFormat(FormatTable))
	assert.True(t, IsKnownFormat(FormatXML))
	assert.False(t, IsKnownFormat(Format("yaml")))
}

// TestFormatter_WriteCSV tests the behavior of WriteCSV.
//
// It verifies:
//   - Writes CSV headers and rows
//   - Quotes fields containing commas
func TestFormatter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)

	err := f.WriteCSV([]string{"NAME", "SPECIFIER"}, [][]string{
		{"lodash", "^4.17.21"},
		{"odd", ">=1.0.0, <2.0.0"},
	})
	require.NoError(t, err)

	assert.Equal(t, "NAME,SPECIFIER\nlodash,^4.17.21\nodd,\">=1.0.0, <2.0.0\"\n", buf.String())
}

// TestFormatter_WriteJSON tests the behavior of WriteJSON.
//
// It verifies:
//   - Writes valid JSON that can be unmarshaled
//   - Does not escape range operators
func TestFormatter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	err := f.WriteJSON(map[string]string{"name": "test", "range": ">=1.0.0 <2.0.0"})
	require.NoError(t, err)

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "test", result["name"])
	assert.Contains(t, buf.String(), ">=1.0.0 <2.0.0")
}

// TestFormatter_WriteXML tests the behavior of WriteXML.
//
// It verifies:
//   - Writes XML with header and proper structure
func TestFormatter_WriteXML(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatXML, &buf)

	type TestData struct {
		XMLName xml.Name `xml:"test"`
		Name    string   `xml:"name"`
	}

	require.NoError(t, f.WriteXML(TestData{Name: "test"}))

	output := buf.String()
	assert.Contains(t, output, "<?xml version=")
	assert.Contains(t, output, "<name>test</name>")
	assert.Equal(t, FormatXML, f.Format())
}

// errorWriter is a test helper that always returns an error on write.
type errorWriter struct{}

// Write implements io.Writer and always returns an error.
func (e *errorWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

// TestFormatter_WriteErrors tests that writer failures are reported.
func TestFormatter_WriteErrors(t *testing.T) {
	assert.Error(t, NewFormatter(FormatCSV, &errorWriter{}).WriteCSV([]string{"A"}, [][]string{{"1"}}))
	assert.Error(t, NewFormatter(FormatJSON, &errorWriter{}).WriteJSON(map[string]string{"a": "b"}))
	assert.Error(t, NewFormatter(FormatXML, &errorWriter{}).WriteXML(struct {
		XMLName xml.Name `xml:"x"`
	}{}))
}
