package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes a cobra command with the given args and returns its
// combined output
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := runCommand(t, "convert", "MyPlaylist", "field_name", "0")
	require.NoError(t, err)
	assert.Equal(t, "myPlaylist\nfieldName\n_0\n", out)
}

func TestConvertCommandVerbose(t *testing.T) {
	out, err := runCommand(t, "convert", "--verbose", "SCREAMING_SNAKE", "myPlaylist")
	require.NoError(t, err)
	assert.Contains(t, out, "SCREAMING_SNAKE -> screamingSnake (converted)")
	assert.Contains(t, out, "myPlaylist -> myPlaylist (unchanged)")
}

func TestConvertCommandRequiresArgs(t *testing.T) {
	_, err := runCommand(t, "convert")
	require.Error(t, err)
}

func TestKeysCommand(t *testing.T) {
	fieldsFile := filepath.Join(t.TempDir(), "fields.yaml")
	content := `fields:
  - name: field_name
  - name: user_id
    rename: uid
  - name: "0"
`
	require.NoError(t, os.WriteFile(fieldsFile, []byte(content), 0644))

	out, err := runCommand(t, "keys", fieldsFile)
	require.NoError(t, err)
	assert.Equal(t, "field_name -> fieldName\nuser_id -> uid (renamed)\n0 -> _0\n", out)
}

func TestKeysCommandEmptyRename(t *testing.T) {
	fieldsFile := filepath.Join(t.TempDir(), "fields.yaml")
	content := `fields:
  - name: field_name
    rename: ""
`
	require.NoError(t, os.WriteFile(fieldsFile, []byte(content), 0644))

	// An explicit empty rename is still a rename and is used verbatim
	out, err := runCommand(t, "keys", fieldsFile)
	require.NoError(t, err)
	assert.Equal(t, "field_name ->  (renamed)\n", out)
}

func TestKeysCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty field list", "fields: []\n"},
		{"field without name", "fields:\n  - rename: uid\n"},
		{"invalid yaml", "fields: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldsFile := filepath.Join(t.TempDir(), "fields.yaml")
			require.NoError(t, os.WriteFile(fieldsFile, []byte(tt.content), 0644))

			_, err := runCommand(t, "keys", fieldsFile)
			assert.Error(t, err)
		})
	}
}

func TestKeysCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, "keys", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestInspectCommand(t *testing.T) {
	jsonFile := filepath.Join(t.TempDir(), "payload.json")
	content := `{"user_id": 1, "profile": {"FirstName": "Ann", "tags": ["a"]}, "items": [{"item_id": 2}]}`
	require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0644))

	out, err := runCommand(t, "inspect", jsonFile)
	require.NoError(t, err)

	want := "$.user_id -> <userId> *\n" +
		"$.profile -> <profile>\n" +
		"$.profile.FirstName -> <firstName> *\n" +
		"$.profile.tags -> <tags>\n" +
		"$.items -> <items>\n" +
		"$.items[0].item_id -> <itemId> *\n"
	assert.Equal(t, want, out)
}

func TestInspectCommandNumericKeys(t *testing.T) {
	jsonFile := filepath.Join(t.TempDir(), "tuple.json")
	content := `{"0": "first", "1": "second"}`
	require.NoError(t, os.WriteFile(jsonFile, []byte(content), 0644))

	out, err := runCommand(t, "inspect", jsonFile)
	require.NoError(t, err)
	assert.Contains(t, out, "$.0 -> <_0> *")
	assert.Contains(t, out, "$.1 -> <_1> *")
}

func TestInspectCommandInvalidJSON(t *testing.T) {
	jsonFile := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte("{not json"), 0644))

	_, err := runCommand(t, "inspect", jsonFile)
	require.Error(t, err)
}
