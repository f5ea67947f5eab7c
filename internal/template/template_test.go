package template

import (
	"strings"
	"testing"
)

func TestDefaultFiles(t *testing.T) {
	files := DefaultFiles()

	content, ok := files[ConfigFile]
	if !ok {
		t.Fatalf("DefaultFiles() missing %s", ConfigFile)
	}
	for _, key := range []string{"noVowel:", "style:", "logLevel:", "logFormat:"} {
		if !strings.Contains(content, key) {
			t.Errorf("default config missing key %q", key)
		}
	}
}
