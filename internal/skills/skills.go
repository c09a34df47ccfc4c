package skills

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/firefly-engineering/worldclock/internal/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

// Info describes an embedded skill document.
type Info struct {
	Name  string
	Title string
}

// List returns the embedded documents sorted by name.
func List() []Info {
	entries, err := fs.ReadDir(docsFS, "docs")
	if err != nil {
		// Programming error: the directory is embedded.
		panic("skills: failed to read embedded docs: " + err.Error())
	}

	var out []Info
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		body, _ := docsFS.ReadFile(path.Join("docs", e.Name()))
		out = append(out, Info{Name: name, Title: title(body, name)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Read returns the Markdown body of the named document.
func Read(name string) ([]byte, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, errors.SkillNotFound(name)
	}

	body, err := docsFS.ReadFile(path.Join("docs", name+".md"))
	if err != nil {
		return nil, errors.SkillNotFound(name)
	}
	return body, nil
}

// title returns the first level-one heading, or fallback.
func title(body []byte, fallback string) string {
	sc := bufio.NewScanner(bytes.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
