// Package skills ships the development convention documents that describe
// how this repository is built, for humans and for coding assistants.
//
// The documents are Markdown files embedded at build time:
//
//	for _, s := range skills.List() {
//	    fmt.Println(s.Name, "-", s.Title)
//	}
//	body, err := skills.Read("testing")
//
// A document's title is its first "# " heading. Names are file names
// without the .md extension.
package skills
