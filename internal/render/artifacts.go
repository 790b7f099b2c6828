package render

import "io/fs"

// Artifact is one fully rendered project file, ready to be written.
type Artifact struct {
	// Path is the slash-separated path relative to the project root.
	Path string

	// Content is the rendered file body with every token resolved.
	Content string

	// Unix forces LF-only line endings when the artifact is written.
	// Shell-evaluated and SQL-sourced files crash or misparse inside
	// their containers when a Windows checkout smuggles in CRLF.
	Unix bool

	// Mode is the file mode the artifact is written with.
	Mode fs.FileMode
}
