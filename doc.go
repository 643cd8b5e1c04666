// Package mdcat renders Markdown to ANSI for terminal display, one line at a
// time.
//
// Each input line is rendered on its own: headers of level 1-3 become bold
// colored lines, leading "-" and "*" list markers become bullets, and
// everything else goes through an inline scanner that toggles bold ("**"),
// italic ("*"), underline ("___") and code (one to three backticks).
// Markers toggle: an occurrence closes the format when it is the innermost
// open one and opens it otherwise.
//
// Open formats live in a RenderContext. Parse and Render use one context per
// input, so a span left open on one line is still open on the next; use
// WithResetPerLine to start every line clean. Contract violations of the
// bounded format stack surface as *ContractError.
//
// Example:
//
//	err := mdcat.Render(mdcat.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\nMarkdown in, **ANSI** out.\n"),
//		Writer: mdcat.NewTypewriter(os.Stdout, mdcat.DefaultTypewriterDelay),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdcat
