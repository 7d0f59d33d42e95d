// ABOUTME: Help display for the vmb CLI with commands, grouped flags, examples, and environment status.
package main

import (
	"fmt"
	"io"
	"os"
)

const vmbASCII = `
      _____
    .'  |  '.      Vancouver Minor Baseball
   /  \ | /  \     Home of the VMB Expos
  |----( )----|
   \  / | \  /
    '.__|__.'
`

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, vmbASCII)
	fmt.Fprintf(w, "vmb %s: Vancouver Minor Baseball website\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  vmb [serve] [flags]        Start the website (default)")
	fmt.Fprintln(w, "  vmb routes [-content f]    List every page route from the navigation")
	fmt.Fprintln(w, "  vmb browse [-content f]    Browse the navigation tree interactively")
	fmt.Fprintln(w, "  vmb version                Print version and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Server Flags:")
	fmt.Fprintln(w, "  -host <host>          Listen host (default: 127.0.0.1)")
	fmt.Fprintln(w, "  -port <port>          Listen port (default: 8000)")
	fmt.Fprintln(w, "  -base-url <url>       Public origin for sitemap links")
	fmt.Fprintln(w, "  -image-dir <dir>      Directory served at /static/images/ (default: static/images)")
	fmt.Fprintln(w, "  -data-dir <dir>       Signup database directory (default: $XDG_DATA_HOME/vmb)")
	fmt.Fprintln(w, "  -no-signups           Disable the email updates form")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -content <file>       YAML content file (default: built-in content)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  vmb")
	fmt.Fprintln(w, "  vmb serve -port 8080 -base-url https://vancouverminorbaseball.ca")
	fmt.Fprintln(w, "  vmb routes -content site.yaml")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range []string{"VMB_HOST", "VMB_PORT", "VMB_BASE_URL", "VMB_IMAGE_DIR", "VMB_DATA_DIR", "VMB_CONTENT"} {
		fmt.Fprintf(w, "  %-20s %s\n", key, envStatus(key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Variables may also be set in a .env file.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
